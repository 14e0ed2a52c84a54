package vision_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"fleet-dispatch/internal/vision"
)

func encodePNG(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecode(t *testing.T) {
	t.Run("Raw Base64", func(t *testing.T) {
		md, ok := vision.Decode(encodePNG(t, 4, 2))
		if !ok {
			t.Fatal("expected decodable image")
		}
		if md.Width != 4 || md.Height != 2 {
			t.Errorf("got %dx%d", md.Width, md.Height)
		}
	})

	t.Run("Data URI Prefix", func(t *testing.T) {
		md, ok := vision.Decode("data:image/png;base64," + encodePNG(t, 3, 3))
		if !ok || md.Width != 3 {
			t.Errorf("got ok=%v md=%v", ok, md)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, ok := vision.Decode("not an image"); ok {
			t.Error("expected decode failure")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, ok := vision.Decode(""); ok {
			t.Error("expected decode failure")
		}
	})
}

func TestTripHint(t *testing.T) {
	t.Run("Explicit Trip Number", func(t *testing.T) {
		if got := vision.TripHint("screenshot of trip #3", vision.Metadata{Width: 10, Height: 10}); got != 3 {
			t.Errorf("got %d", got)
		}
	})

	t.Run("Dimension Fallback", func(t *testing.T) {
		// (4 + 3) % 6 + 1 = 2
		if got := vision.TripHint("", vision.Metadata{Width: 4, Height: 3}); got != 2 {
			t.Errorf("got %d", got)
		}
	})

	t.Run("No Hint", func(t *testing.T) {
		if got := vision.TripHint("", vision.Metadata{}); got != 0 {
			t.Errorf("got %d", got)
		}
	})
}
