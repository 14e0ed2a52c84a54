package vision

import (
	"bytes"
	"encoding/base64"
	"image"
	"regexp"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Metadata describes an accepted image upload.
type Metadata struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

const base64Delimiter = "base64,"

// Decode strips an optional data-URI prefix, base64-decodes the payload,
// and reads the image dimensions. ok is false for anything that is not a
// decodable image; the caller treats that as "no image", never as a failure.
func Decode(data string) (Metadata, bool) {
	if data == "" {
		return Metadata{}, false
	}
	payload := data
	if i := strings.Index(data, base64Delimiter); i >= 0 {
		payload = data[i+len(base64Delimiter):]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Metadata{}, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Metadata{}, false
	}
	return Metadata{Width: cfg.Width, Height: cfg.Height}, true
}

var tripNumberRe = regexp.MustCompile(`(?i)trip\s*#?\s*(\d+)`)

// TripHint guesses which trip a screenshot refers to: an explicit "trip #N"
// in the caller-supplied context wins, else a deterministic fallback derived
// from the image dimensions. Returns 0 when there is no hint at all.
func TripHint(contextText string, md Metadata) int64 {
	if m := tripNumberRe.FindStringSubmatch(contextText); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil && n > 0 {
			return n
		}
	}
	if md.Width > 0 || md.Height > 0 {
		return int64((md.Width+md.Height)%6 + 1)
	}
	return 0
}
