package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fleet-dispatch/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestEngine(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, requestsPerMin)
	e := gin.New()
	e.POST("/chat", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return e
}

func doPost(e *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = remoteAddr
	e.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Burst Then Throttles", func(t *testing.T) {
		// 60/min gives a burst of 6 tokens.
		e := newTestEngine(60)

		for i := 0; i < 6; i++ {
			if code := doPost(e, "10.0.0.1:1234"); code != http.StatusOK {
				t.Fatalf("request %d: got %d", i, code)
			}
		}
		if code := doPost(e, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %d", code)
		}
	})

	t.Run("Sources Are Independent", func(t *testing.T) {
		e := newTestEngine(60)

		for i := 0; i < 7; i++ {
			doPost(e, "10.0.0.1:1234")
		}
		if code := doPost(e, "10.0.0.2:1234"); code != http.StatusOK {
			t.Errorf("second client must have its own bucket, got %d", code)
		}
	})
}
