package http

import (
	"github.com/gin-gonic/gin"

	"fleet-dispatch/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. The rate limiter guards it because
// every turn can hit the database several times.
func RegisterRoutes(e *gin.Engine, h Handler, mw middleware.Middleware) {
	e.POST("/chat", mw.RateLimit(), h.Chat)
}
