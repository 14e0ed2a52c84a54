package http

import (
	"github.com/gin-gonic/gin"

	"fleet-dispatch/internal/dispatch"
	"fleet-dispatch/internal/session"
	"fleet-dispatch/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       dispatch.UseCase
	sessions *session.Store
}

// New creates a new HTTP handler for the chat endpoint.
func New(l log.Logger, uc dispatch.UseCase, sessions *session.Store) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
