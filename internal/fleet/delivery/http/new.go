package http

import (
	"github.com/gin-gonic/gin"

	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/pkg/log"
)

// Handler is the public interface for the fleet read API.
type Handler interface {
	Vehicles(c *gin.Context)
	Drivers(c *gin.Context)
	Trips(c *gin.Context)
	Stops(c *gin.Context)
	Paths(c *gin.Context)
	Routes(c *gin.Context)
	Deployments(c *gin.Context)
}

type handler struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new HTTP handler for the fleet listings.
func New(l log.Logger, repo repository.Repository) *handler {
	return &handler{
		l:    l,
		repo: repo,
	}
}
