package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only fleet listings under /api.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/vehicles", h.Vehicles)
	rg.GET("/drivers", h.Drivers)
	rg.GET("/trips", h.Trips)
	rg.GET("/stops", h.Stops)
	rg.GET("/paths", h.Paths)
	rg.GET("/routes", h.Routes)
	rg.GET("/deployments", h.Deployments)
}
