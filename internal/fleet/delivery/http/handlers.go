package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-dispatch/pkg/response"
)

// Vehicles godoc
// @Summary     List all vehicles
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/vehicles [GET]
func (h *handler) Vehicles(c *gin.Context) {
	ctx := c.Request.Context()

	vehicles, err := h.repo.ListVehicles(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListVehicles: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// Drivers godoc
// @Summary     List all drivers
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/drivers [GET]
func (h *handler) Drivers(c *gin.Context) {
	ctx := c.Request.Context()

	drivers, err := h.repo.ListDrivers(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListDrivers: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

// Trips godoc
// @Summary     List all trips with their routes
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/trips [GET]
func (h *handler) Trips(c *gin.Context) {
	ctx := c.Request.Context()

	trips, err := h.repo.ListTripsWithRoutes(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListTripsWithRoutes: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// Stops godoc
// @Summary     List all stops
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/stops [GET]
func (h *handler) Stops(c *gin.Context) {
	ctx := c.Request.Context()

	stops, err := h.repo.ListStops(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListStops: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stops": stops})
}

// Paths godoc
// @Summary     List all paths with their ordered stops
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/paths [GET]
func (h *handler) Paths(c *gin.Context) {
	ctx := c.Request.Context()

	paths, err := h.repo.ListPathsWithStops(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListPathsWithStops: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paths": paths})
}

// Routes godoc
// @Summary     List all routes with their paths
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/routes [GET]
func (h *handler) Routes(c *gin.Context) {
	ctx := c.Request.Context()

	routes, err := h.repo.ListRoutesWithPaths(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListRoutesWithPaths: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// Deployments godoc
// @Summary     List active deployments
// @Tags        Fleet
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/deployments [GET]
func (h *handler) Deployments(c *gin.Context) {
	ctx := c.Request.Context()

	deployments, err := h.repo.ListDeploymentsDetailed(ctx)
	if err != nil {
		h.l.Errorf(ctx, "repo.ListDeploymentsDetailed: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deployments": deployments})
}
