package repository

import (
	"context"

	"fleet-dispatch/internal/model"
)

// Repository is the data access interface for the fleet domain.
//
// Find* methods use fuzzy (substring, case-insensitive) matching and report
// not-found as a zero ID with a nil error; callers decide how to surface it.
type Repository interface {
	// Listings
	ListStops(ctx context.Context) ([]model.Stop, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListDrivers(ctx context.Context) ([]model.Driver, error)
	ListUnassignedVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListUnassignedDrivers(ctx context.Context) ([]model.Driver, error)
	ListPathsWithStops(ctx context.Context) ([]model.PathWithStops, error)
	ListRoutesWithPaths(ctx context.Context) ([]model.RouteWithPath, error)
	ListTripsWithRoutes(ctx context.Context) ([]model.TripWithRoute, error)
	ListDeploymentsDetailed(ctx context.Context) ([]model.DeploymentDetail, error)

	// Fuzzy lookups
	FindTripByDisplayName(ctx context.Context, name string) (int64, error)
	FindVehicleByPlate(ctx context.Context, plate string) (int64, error)
	FindDriverByName(ctx context.Context, name string) (int64, error)

	// Trip detail
	TripBookingLoad(ctx context.Context, tripID int64) (float64, error)
	TripStatusByName(ctx context.Context, name string) (model.TripStatus, error)
	StopsForPath(ctx context.Context, pathName string) ([]string, error)
	RoutesUsingPath(ctx context.Context, pathName string) ([]model.RouteWithPath, error)

	// Mutations
	CreateStop(ctx context.Context, opt CreateStopOptions) (int64, error)
	CreatePath(ctx context.Context, name string) (int64, error)
	CreatePathWithStops(ctx context.Context, name string, stopNames []string) (int64, error)
	CreateRoute(ctx context.Context, opt CreateRouteOptions) (int64, error)
	CreateVehicle(ctx context.Context, opt CreateVehicleOptions) (int64, error)
	CreateDriver(ctx context.Context, opt CreateDriverOptions) (int64, error)
	CreateTrip(ctx context.Context, opt CreateTripOptions) (int64, error)

	// AssignVehicleDriver replaces any existing deployment for the trip with a
	// new one, atomically. At most one deployment exists per trip.
	AssignVehicleDriver(ctx context.Context, tripID, vehicleID, driverID int64) (int64, error)

	// RemoveDeployment deletes the trip's deployment row if present and
	// reports whether anything was removed.
	RemoveDeployment(ctx context.Context, tripID int64) (bool, error)
}
