package extract

import (
	"context"

	"fleet-dispatch/internal/model"
)

// Catalog is the read-only record source the extractors fall back to when no
// textual pattern matches. internal/fleet/repository.Repository satisfies it.
type Catalog interface {
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListDrivers(ctx context.Context) ([]model.Driver, error)
	ListTripsWithRoutes(ctx context.Context) ([]model.TripWithRoute, error)
	ListPathsWithStops(ctx context.Context) ([]model.PathWithStops, error)
	ListRoutesWithPaths(ctx context.Context) ([]model.RouteWithPath, error)
}

// Extractor resolves entity references from free text. Each method runs an
// ordered list of matchers and returns "" (or nil) when nothing applies;
// absence is never an error, and catalog failures degrade to no match.
type Extractor struct {
	catalog Catalog
}

// New creates an Extractor backed by the given catalog.
func New(catalog Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}
