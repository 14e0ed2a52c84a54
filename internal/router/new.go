package router

import (
	"context"

	"fleet-dispatch/internal/dispatch"
	"fleet-dispatch/internal/dispatch/extract"
	"fleet-dispatch/pkg/log"
)

// Router resolves free text into a structured command.
type Router interface {
	// Classify returns the command for the utterance, or nil when no intent
	// is recognized.
	Classify(ctx context.Context, text string) dispatch.Command
}

// IntentRouter is a deterministic verb/entity keyword classifier. No model
// calls: identical text against identical records always yields the same
// command.
type IntentRouter struct {
	ex *extract.Extractor
	c  extract.Catalog
	l  log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter backed by the given record catalog.
func New(catalog extract.Catalog, l log.Logger) *IntentRouter {
	return &IntentRouter{
		ex: extract.New(catalog),
		c:  catalog,
		l:  l,
	}
}
