package dispatch

import "errors"

// Domain-specific errors for the dispatch package.
var (
	ErrNilSession = errors.New("session is required")
)
