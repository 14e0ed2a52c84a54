package usecase

import (
	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/internal/router"
	pkgLog "fleet-dispatch/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	router router.Router
}

// New creates a new dispatch UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, rt router.Router) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		router: rt,
	}
}
