package http

import (
	"context"
	"log/slog"
)

// IdentityRepository is the minimal interface the router requires from an identity store.
type IdentityRepository interface {
	Exists(ctx context.Context, nemID string) (bool, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	IdentityRepo IdentityRepository
	Logger       *slog.Logger
}
