package identitystore

import (
	"context"
	"fmt"

	"github.com/nemid-codegen/internal/config"
	"github.com/nemid-codegen/internal/domain"
	"github.com/nemid-codegen/internal/infrastructure/dynamo"
	"github.com/nemid-codegen/internal/infrastructure/memory"
	"github.com/nemid-codegen/internal/infrastructure/sqlite"
)

// Store is what the binaries need from an identity backend.
type Store interface {
	Exists(ctx context.Context, nemID string) (bool, error)
	Put(ctx context.Context, i *domain.Identity) error
}

// Open connects to the backend named by cfg.IdentityBackend, creating the
// identity table when missing. The returned close func releases the pool.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.IdentityBackend {
	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Bootstrap(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return sqlite.NewIdentityRepo(db), db.Close, nil
	case config.BackendDynamo:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("load AWS config: %w", err)
		}
		if err := dynamo.Bootstrap(ctx, client, cfg.DynamoTables); err != nil {
			return nil, nil, err
		}
		return dynamo.NewIdentityRepo(client, cfg.DynamoTables.Identities), noop, nil
	case config.BackendMemory:
		return memory.NewIdentityStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown identity backend %q: %w", cfg.IdentityBackend, domain.ErrBadRequest)
	}
}
