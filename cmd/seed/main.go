// Command seed inserts a NemID identity into the configured identity store.
//
//	go run ./cmd/seed -cpr 0101901234 -nemid 123456789 -password secret
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/nemid-codegen/internal/application/identity"
	"github.com/nemid-codegen/internal/config"
	"github.com/nemid-codegen/internal/domain"
	"github.com/nemid-codegen/internal/infrastructure/identitystore"
)

func main() {
	var req domain.CreateIdentityRequest
	flag.StringVar(&req.CPR, "cpr", "", "CPR number")
	flag.StringVar(&req.NemID, "nemid", "", "NemID")
	flag.StringVar(&req.Password, "password", "", "password (stored as bcrypt hash)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	cfg := config.Load()
	if cfg.IdentityBackend == config.BackendMemory {
		log.Fatal("seeding the memory backend has no effect; set IDENTITY_BACKEND")
	}

	if err := run(cfg, req); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so the store is always closed.
func run(cfg *config.Config, req domain.CreateIdentityRequest) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, closeStore, err := identitystore.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("identity store (%s): %w", cfg.IdentityBackend, err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close identity store: %w", cerr))
		}
	}()

	created, err := identity.NewService(store, cfg.NemIDLength).Create(ctx, req)
	if err != nil {
		return fmt.Errorf("seed identity: %w", err)
	}
	log.Printf("created identity id=%s nemid=%s (backend=%s)", created.ID, created.NemID, cfg.IdentityBackend)
	return nil
}
