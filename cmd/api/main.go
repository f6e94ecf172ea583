package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nemid-codegen/internal/config"
	"github.com/nemid-codegen/internal/infrastructure/identitystore"
	transporthttp "github.com/nemid-codegen/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	logger := newLogger(cfg.AppEnv)
	slog.SetDefault(logger)

	// Identity store (creates the table if it doesn't exist).
	ctx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	store, closeStore, err := identitystore.Open(ctx, cfg)
	cancelBoot()
	if err != nil {
		log.Fatalf("identity store (%s): %v", cfg.IdentityBackend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("WARN: closing identity store: %v", err)
		}
	}()

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		IdentityRepo: store,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, backend=%s)", cfg.AppPort, cfg.AppEnv, cfg.IdentityBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func newLogger(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
