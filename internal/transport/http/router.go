package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nemid-codegen/internal/application/nemid"
	"github.com/nemid-codegen/internal/config"
	"github.com/nemid-codegen/internal/transport/http/handler"
	appmiddleware "github.com/nemid-codegen/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	nemidSvc := nemid.NewService(nemid.ServiceDeps{
		Identities: deps.IdentityRepo,
		Lengths: nemid.Lengths{
			NemIDCode:     cfg.NemIDCodeLength,
			NemID:         cfg.NemIDLength,
			GeneratedCode: cfg.GeneratedCodeLength,
		},
		Logger: deps.Logger,
	})

	infoH := handler.NewInfoHandler(cfg.APITitle, cfg.DocsURL())
	docsH := handler.NewDocsHandler(cfg.APITitle)
	healthH := handler.NewHealthHandler()
	nemidH := handler.NewNemIDHandler(nemidSvc, cfg.MirrorHTTPStatus)

	r.Get("/", infoH.Root)
	r.Get(cfg.DocsEndpoint, docsH.OpenAPI)
	r.Get("/health-check/{action}", healthH.Ping)
	r.With(appmiddleware.LimitBody(int64(cfg.MaxBodyBytes))).Post("/nemid-auth", nemidH.Auth)

	return r
}
