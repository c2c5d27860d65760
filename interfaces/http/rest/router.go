// Package rest wires the HTTP surface: routing, middleware, and the
// request handlers that translate HTTP into commands and queries.
package rest

import (
	"net/http"

	"mentra-backend/application/commands/bus"
	querybus "mentra-backend/application/queries/bus"
	"mentra-backend/infrastructure/config"
	"mentra-backend/interfaces/http/rest/handlers"
	"mentra-backend/interfaces/http/rest/middleware"
	"mentra-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	config     *config.Config
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		config:     cfg,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.mentra.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.jwtValidator(), rt.logger))

		menuHandler := handlers.NewMenuHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Get("/menu", menuHandler.GetMenu)
		r.Post("/menu/move", menuHandler.MoveEntry)
		r.Put("/ordering", menuHandler.SaveOrdering)

		r.Route("/items", func(r chi.Router) {
			itemHandler := handlers.NewItemHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", itemHandler.CreateItem)
			r.Get("/", itemHandler.ListItems)
			r.Get("/{itemID}", itemHandler.GetItem)
			r.Put("/{itemID}", itemHandler.UpdateItem)
			r.Delete("/{itemID}", itemHandler.DeleteItem)
		})

		playlistHandler := handlers.NewPlaylistHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Get("/playlist", playlistHandler.GetPlaylist)
		r.Put("/playlist", playlistHandler.UpdatePlaylist)

		progressHandler := handlers.NewProgressHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Get("/progress", progressHandler.GetProgress)
		r.Put("/progress", progressHandler.SaveProgress)
	})

	return router
}

func (rt *Router) jwtValidator() *auth.JWTValidator {
	secret := rt.config.JWTSecret
	if secret == "" {
		// Config.Validate rejects an empty secret in production, so this
		// branch only runs for local development.
		secret = "development-secret-change-in-production"
		rt.logger.Warn("JWT_SECRET not set, using development secret")
	}
	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    rt.config.JWTIssuer,
	})
	if err != nil {
		// The secret is guaranteed non-empty above, so this only fires if
		// the constructor grows new requirements.
		rt.logger.Fatal("failed to construct JWT validator", zap.Error(err))
	}
	return validator
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
