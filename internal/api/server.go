// Package api exposes the rating gallery over HTTP using huma on top of
// a chi router. Every response body is wrapped in the Envelope structure.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/service"
	"github.com/ratemyshots/ratemyshots-server/internal/validation"
)

// Services groups the application services the handlers depend on.
type Services struct {
	Rating    *service.RatingService
	Comment   *service.CommentService
	Analytics *service.AnalyticsService
	Admin     *service.AdminService
	Export    *service.ExportService
}

// Server is the HTTP API server.
type Server struct {
	services  *Services
	catalog   *catalog.Provider
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
	validator *validation.Validator
}

// NewServer creates the API server and registers all routes.
func NewServer(services *Services, catalogProvider *catalog.Provider, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("RateMyShots API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services:  services,
		catalog:   catalogProvider,
		router:    router,
		api:       api,
		logger:    logger,
		validator: validation.New(),
	}

	s.registerHealthRoutes()
	s.registerCatalogRoutes()
	s.registerRatingRoutes()
	s.registerCommentRoutes()
	s.registerStatsRoutes()
	s.registerAdminRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
