package router

import (
	"fmt"
	"net/http"
	"strings"

	_ "coursecatalog/docs"
	"coursecatalog/internal/api/v1/dto"
	"coursecatalog/internal/api/v1/handler"
	"coursecatalog/internal/api/v1/render"
	"coursecatalog/internal/auth"
	"coursecatalog/internal/config"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/pubsub"
	"coursecatalog/internal/repository"
	"coursecatalog/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// Dependencies are the storage and infrastructure the API is built on.
type Dependencies struct {
	DB         handler.Pinger
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Courses    repository.CourseRepository
	Events     pubsub.EventEmitter
	Tokens     *auth.TokenManager
	Hasher     auth.PasswordHasher
}

// New wires services and handlers and returns the root handler. Every route is
// served both at the root and under /api, with or without a trailing slash.
func New(cfg *config.Config, deps Dependencies, logger zerolog.Logger) http.Handler {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Initialize validator
	validate := dto.NewValidator()

	// 2. Initialize services & handlers
	events := deps.Events
	if events == nil {
		events = pubsub.NoopEmitter{}
	}
	userSvc := service.NewUserService(deps.Users, deps.Hasher)
	authSvc := service.NewAuthService(deps.Users, deps.Hasher, deps.Tokens, cfg.JWTRotateRefresh)
	categorySvc := service.NewCategoryService(deps.Categories, events)
	courseSvc := service.NewCourseService(deps.Courses, deps.Categories, events)

	authHandler := handler.NewAuthHandler(userSvc, authSvc, validate, logger)
	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	categoryHandler := handler.NewCategoryHandler(categorySvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	healthHandler := handler.NewHealthHandler(deps.DB, logger)

	// 3. CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(chimw.Recoverer)
	r.Use(c.Handler)
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Detail(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Detail(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", strings.ToUpper(r.Method)))
	})

	healthHandler.RegisterRoutes(r)
	r.Get("/swagger/doc.json", serveSwagger(logger))

	authMw := middleware.AuthMiddleware(authSvc, logger)
	api := func(r chi.Router) {
		authHandler.RegisterTokenRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			authHandler.RegisterRoutes(r)
			userHandler.RegisterRoutes(r)
			categoryHandler.RegisterRoutes(r)
			courseHandler.RegisterRoutes(r)
		})
	}
	r.Route("/api", api)
	api(r)

	return r
}

func serveSwagger(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to read swagger document")
			render.Detail(w, http.StatusInternalServerError, "Internal server error.")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	}
}
