package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursecatalog/internal/api/v1/router"
	"coursecatalog/internal/auth"
	"coursecatalog/internal/config"
	"coursecatalog/internal/database"
	"coursecatalog/internal/logger"
	"coursecatalog/internal/pubsub"
	"coursecatalog/internal/repository"
	"coursecatalog/internal/service"

	"github.com/joho/godotenv"
)

// @title Course Catalog API
// @version 1.0
// @description Categories, courses, registration and JWT authentication.
// @BasePath /
// @Schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// 1. Load configuration
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info")
		boot.Fatal().Msgf("Error loading config: %v", err)
	}

	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Warn().Msg("Warning: no .env file found")
	}

	ctx := context.Background()

	// 2. Open DB connection and apply migrations
	db, err := database.Open(ctx, cfg.DBConnectionString, cfg.IsDevelopment(), log)
	if err != nil {
		log.Fatal().Msgf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Msgf("Failed to apply migrations: %v", err)
	}

	// 3. Resolve the JWT signing secret
	var accessor service.SecretAccessor
	if cfg.JWTSecret == "" {
		sm, err := service.NewSecretManagerService(ctx, cfg)
		if err != nil {
			log.Fatal().Msgf("Failed to create Secret Manager client: %v", err)
		}
		defer sm.Close()
		accessor = sm
	}
	secret, err := service.ResolveJWTSecret(ctx, cfg, accessor)
	if err != nil {
		log.Fatal().Msgf("Failed to resolve JWT secret: %v", err)
	}

	// 4. Catalog events
	var events pubsub.EventEmitter = pubsub.NoopEmitter{}
	if cfg.PubSubTopic != "" {
		publisher, err := pubsub.NewPublisher(ctx, cfg)
		if err != nil {
			log.Fatal().Msgf("Failed to create Pub/Sub publisher: %v", err)
		}
		defer publisher.Close()
		events = pubsub.NewTopicEmitter(publisher, cfg.PubSubTopic, log)
		log.Info().Str("topic", cfg.PubSubTopic).Msg("Publishing catalog events")
	}

	// 5. Build router
	r := router.New(cfg, router.Dependencies{
		DB:         db,
		Users:      repository.NewUserRepo(db),
		Categories: repository.NewCategoryRepo(db),
		Courses:    repository.NewCourseRepo(db),
		Events:     events,
		Tokens:     auth.NewTokenManager(secret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL),
		Hasher:     auth.NewBcryptHasher(cfg.BcryptCost),
	}, log)

	// 6. Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 7. Start server in a goroutine
	go func() {
		log.Info().Msgf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("Listen: %s", err)
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received, exiting...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Msgf("Server forced to shutdown: %v", err)
	}
	log.Info().Msg("Server shut down gracefully")
}
