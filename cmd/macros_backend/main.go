package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/newswire_macros/internal/adapters/database/pgsql"
	"github.com/SscSPs/newswire_macros/internal/adapters/ratesource/fixer"
	"github.com/SscSPs/newswire_macros/internal/adapters/vocabulary"
	"github.com/SscSPs/newswire_macros/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/newswire_macros/internal/core/ports/repositories"
	"github.com/SscSPs/newswire_macros/internal/core/services"
	"github.com/SscSPs/newswire_macros/internal/handlers"
	"github.com/SscSPs/newswire_macros/internal/middleware"
	"github.com/SscSPs/newswire_macros/internal/platform/config"
	"github.com/SscSPs/newswire_macros/internal/utils"
	"github.com/SscSPs/newswire_macros/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Newswire Macros API
// @version 1.0
// @description Currency conversion macros and locator mapping for news-wire copy.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// The database only backs the shared rate snapshot, without it rates stay in memory
	repos := portsrepo.RepositoryProvider{}
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos.RateSnapshotRepo = pgsql.NewPgxRateSnapshotRepository(dbPool)
	}

	rateProvider := fixer.NewClient(cfg.RateServiceURL, cfg.CurrencyAPIKey, cfg.RateSymbols, cfg.RateRequestTimeout)

	var vocab providers.VocabularyProvider = vocabulary.NewStaticProvider(nil)
	if cfg.LocatorVocabularyFile != "" {
		fileVocab, err := vocabulary.LoadFile(cfg.LocatorVocabularyFile)
		if err != nil {
			logger.Error("Failed to load locator vocabulary", slog.String("error", err.Error()))
			os.Exit(1)
		}
		vocab = fileVocab
	}

	container, err := services.NewServiceContainer(ctx, cfg, repos, rateProvider, vocab, logger)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, handlers.RouteDeps{
		RateLimiter: rateLimiter,
		Posthog:     posthogClient,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
