// Package main is the entry point for the CitySpark Hub API server.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: pure business logic without external dependencies
// - Application: use case orchestration (Commands/Queries)
// - Infrastructure: persistence, messaging, external APIs
// - Interface: HTTP endpoints
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cityspark/cityspark-hub/config"

	// Application layer
	"github.com/cityspark/cityspark-hub/internal/application/command"
	"github.com/cityspark/cityspark-hub/internal/application/eventhandler"
	"github.com/cityspark/cityspark-hub/internal/application/query"

	// Domain layer
	"github.com/cityspark/cityspark-hub/internal/domain/learning"

	// Infrastructure layer
	"github.com/cityspark/cityspark-hub/internal/infrastructure/external/githubscraper"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/external/omniscient"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/messaging"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/persistence/file"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/persistence/memory"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/persistence/postgres"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/persistence/redis"

	// Interface layer
	httpserver "github.com/cityspark/cityspark-hub/internal/interface/http"
	"github.com/cityspark/cityspark-hub/internal/interface/http/handlers"

	// Packages
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.App.Debug,
	})

	log.Info("starting CitySpark Hub",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.Bool("debug", cfg.App.Debug),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. PRIMARY STORES (in-memory, authoritative)
	// ─────────────────────────────────────────────────────────────────────────
	profileStore := memory.NewProfileStore()
	pathStore := memory.NewPathStore()
	galleryStore := memory.NewGalleryStore()
	eventLog := memory.NewEventLog()
	assessmentStore := memory.NewAssessmentStore()
	courseStore := memory.NewCourseStore()
	collectionStore := file.NewCollectionStore(cfg.Gallery.CollectionsFile)

	// ─────────────────────────────────────────────────────────────────────────
	// 4. OPTIONAL POSTGRES ARCHIVE
	// ─────────────────────────────────────────────────────────────────────────
	var (
		dbConn          *postgres.Connection
		profileArchiver command.ProfileArchiver
		recordArchiver  command.RecordArchiver
	)
	if cfg.Database.Enabled() {
		log.Info("connecting to database...")
		dbConn, err = postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() {
			log.Info("closing database connection...")
			dbConn.Close()
		}()

		if err := dbConn.Ping(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		log.Info("running database migrations...")
		if err := dbConn.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		archive := postgres.NewPerformanceArchive(dbConn)
		profileArchiver = archive
		recordArchiver = archive
		log.Info("performance archive enabled")
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. OPTIONAL REDIS POPULARITY CACHE
	// ─────────────────────────────────────────────────────────────────────────
	var (
		popularityCache *redis.PopularityCache
		scoreCache      command.PopularityCache
		popularRanker   query.PopularRanker
	)
	if !cfg.Redis.Disabled {
		log.Info("connecting to Redis...")
		popularityCache, err = redis.NewPopularityCache(ctx, redis.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}, log)
		if err != nil {
			log.Warn("failed to connect to Redis, popularity cache disabled", logger.Err(err))
			popularityCache = nil
		} else {
			defer popularityCache.Close()
			scoreCache = popularityCache
			if cfg.Features.IsEnabled(config.FeatureGalleryRedisRanking) {
				popularRanker = popularityCache
			}
			log.Info("Redis popularity cache enabled")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. EVENT BUS & ANALYTICS FORWARDING
	// ─────────────────────────────────────────────────────────────────────────
	busConfig := messaging.DefaultConfig()
	busConfig.Logger = log
	bus := messaging.NewInMemoryEventBus(busConfig)
	defer func() {
		log.Info("closing event bus...")
		_ = bus.Close()
	}()

	forwarder := eventhandler.NewAnalyticsForwarder(eventLog, log)
	if err := forwarder.Register(bus); err != nil {
		return fmt.Errorf("failed to register analytics forwarder: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. EXTERNAL CLIENTS (feature-flagged)
	// ─────────────────────────────────────────────────────────────────────────
	var hubClient *omniscient.Client
	if cfg.Features.IsEnabled(config.FeatureLearningOmniscient) {
		hubConfig := omniscient.DefaultClientConfig(cfg.Omniscient.BaseURL)
		hubConfig.APIKey = cfg.Omniscient.APIKey
		hubConfig.Timeout = cfg.Omniscient.RequestTimeout
		hubConfig.CircuitBreakerConfig.FailureThreshold = cfg.Omniscient.CircuitBreakerThreshold
		hubConfig.CircuitBreakerConfig.Timeout = cfg.Omniscient.CircuitBreakerTimeout
		hubConfig.RetryConfig.MaxAttempts = cfg.Omniscient.MaxRetries
		hubConfig.RetryConfig.InitialDelay = cfg.Omniscient.RetryBaseDelay
		hubConfig.RetryConfig.MaxDelay = cfg.Omniscient.RetryMaxDelay
		hubConfig.Logger = log
		hubClient = omniscient.NewClient(hubConfig)
		log.Info("Omniscient Hub client enabled", logger.String("base_url", cfg.Omniscient.BaseURL))
	}

	var scraper *githubscraper.Scraper
	if cfg.Features.IsEnabled(config.FeatureContentGitHubScraper) {
		scraperConfig := githubscraper.DefaultConfig()
		scraperConfig.BaseURL = cfg.GitHub.BaseURL
		scraperConfig.APIToken = cfg.GitHub.APIToken
		scraperConfig.Timeout = cfg.GitHub.RequestTimeout
		scraperConfig.MaxDepth = cfg.GitHub.MaxDepth
		scraperConfig.Logger = log
		scraper = githubscraper.NewScraper(scraperConfig)
		log.Info("GitHub content scraper enabled", logger.Int("max_depth", cfg.GitHub.MaxDepth))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. APPLICATION LAYER (Commands & Queries)
	// ─────────────────────────────────────────────────────────────────────────
	predictor := learning.NewPredictor(rand.New(rand.NewSource(time.Now().UnixNano())))

	deps := httpserver.Dependencies{
		CreateProfileHandler:      command.NewCreateProfileHandler(profileStore, profileArchiver, bus, log),
		AnalyzePerformanceHandler: command.NewAnalyzePerformanceHandler(profileStore, recordArchiver, bus, log),
		GeneratePathHandler:       command.NewGeneratePathHandler(profileStore, pathStore, bus, log),
		GenerateArtHandler:        command.NewGenerateArtHandler(galleryStore, scoreCache, bus, log),
		EngageArtHandler:          command.NewEngageArtHandler(galleryStore, scoreCache, bus, log),
		CurateArtHandler:          command.NewCurateArtHandler(galleryStore, bus, log),
		CreateCollectionHandler:   command.NewCreateCollectionHandler(galleryStore, collectionStore, bus, log),
		TrackEventHandler:         command.NewTrackEventHandler(eventLog, log),
		CreateAssessmentHandler:   command.NewCreateAssessmentHandler(assessmentStore, log),
		EvaluateSubmissionHandler: command.NewEvaluateSubmissionHandler(assessmentStore, bus, log),
		CreateCourseHandler:       command.NewCreateCourseHandler(courseStore, log),

		GetProfileHandler:         query.NewGetProfileHandler(profileStore, log),
		GetRecommendationsHandler: query.NewGetRecommendationsHandler(profileStore, log),
		PredictOutcomesHandler:    query.NewPredictOutcomesHandler(profileStore, pathStore, predictor, log),
		GalleryHandler:            query.NewGalleryHandler(galleryStore, collectionStore, popularRanker, log),
		UserAnalyticsHandler:      query.NewUserAnalyticsHandler(eventLog, log),
		CoursesHandler:            query.NewCoursesHandler(courseStore, log),

		Omniscient: hubClient,
		Scraper:    scraper,

		Logger: log,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 9. HEALTH CHECKS & AUTH
	// ─────────────────────────────────────────────────────────────────────────
	healthChecker := handlers.NewCompositeHealthChecker(cfg.App.Version)
	if dbConn != nil {
		healthChecker.AddCheck("database", handlers.NewPingCheck(dbConn))
	}
	if popularityCache != nil {
		healthChecker.AddCheck("redis", handlers.NewPingCheck(popularityCache))
	}
	deps.HealthChecker = healthChecker

	if len(cfg.HTTP.APIKeyHashes) > 0 {
		deps.APIKeyAuth = handlers.NewAPIKeyAuth(cfg.HTTP.APIKeyHeader, cfg.HTTP.APIKeyHashes)
		log.Info("API key authentication enabled", logger.Int("keys", len(cfg.HTTP.APIKeyHashes)))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 10. HTTP SERVER
	// ─────────────────────────────────────────────────────────────────────────
	serverConfig := httpserver.DefaultConfig()
	serverConfig.Host = cfg.HTTP.Host
	serverConfig.Port = cfg.HTTP.Port
	serverConfig.ReadTimeout = cfg.HTTP.ReadTimeout
	serverConfig.WriteTimeout = cfg.HTTP.WriteTimeout
	serverConfig.IdleTimeout = cfg.HTTP.IdleTimeout
	serverConfig.EnableCORS = cfg.HTTP.EnableCORS
	serverConfig.AllowedOrigins = cfg.HTTP.AllowedOrigins
	serverConfig.EnableMetrics = cfg.Observability.MetricsEnabled
	serverConfig.RateLimitPerMinute = cfg.HTTP.RateLimitPerMinute
	serverConfig.APIKeyHeader = cfg.HTTP.APIKeyHeader

	server := httpserver.NewServer(serverConfig, deps)
	errCh := server.StartAsync()

	// ─────────────────────────────────────────────────────────────────────────
	// 11. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("CitySpark Hub is running", logger.String("address", server.Address()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", logger.Err(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("starting graceful shutdown...", logger.Duration("timeout", cfg.App.ShutdownTimeout))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop HTTP server gracefully", logger.Err(err))
		return err
	}

	log.Info("shutdown completed successfully")
	return nil
}
