package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/catalog"
	"github.com/noah-isme/counselor-go-api/internal/config"
	"github.com/noah-isme/counselor-go-api/internal/database"
	"github.com/noah-isme/counselor-go-api/internal/handler"
	"github.com/noah-isme/counselor-go-api/internal/middleware"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/observability"
	"github.com/noah-isme/counselor-go-api/internal/repository"
	"github.com/noah-isme/counselor-go-api/internal/router"
	"github.com/noah-isme/counselor-go-api/internal/service"
	"github.com/noah-isme/counselor-go-api/internal/utils"
	"github.com/noah-isme/counselor-go-api/pkg/explainer"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.AppEnv == "development" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.JournalEntry{},
		&models.Override{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, recommendations will not be cached")
			cache = nil
		}
	}

	observability.RegisterMetrics()

	source := buildCatalogSource(cfg, logger)
	explain := buildExplainer(cfg, logger)

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	trail := repository.NewAuditTrail()

	deps := router.Dependencies{
		Health:   handler.NewHealthHandler(cfg.AppName, cfg.AppEnv),
		Auth:     handler.NewAuthHandler(service.NewAuthService(studentRepo, validate, cfg.JWTSecret, logger), logger),
		Students: handler.NewStudentHandler(service.NewStudentService(studentRepo, validate, logger), logger),
		Journal:  handler.NewJournalHandler(service.NewJournalService(studentRepo, journalRepo, validate, logger), logger),
		Colleges: handler.NewCollegeHandler(service.NewCollegeService(source, logger), logger),
		Recommendations: handler.NewRecommendationHandler(service.NewRecommendationService(service.RecommendationDeps{
			Students:  studentRepo,
			Journal:   journalRepo,
			Overrides: overrideRepo,
			Trail:     trail,
			Source:    source,
			Explainer: explain,
			Cache:     cache,
			CacheTTL:  cfg.RecommendationCacheTTL,
			Validate:  validate,
			Logger:    logger,
		}), logger),
		JWTSecret: cfg.JWTSecret,
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			return utils.SendError(c, code, err.Error())
		},
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, deps)

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress()).Msg("starting server")
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(app, cache, logger)
}

func buildCatalogSource(cfg config.Config, logger zerolog.Logger) catalog.Source {
	manager := catalog.NewSourceManager()
	manager.Register("mock", catalog.NewMockSource())
	manager.Register("scorecard", catalog.NewScorecardSource(cfg.ScorecardAPIKey, cfg.ScorecardTimeout, logger))

	source, ok := manager.Get(cfg.CatalogSource)
	if !ok {
		logger.Warn().Str("source", cfg.CatalogSource).Strs("available", manager.Available()).
			Msg("unknown catalog source, using mock")
		source, _ = manager.Get("mock")
	}
	return source
}

func buildExplainer(cfg config.Config, logger zerolog.Logger) explainer.Explainer {
	if cfg.OpenAIAPIKey == "" {
		logger.Info().Msg("no openai api key configured, using keyword explainer")
		return explainer.NewKeywordExplainer()
	}

	openAI, err := explainer.NewOpenAIExplainer(explainer.OpenAIConfig{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
		Logger: logger,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("openai explainer unavailable, using keyword explainer")
		return explainer.NewKeywordExplainer()
	}
	return openAI
}

func waitForShutdown(app *fiber.App, cache *redis.Client, logger zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if cache != nil {
		if err := cache.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
}
