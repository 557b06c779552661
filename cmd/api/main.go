package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cardapi/internal/config"
	handlers "cardapi/internal/http/handler"
	"cardapi/internal/http/middleware"
	"cardapi/internal/logging"
	"cardapi/internal/repository/jsonfile"
	"cardapi/internal/service"
	"cardapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := logging.Init(cfg.Log)

	// Flat-file card collection; the whole document is rewritten on every mutation
	repo, err := jsonfile.NewCardJSONFile(cfg.Storage.CardsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open card store")
	}

	// Staging area for uploads pending commit, and the committed files tree
	staging, err := storage.NewStaging(cfg.Storage.StagingDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize staging area")
	}
	files, err := storage.NewFiles(cfg.Storage.FilesDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize file store")
	}

	// Initialize services
	cardSvc := service.NewCardService(repo)
	attSvc := service.NewAttachmentService(repo, staging, files)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, cfg, cardSvc, attSvc)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("cards_file", cfg.Storage.CardsFile).Msg("starting server")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
