package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/auth"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/config"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/constants"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/handlers"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/routes"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/services"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	pkgValidator "github.com/kerimovok/go-pkg-utils/validator"
)

func setupApp(cfg *config.MainConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // 100MB limit for media uploads
	})

	// Middleware
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
	}))
	app.Use(compress.New())
	app.Use(healthcheck.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(logger.New())

	return app
}

func main() {
	// Load configuration and validate environment variables
	cfg, err := config.Load(constants.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := pkgValidator.ValidateConfig(constants.EnvValidationRules); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}
	cfg.ApplyEnv()

	// Prepare the metadata document and file directory
	store := storage.NewStore(cfg.Storage.MetadataPath)
	if err := store.Bootstrap(); err != nil {
		log.Fatalf("failed to prepare metadata store: %v", err)
	}
	files := storage.NewFiles(cfg.Storage.FilesDir)
	if err := files.Bootstrap(); err != nil {
		log.Fatalf("failed to prepare file store: %v", err)
	}

	// Wire components
	issuer := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	portfolioService := services.NewPortfolioService(cfg, store, files)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, files)
	authHandler := handlers.NewAuthHandler(issuer, cfg.Auth)

	// Setup Fiber app
	app := setupApp(cfg)
	routes.SetupRoutes(app, issuer, portfolioHandler, authHandler)

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")

		// Shutdown the server
		if err := app.Shutdown(); err != nil {
			log.Printf("error during server shutdown: %v", err)
		}

		log.Println("Server gracefully stopped")
		os.Exit(0)
	}()

	// Start server
	if err := app.Listen(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
