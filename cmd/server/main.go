package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/ojay234/fullstack-capstone-project/internal/config"
	"github.com/ojay234/fullstack-capstone-project/internal/database"
	"github.com/ojay234/fullstack-capstone-project/internal/handlers"
	"github.com/ojay234/fullstack-capstone-project/internal/logging"
	"github.com/ojay234/fullstack-capstone-project/internal/middleware"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
	"github.com/ojay234/fullstack-capstone-project/internal/routes"
	"github.com/ojay234/fullstack-capstone-project/internal/services"
	"github.com/ojay234/fullstack-capstone-project/internal/token"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.MongoURL == "" {
		slog.Error("MONGO_URL environment variable is required")
		os.Exit(1)
	}

	// Database handle is lazy; connect eagerly here so a bad MONGO_URL
	// shows up in the logs at startup. The server still starts, matching
	// the one-shot no-retry contract: later requests surface the error.
	conn := database.NewConnector(cfg.MongoURL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := conn.Database(ctx); err != nil {
		slog.Error("failed to connect to database at startup", "error", err)
	}
	cancel()

	// Services
	signer := token.NewSigner(cfg.JWTSecret, cfg.JWTTTL)
	userRepo := repository.NewUserRepository(conn)
	giftRepo := repository.NewGiftRepository(conn)
	authService := services.NewAuthService(userRepo, signer)
	giftService := services.NewGiftService(giftRepo)
	searchService := services.NewSearchService(giftRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	giftHandler := handlers.NewGiftHandler(giftService)
	searchHandler := handlers.NewSearchHandler(searchService)
	healthHandler := handlers.NewHealthHandler(conn)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))

	// Routes
	routes.Setup(app, cfg, authHandler, giftHandler, searchHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := conn.Close(closeCtx); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
