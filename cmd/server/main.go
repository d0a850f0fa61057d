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
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/medtrack-app/medtrack-backend/internal/config"
	"github.com/medtrack-app/medtrack-backend/internal/database"
	"github.com/medtrack-app/medtrack-backend/internal/handlers"
	"github.com/medtrack-app/medtrack-backend/internal/kpfeed"
	"github.com/medtrack-app/medtrack-backend/internal/logging"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/routes"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	symptomService := services.NewSymptomService(database.DB)
	medicationService := services.NewMedicationService(database.DB)
	recordService := services.NewRecordService(database.DB)
	analysisService := services.NewAnalysisService(database.DB, cfg.StaticDir)
	reportService := services.NewReportService(database.DB, cfg.StaticDir, cfg.ReportFontPath)
	aiService := services.NewAIService(database.DB, cfg, services.NewPacer(time.Second))
	kpService := services.NewKpService(database.DB, kpfeed.NewClient(cfg.KpHistoricalURL, cfg.KpForecastURL))

	// Handlers
	userHandler := handlers.NewUserHandler(authService)
	symptomHandler := handlers.NewSymptomHandler(symptomService)
	medicationHandler := handlers.NewMedicationHandler(medicationService)
	recordHandler := handlers.NewRecordHandler(recordService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	reportHandler := handlers.NewReportHandler(reportService)
	aiHandler := handlers.NewAIHandler(aiService)
	kpHandler := handlers.NewKpHandler(kpService)
	healthHandler := handlers.NewHealthHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    12 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
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
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Generated reports and uploads are served read-only for debugging;
	// authenticated downloads go through the API.
	app.Static("/static", cfg.StaticDir)

	// Routes
	routes.Setup(app, cfg,
		userHandler, symptomHandler, medicationHandler, recordHandler,
		analysisHandler, reportHandler, aiHandler, kpHandler, healthHandler)

	// Daily Kp refresh at 03:00 plus one pass at startup
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		if err := kpService.Refresh(context.Background()); err != nil {
			slog.Error("scheduled kp refresh failed", "error", err)
		}
	}); err != nil {
		slog.Error("failed to schedule kp refresh", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	go func() {
		if err := kpService.Refresh(context.Background()); err != nil {
			slog.Error("initial kp refresh failed", "error", err)
		}
	}()

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

	<-scheduler.Stop().Done()
	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
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
