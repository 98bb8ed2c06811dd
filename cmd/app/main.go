package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moisescpp/tierno-oficial/cmd"
	"github.com/moisescpp/tierno-oficial/internal/adapters/out/postgres/orderrepo"
	"github.com/moisescpp/tierno-oficial/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := gorm.Open(postgres.Open(configs.DBConnectionString()), &gorm.Config{})
	if err != nil {
		logger.Error("Cannot connect to postgres", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Error("Cannot build application", "error", err)
		os.Exit(1)
	}

	manager := app.CreateJobManager()
	if err := manager.StartAll(); err != nil {
		logger.Error("Cannot start background jobs", "error", err)
		os.Exit(1)
	}
	defer manager.StopAll()

	startWebServer(&app, manager, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file, reading configuration from the environment")
	}
	return cmd.Config{
		HTTPPort:     envOrDefault("HTTP_PORT", "8080"),
		DBHost:       envOrDefault("DB_HOST", "localhost"),
		DBPort:       envOrDefault("DB_PORT", "5432"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    envOrDefault("DB_SSLMODE", "disable"),
		SnapshotPath: envOrDefault("SNAPSHOT_PATH", "orderbook-snapshot.db"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, manager *jobs.JobManager, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.CreateServer(manager).RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			logger.Error("Web server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
