package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/config"
	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
	"github.com/Adarshkumar111/Maintenance/internal/server"
	"github.com/Adarshkumar111/Maintenance/internal/services"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Maintenance Portal")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Demo data lives in memory and is seeded on start
	db := database.NewMemoryDB()
	defer db.Close()
	logger.Info("Demo data loaded")

	m := metrics.New()
	rateLimitService := server.NewRateLimitService(cfg)

	// Initialize and start cron service
	resetSchedule := ""
	if cfg.Demo.ResetEnabled {
		resetSchedule = cfg.Demo.ResetSchedule
	}
	cronService := services.NewCronService(db, resetSchedule, rateLimitService, m, logger)
	if err := cronService.Start(); err != nil {
		logger.Fatalf("Failed to start cron service: %v", err)
	}
	defer cronService.Stop()
	logger.WithField("demo_reset", cfg.Demo.ResetEnabled).Info("Cron service started")

	server.Version = version
	router, err := server.NewRouter(cfg, db, rateLimitService, m, logger)
	if err != nil {
		logger.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
