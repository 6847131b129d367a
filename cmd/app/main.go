package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "turnero/docs"

	"turnero/internal/config"
	"turnero/internal/db"
	"turnero/internal/email"
	"turnero/internal/logger"
	"turnero/internal/server"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// @title Turnero API
// @version 1.0
// @description Facility slot booking engine: weekly schedules, quota-tracked memberships, role-scoped calendar.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting Turnero application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()
	logger.Info("Email service initialized")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emailService.Start(ctx)

	srv, err := server.New(database, cfg, emailService, redisClient)
	if err != nil {
		logger.Fatalf("Failed to build server: %v", err)
	}

	// Periodic sweep of past slots. The engine also runs it lazily on
	// calendar reads, so a missed tick is harmless.
	scheduler := cron.New()
	spec := fmt.Sprintf("@every %s", cfg.FinalizeInterval)
	if _, err := scheduler.AddFunc(spec, func() {
		sweepCtx, sweepCancel := context.WithTimeout(context.Background(), time.Minute)
		defer sweepCancel()

		if _, err := srv.Bookings().AutoFinalize(sweepCtx); err != nil {
			logger.Errorf("Finalize sweep failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule finalize sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
