package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/config"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/database"
	handlerPkg "github.com/mac-cloud/StreamlineLabsWebsite/internal/handler"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/mailer"
	metricsPkg "github.com/mac-cloud/StreamlineLabsWebsite/internal/metrics"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/repository"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/router"
)

func main() {
	// Configure logging
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting Streamline Labs contact service")

	// Local development keeps credentials in .env
	if err := godotenv.Load(); err == nil {
		logrus.Info("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Configuration validation failed: %v", err)
	}

	// Initialize database
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize metrics
	metrics := metricsPkg.NewMetrics()

	// Initialize mail transport
	sender, err := mailer.NewSender(&cfg.Mail)
	if err != nil {
		logrus.Fatalf("Failed to create mail sender: %v", err)
	}
	if sender == nil {
		logrus.Warn("Mail is disabled, notifications will be skipped")
	} else {
		logrus.Infof("Using %s mail transport", cfg.Mail.Transport)
	}
	notifier := mailer.NewNotifier(sender, &cfg.Mail, metrics)

	// Initialize repository and HTTP handlers
	repo := repository.New(db)
	handlers := handlerPkg.NewHandlers(db, repo, notifier, metrics)

	// Setup HTTP server
	r := router.SetupRouter(handlers)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
