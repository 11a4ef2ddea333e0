package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	httpapi "gearshed-backend/internal/api/http"
	"gearshed-backend/internal/config"
	"gearshed-backend/internal/jobs"
	"gearshed-backend/internal/logger"
	fsrepo "gearshed-backend/internal/repository/firestore"
	"gearshed-backend/internal/scheduler"
	"gearshed-backend/internal/security"
	"gearshed-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Gearshed Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firestore configuration", "project_id", cfg.Firestore.ProjectID)

	ctx := context.Background()

	// Initialize Firebase app and Firestore
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories
	store := fsrepo.NewStore(client)

	// Initialize Security
	var verifier security.TokenVerifier
	switch cfg.Auth.Mode {
	case "firebase":
		authClient, err := app.Auth(ctx)
		if err != nil {
			logger.Error("Failed to initialize Firebase auth", "error", err)
			log.Fatalf("Failed to initialize Firebase auth: %v", err)
		}
		verifier = security.NewFirebaseVerifier(authClient)
		logger.Info("Using Firebase token verification")
	default:
		verifier = security.NewTokenManager(cfg.Auth.JWTSecret)
		logger.Info("Using local token verification")
	}

	// Initialize live update hub
	hub := httpapi.NewHub()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	catalogSvc := service.NewCatalogService(store.ItemRepository, hub)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	cartSvc := service.NewCartService(store.UserRepository, store.ItemRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.UserRepository, hub)
	reportSvc := service.NewReportService(store.ReportRepository, store.UserRepository, emailSvc)
	userSvc := service.NewUserService(store.UserRepository, store.ReceiptRepository, store.ReportRepository)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Email:  emailSvc,
		Rental: rentalSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Config:     cfg,
		Verifier:   verifier,
		CatalogSvc: catalogSvc,
		CategSvc:   categorySvc,
		CartSvc:    cartSvc,
		RentalSvc:  rentalSvc,
		ReportSvc:  reportSvc,
		UserSvc:    userSvc,
		Hub:        hub,
	})

	// No read/write timeouts here, /api/live holds connections open.
	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Received shutdown signal", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
