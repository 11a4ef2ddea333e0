package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"gearshed-backend/internal/config"
	"gearshed-backend/internal/jobs"
	"gearshed-backend/internal/logger"
	fsrepo "gearshed-backend/internal/repository/firestore"
	"gearshed-backend/internal/scheduler"
	"gearshed-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'scan-overdue-rentals', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Gearshed Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Firestore
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

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	rentalService := service.NewRentalService(store.RentalRepository, store.UserRepository, nil)

	jobServices := &jobs.Services{
		Email:  emailService,
		Rental: rentalService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "scan-overdue-rentals":
		jobRunner.ScanOverdueRentals()
	case "send-overdue-reminders":
		jobRunner.SendOverdueReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - scan-overdue-rentals\n")
		fmt.Printf("  - send-overdue-reminders\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
