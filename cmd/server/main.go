package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "toolshed-backend/internal/api/http"
	"toolshed-backend/internal/config"
	"toolshed-backend/internal/jobs"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/repository/postgres"
	"toolshed-backend/internal/scheduler"
	"toolshed-backend/internal/security"
	"toolshed-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Toolshed backend", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Per-statement execution timeout; on expiry the driver failure surfaces
	// as a generic data-access error.
	connStr := fmt.Sprintf("%s&statement_timeout=%d",
		cfg.GetDatabaseConnectionString(), cfg.Database.StatementTimeoutSeconds*1000)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionTokenExpiry)*time.Minute,
	)

	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	toolSvc := service.NewToolService(store.ToolRepository, store.RentalRepository)
	friendSvc := service.NewFriendService(store.FriendRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ToolRepository, store.FriendRepository)
	reportSvc := service.NewReportService(store.ToolRepository, store.FriendRepository, store.RentalRepository)

	jobRunner := jobs.NewJobRunner(db, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(tokenManager, authSvc, toolSvc, friendSvc, rentalSvc, reportSvc)

	logger.Info("Listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
