package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"toolshed-backend/internal/config"
	"toolshed-backend/internal/jobs"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/service"
)

// One-shot runner for the scheduled jobs, for manual or external-cron use.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	jobRunner := jobs.NewJobRunner(db, emailSvc, cfg)
	jobRunner.SendLoanReminders()
}
