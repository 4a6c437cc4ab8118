package jobs

import (
	"database/sql"

	"toolshed-backend/internal/config"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/service"
)

// JobRunner coordinates the scheduled jobs.
type JobRunner struct {
	db     *sql.DB
	email  service.EmailService
	config *config.Config
}

func NewJobRunner(db *sql.DB, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		email:  email,
		config: cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
