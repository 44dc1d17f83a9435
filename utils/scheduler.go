package utils

import (
	"context"
	"fmt"
	"time"

	"coursehub/database"
	"coursehub/logger"
	"coursehub/services"

	"github.com/robfig/cron/v3"
)

const recountTimeout = 5 * time.Minute

// SchedulerConfig holds the cron specs for the background jobs. An empty spec disables the job.
type SchedulerConfig struct {
	HealthCheckSpec string
	RecountSpec     string
}

// InitializeScheduler registers the store health check and the enrollment recount and starts the cron runner.
func InitializeScheduler(cfg SchedulerConfig, db func() database.DbInstance) (*cron.Cron, error) {
	c := cron.New()

	if cfg.HealthCheckSpec != "" {
		if _, err := c.AddFunc(cfg.HealthCheckSpec, func() { CheckDatabase(db()) }); err != nil {
			return nil, fmt.Errorf("health check schedule %q: %w", cfg.HealthCheckSpec, err)
		}
	}

	if cfg.RecountSpec != "" {
		if _, err := c.AddFunc(cfg.RecountSpec, func() { RecountEnrollments(db()) }); err != nil {
			return nil, fmt.Errorf("recount schedule %q: %w", cfg.RecountSpec, err)
		}
	}

	c.Start()
	logger.Info("scheduler started", "healthCheck", cfg.HealthCheckSpec, "recount", cfg.RecountSpec)
	return c, nil
}

// CheckDatabase refreshes the connectivity flag.
func CheckDatabase(inst database.DbInstance) bool {
	if inst.Monitor == nil {
		return false
	}
	return inst.Monitor.Check()
}

// RecountEnrollments repairs every course's enrolledCount from the enrollment table.
func RecountEnrollments(inst database.DbInstance) {
	if inst.Db == nil || !inst.Monitor.Connected() {
		logger.Warn("skipping enrollment recount, database not connected")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recountTimeout)
	defer cancel()

	start := time.Now()
	n, err := services.NewCourseService(inst.Db).RecountEnrollments(ctx)
	if err != nil {
		logger.Error("enrollment recount failed", "error", err)
		return
	}
	logger.Info("enrollment recount finished", "courses", n, "took", time.Since(start))
}
