package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/internal/database"
	"github.com/Adarshkumar111/Maintenance/internal/metrics"
)

// rateLimitCleanupSchedule runs every 10 minutes
const rateLimitCleanupSchedule = "0 */10 * * * *"

// CronService manages scheduled background jobs
type CronService struct {
	cron          *cron.Cron
	db            database.DB
	resetSchedule string
	rateLimit     *RateLimitService
	metrics       *metrics.Metrics
	logger        *logrus.Logger
}

// NewCronService creates a new CronService. resetSchedule uses the six field
// format with seconds, e.g. "0 0 */6 * * *"; an empty schedule disables the
// demo reset. A nil rateLimit disables the rate limit cleanup.
func NewCronService(db database.DB, resetSchedule string, rateLimit *RateLimitService, m *metrics.Metrics, logger *logrus.Logger) *CronService {
	return &CronService{
		cron:          cron.New(cron.WithSeconds()),
		db:            db,
		resetSchedule: resetSchedule,
		rateLimit:     rateLimit,
		metrics:       m,
		logger:        logger,
	}
}

// Start starts all cron jobs
func (s *CronService) Start() error {
	s.logger.Info("Starting cron service...")

	if s.resetSchedule != "" {
		if _, err := s.cron.AddFunc(s.resetSchedule, s.resetDemoDataJob); err != nil {
			return fmt.Errorf("failed to schedule demo reset job: %w", err)
		}
		s.logger.WithField("schedule", s.resetSchedule).Info("✓ Scheduled: Reset demo data")
	}

	if s.rateLimit != nil {
		if _, err := s.cron.AddFunc(rateLimitCleanupSchedule, s.cleanupRateLimitsJob); err != nil {
			return fmt.Errorf("failed to schedule rate limit cleanup job: %w", err)
		}
		s.logger.WithField("schedule", rateLimitCleanupSchedule).Info("✓ Scheduled: Clean up rate limit records")
	}

	s.cron.Start()
	s.logger.Info("✓ Cron service started successfully")

	return nil
}

// Stop stops all cron jobs and waits for a running job to finish
func (s *CronService) Stop() {
	s.logger.Info("Stopping cron service...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("✓ Cron service stopped")
}

// resetDemoDataJob restores the demo data set
func (s *CronService) resetDemoDataJob() {
	startTime := time.Now()

	if err := s.db.Ping(); err != nil {
		s.logger.WithError(err).Error("[CRON ERROR] Demo reset skipped")
		return
	}
	s.db.Reset()
	s.metrics.DemoReset()

	s.logger.WithField("duration", time.Since(startTime).String()).Info("[CRON] ✓ Demo data restored")
}

// cleanupRateLimitsJob forgets clients with no recent complaint submissions
func (s *CronService) cleanupRateLimitsJob() {
	removed := s.rateLimit.CleanupExpired()
	if removed > 0 {
		s.logger.WithField("removed", removed).Info("[CRON] ✓ Rate limit records cleaned up")
	}
}

// RunResetNow runs the demo reset job immediately
func (s *CronService) RunResetNow() {
	s.logger.Info("[MANUAL] Running demo reset now...")
	s.resetDemoDataJob()
}
