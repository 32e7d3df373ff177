package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/observability"
	"github.com/spec-kit/employee-service/internal/persistence"
	"github.com/spec-kit/employee-service/internal/service"
)

const runGuardKeyPrefix = "daily_summary:run:"

// SummaryScheduler fires the daily summary job on a cron schedule. Missed
// slots are not backfilled; the cron fires at most once per intended slot.
type SummaryScheduler struct {
	cfg     config.SchedulerConfig
	cron    *cron.Cron
	summary *service.SummaryService
	redis   *persistence.Redis
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewSummaryScheduler constructs the scheduler.
func NewSummaryScheduler(cfg config.SchedulerConfig, summary *service.SummaryService, redis *persistence.Redis, metrics *observability.Metrics, logger *zap.Logger) *SummaryScheduler {
	return &SummaryScheduler{
		cfg:     cfg,
		cron:    cron.New(),
		summary: summary,
		redis:   redis,
		metrics: metrics,
		logger:  logger,
	}
}

// Start registers the cron entry and starts the scheduler.
func (s *SummaryScheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("summary scheduler disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.CronSpec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("summary scheduler started", zap.String("cron", s.cfg.CronSpec))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *SummaryScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("summary scheduler stopped")
}

// RunNow triggers one summary run outside the schedule. Used by tests and
// operational tooling; it goes through the same guard as a cron fire.
func (s *SummaryScheduler) RunNow(ctx context.Context) error {
	return s.run(ctx)
}

func (s *SummaryScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := s.run(ctx); err != nil {
		s.logger.Error("daily summary run failed", zap.Error(err))
	}
}

func (s *SummaryScheduler) run(ctx context.Context) error {
	if !s.acquireRunGuard(ctx) {
		s.logger.Info("daily summary already generated for today; skipping")
		return nil
	}

	s.logger.Info("daily summary generation started")
	if err := s.summary.GenerateDailySummary(ctx); err != nil {
		return err
	}
	s.metrics.RecordSummaryRun()
	s.logger.Info("daily summary generation completed")
	return nil
}

// acquireRunGuard claims today's slot in Redis so restarts and extra
// replicas do not duplicate snapshots. An unreachable Redis degrades to
// running the job, which is the right call for a single-node deployment.
func (s *SummaryScheduler) acquireRunGuard(ctx context.Context) bool {
	key := runGuardKeyPrefix + time.Now().Format("2006-01-02")
	acquired, err := s.redis.AcquireRunGuard(ctx, key, s.cfg.RunGuardTTL())
	if err != nil {
		s.logger.Warn("summary run guard unavailable; proceeding without it", zap.Error(err))
		return true
	}
	return acquired
}
