package scheduler

import (
	"log/slog"
	"time"

	"boxrent/internal/jobs"
	"boxrent/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// Scheduler wires the nightly sweeps onto a cron runner. Specs use the
// 6-field (seconds-first) format and run in UTC.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) {
	if _, err := s.cron.AddFunc(cfg.ExpireRentals, s.jobs.ExpireRentals); err != nil {
		slog.Error("failed to register ExpireRentals job", "error", err.Error())
	}

	if _, err := s.cron.AddFunc(cfg.QueueRenewalNotices, s.jobs.QueueRenewalNotices); err != nil {
		slog.Error("failed to register QueueRenewalNotices job", "error", err.Error())
	}

	slog.Info("cron jobs registered")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("cron scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("cron scheduler stopped")
}
