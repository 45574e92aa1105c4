package components

import (
	"context"

	"boxrent/internal/jobs"
	"boxrent/internal/pkg/clock"
	"boxrent/internal/pkg/config"
	"boxrent/internal/scheduler"
	"boxrent/internal/usecase/queries"
	"boxrent/internal/usecase/shared"

	"go.uber.org/fx"
)

type JobRunnerParams struct {
	fx.In

	UoW      shared.UnitOfWork
	ViewRepo queries.RentalViewRepo
	Clock    clock.Clock
	Cfg      config.Config
}

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewJobRunner,
		NewScheduler,
	),
	fx.Invoke(runScheduler),
)

func NewJobRunner(p JobRunnerParams) *jobs.JobRunner {
	return jobs.NewJobRunner(p.UoW, p.ViewRepo, p.Clock, p.Cfg.Scheduler)
}

func NewScheduler(jobRunner *jobs.JobRunner, cfg config.Config) *scheduler.Scheduler {
	return scheduler.NewScheduler(jobRunner, cfg.Scheduler)
}

func runScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
