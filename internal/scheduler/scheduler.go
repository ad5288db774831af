package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Scheduler runs the periodic connection health check.
type Scheduler struct {
	cron gocron.Scheduler
	log  *zap.Logger
}

// New registers the health check job. An interval of zero returns a
// scheduler with no jobs.
func New(checker HealthChecker, interval time.Duration, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{cron: cron, log: log}
	if interval <= 0 {
		return s, nil
	}

	timeout := interval / 2
	_, err = cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := checker.CheckHealth(ctx); err != nil {
				s.log.Warn("health check dropped the connection", zap.Error(err))
			}
		}),
		gocron.WithName("connection-health"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = cron.Shutdown()
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() error {
	return s.cron.Shutdown()
}

func (s *Scheduler) JobCount() int {
	return len(s.cron.Jobs())
}
