package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Dustin-Locke/HealthAndwellness/internal/jobs"
)

const DefaultSpec = "@hourly"

type Runner interface {
	Run(ctx context.Context) (jobs.RunReport, error)
}

type Config struct {
	// Cron expression or descriptor, "@hourly" when empty
	Spec     string
	Location *time.Location
	// Upper bound for one tick, no bound when zero
	Timeout time.Duration
	Logger  *slog.Logger
}

// slogAdapter lets cron report through slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, append(keysAndValues, "error", err.Error())...)
}

// Start schedules job and starts the cron. Callers stop it on shutdown.
func Start(cfg Config, job Runner) (*cron.Cron, error) {
	c, err := New(cfg, job)
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// New builds the cron with job registered, without starting it.
func New(cfg Config, job Runner) (*cron.Cron, error) {
	if job == nil {
		return nil, errors.New("scheduler: nil job")
	}
	if cfg.Spec == "" {
		cfg.Spec = DefaultSpec
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	logger := slogAdapter{logger: cfg.Logger.With(slog.String("component", "scheduler"))}

	c := cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	_, err := c.AddJob(cfg.Spec, cron.FuncJob(func() {
		ctx := context.Background()
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		if _, err := job.Run(ctx); err != nil && !errors.Is(err, jobs.ErrJobRunning) {
			logger.logger.Error("reminder tick failed", slog.String("error", err.Error()))
		}
	}))
	if err != nil {
		return nil, errors.New("scheduling reminder job error: " + err.Error())
	}
	return c, nil
}
