package lib

import (
	"context"

	"go.uber.org/fx"

	"github.com/pawhub/pawhub/pkg/crontab"
)

// Crontab wraps the cron scheduler for fx injection. Disabled when the
// upstream sync is disabled, since it is the only scheduled work.
type Crontab struct {
	Cron *crontab.Crontab
}

type crontabLogger struct {
	logger Logger
	prefix string
}

func (l *crontabLogger) Info(format string, args ...interface{}) {
	l.logger.Zap.Infof(l.prefix+format, args...)
}

func (l *crontabLogger) Error(format string, args ...interface{}) {
	l.logger.Zap.Errorf(l.prefix+format, args...)
}

// NewCrontab creates the scheduler and ties it to the fx lifecycle
func NewCrontab(lc fx.Lifecycle, config Config, logger Logger) Crontab {
	if config.Upstream == nil || !config.Upstream.Enable {
		logger.Zap.Info("Crontab is disabled (no upstream sync configured)")
		return Crontab{}
	}

	c := crontab.New(&crontabLogger{logger: logger, prefix: "[crontab] "})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Zap.Info("Starting Crontab")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Zap.Info("Stopping Crontab")
			c.Stop()
			return nil
		},
	})

	return Crontab{Cron: c}
}

// AddTask registers a named task; a no-op when the scheduler is disabled
func (c *Crontab) AddTask(name, spec string, fn crontab.TaskFunc) error {
	if c.Cron != nil {
		return c.Cron.AddTask(name, spec, fn)
	}
	return nil
}

// IsEnabled reports whether the scheduler is running
func (c *Crontab) IsEnabled() bool {
	return c.Cron != nil
}
