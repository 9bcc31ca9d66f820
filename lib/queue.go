package lib

import (
	"context"

	"go.uber.org/fx"

	"github.com/pawhub/pawhub/pkg/queue"
)

type queueLogger struct {
	logger Logger
}

func (l *queueLogger) Info(format string, args ...interface{}) {
	l.logger.Zap.Infof("[queue] "+format, args...)
}

func (l *queueLogger) Error(format string, args ...interface{}) {
	l.logger.Zap.Errorf("[queue] "+format, args...)
}

// NewQueue creates the background worker pool and ties it to the fx
// lifecycle
func NewQueue(lc fx.Lifecycle, config Config, logger Logger) *queue.Queue {
	q := queue.New(config.Queue.Workers, config.Queue.MaxRetries, &queueLogger{logger: logger})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			q.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			q.Stop()
			return nil
		},
	})

	return q
}
