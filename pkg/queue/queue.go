// Package queue runs background tasks on a small worker pool with retry.
// The catalog uses it for photo fetches enqueued during upstream sync.
// Tasks are idempotent, so nothing is persisted; a lost task is simply
// re-enqueued by the next sync pass.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/jpillora/backoff"
)

// Task is one unit of background work
type Task interface {
	// Type names the task kind for logging
	Type() string
	// Do performs the work; a non-nil error triggers a retry
	Do(ctx context.Context) error
}

// FuncTask adapts a closure to the Task interface
type FuncTask struct {
	Kind string
	Fn   func(ctx context.Context) error
}

func (t FuncTask) Type() string                 { return t.Kind }
func (t FuncTask) Do(ctx context.Context) error { return t.Fn(ctx) }

// Logger is the minimal logging surface the queue needs
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Queue fans tasks out to workers; each failed task is retried with
// jittered exponential backoff up to maxRetries times
type Queue struct {
	tasks      chan Task
	workers    int
	maxRetries int
	logger     Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool

	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates a queue; Start must be called before tasks run
func New(workers, maxRetries int, logger Logger) *Queue {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Queue{
		tasks:      make(chan Task, 256),
		workers:    workers,
		maxRetries: maxRetries,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start launches the worker pool
func (q *Queue) Start() {
	q.startOnce.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go q.worker()
		}
		q.logger.Info("queue started with %d workers", q.workers)
	})
}

// Stop cancels running tasks and waits for the workers to drain. The
// stopped flag is flipped under the write lock before the channel closes,
// so a concurrent Submit can never send on the closed channel.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		q.cancel()

		q.mu.Lock()
		q.stopped = true
		q.mu.Unlock()

		close(q.tasks)
		q.wg.Wait()
		q.logger.Info("queue stopped")
	})
}

// Submit enqueues a task. Returns false when the buffer is full or the
// queue is shutting down; callers treat that as "try again next sync".
func (q *Queue) Submit(task Task) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return false
	}

	select {
	case q.tasks <- task:
		return true
	default:
		q.logger.Error("queue full, dropping task %q", task.Type())
		return false
	}
}

// Pending returns the number of buffered tasks
func (q *Queue) Pending() int {
	return len(q.tasks)
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for task := range q.tasks {
		q.run(task)
	}
}

func (q *Queue) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("task %q panicked: %v", task.Type(), r)
		}
	}()

	delay := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    30 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	for attempt := 0; ; attempt++ {
		err := task.Do(q.ctx)
		if err == nil {
			return
		}
		if q.ctx.Err() != nil {
			return
		}
		if attempt >= q.maxRetries {
			q.logger.Error("task %q failed after %d attempts: %v", task.Type(), attempt+1, err)
			return
		}

		q.logger.Error("task %q attempt %d failed, retrying: %v", task.Type(), attempt+1, err)
		select {
		case <-time.After(delay.Duration()):
		case <-q.ctx.Done():
			return
		}
	}
}
