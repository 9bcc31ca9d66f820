// Package crontab wraps robfig/cron with named task registration, panic
// recovery and pluggable logging.
package crontab

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// TaskFunc is the function type for scheduled tasks
type TaskFunc func(ctx context.Context)

// Logger is the minimal logging surface the scheduler needs
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type registration struct {
	name string
	spec string
	fn   TaskFunc
}

// Crontab schedules named tasks with six-field cron specs (seconds first)
type Crontab struct {
	cron     *cron.Cron
	logger   Logger
	tasks    []registration
	entryIDs map[string]cron.EntryID
	mu       sync.Mutex
	started  bool
}

// New creates a scheduler; tasks may be added before or after Start
func New(logger Logger) *Crontab {
	return &Crontab{
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger,
		entryIDs: make(map[string]cron.EntryID),
	}
}

// AddTask registers a named task. Names must be unique; re-registering an
// existing name is an error rather than a silent replace.
func (c *Crontab) AddTask(name, spec string, fn TaskFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.tasks {
		if r.name == name {
			return fmt.Errorf("crontab: task %q already exists", name)
		}
	}

	reg := registration{name: name, spec: spec, fn: fn}
	c.tasks = append(c.tasks, reg)

	if c.started {
		return c.schedule(reg)
	}
	return nil
}

// RemoveTask unregisters a task by name
func (c *Crontab) RemoveTask(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, r := range c.tasks {
		if r.name == name {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			if entryID, ok := c.entryIDs[name]; ok {
				c.cron.Remove(entryID)
				delete(c.entryIDs, name)
			}
			return nil
		}
	}

	return fmt.Errorf("crontab: task %q not found", name)
}

// RunTask triggers a task immediately, outside its schedule
func (c *Crontab) RunTask(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.tasks {
		if r.name == name {
			go c.wrap(r)()
			return nil
		}
	}

	return fmt.Errorf("crontab: task %q not found", name)
}

// Start schedules every registered task and starts the cron loop
func (c *Crontab) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}

	for _, r := range c.tasks {
		if err := c.schedule(r); err != nil {
			c.logger.Error("failed to schedule task %q: %v", r.name, err)
		}
	}

	c.cron.Start()
	c.started = true
	c.logger.Info("crontab started with %d tasks", len(c.entryIDs))
}

// Stop halts scheduling; running tasks finish on their own
func (c *Crontab) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	c.cron.Stop()
	c.started = false
	c.logger.Info("crontab stopped")
}

// TaskCount returns the number of registered tasks
func (c *Crontab) TaskCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tasks)
}

// IsRunning reports whether the cron loop has been started
func (c *Crontab) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// schedule must be called with the lock held
func (c *Crontab) schedule(r registration) error {
	entryID, err := c.cron.AddFunc(r.spec, c.wrap(r))
	if err != nil {
		return fmt.Errorf("crontab: task %q with spec %q: %w", r.name, r.spec, err)
	}

	c.entryIDs[r.name] = entryID
	c.logger.Info("task %q scheduled with spec %q", r.name, r.spec)
	return nil
}

// wrap adds panic recovery and duration logging around a task
func (c *Crontab) wrap(r registration) func() {
	return func() {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				c.logger.Error("task %q panicked: %v", r.name, rec)
			}
		}()

		r.fn(context.Background())
		c.logger.Info("task %q completed in %s", r.name, time.Since(start))
	}
}
