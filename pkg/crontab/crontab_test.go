package crontab

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(format string, args ...interface{})  {}
func (testLogger) Error(format string, args ...interface{}) {}

func TestCrontabRunsScheduledTask(t *testing.T) {
	c := New(testLogger{})

	var executed int32
	err := c.AddTask("tick", "* * * * * *", func(ctx context.Context) {
		atomic.AddInt32(&executed, 1)
	})
	require.NoError(t, err)

	c.Start()
	defer c.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for atomic.LoadInt32(&executed) == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	assert.Positive(t, atomic.LoadInt32(&executed))
}

func TestCrontabRejectsDuplicateName(t *testing.T) {
	c := New(testLogger{})

	require.NoError(t, c.AddTask("job", "0 * * * * *", func(ctx context.Context) {}))
	assert.Error(t, c.AddTask("job", "0 * * * * *", func(ctx context.Context) {}))
	assert.Equal(t, 1, c.TaskCount())
}

func TestCrontabAddAfterStart(t *testing.T) {
	c := New(testLogger{})
	c.Start()
	defer c.Stop()

	var executed int32
	err := c.AddTask("late", "* * * * * *", func(ctx context.Context) {
		atomic.AddInt32(&executed, 1)
	})
	require.NoError(t, err)

	deadline := time.Now().Add(3 * time.Second)
	for atomic.LoadInt32(&executed) == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	assert.Positive(t, atomic.LoadInt32(&executed))
}

func TestCrontabRemoveTask(t *testing.T) {
	c := New(testLogger{})

	require.NoError(t, c.AddTask("job", "0 * * * * *", func(ctx context.Context) {}))
	require.NoError(t, c.RemoveTask("job"))
	assert.Equal(t, 0, c.TaskCount())

	assert.Error(t, c.RemoveTask("job"))
}

func TestCrontabRunTaskImmediately(t *testing.T) {
	c := New(testLogger{})

	done := make(chan struct{})
	require.NoError(t, c.AddTask("manual", "0 0 1 1 * *", func(ctx context.Context) {
		close(done)
	}))

	require.NoError(t, c.RunTask("manual"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was not triggered")
	}

	assert.Error(t, c.RunTask("missing"))
}

func TestCrontabInvalidSpecAfterStart(t *testing.T) {
	c := New(testLogger{})
	c.Start()
	defer c.Stop()

	assert.Error(t, c.AddTask("broken", "not a spec", func(ctx context.Context) {}))
	assert.True(t, c.IsRunning())
}

func TestCrontabRecoversFromPanic(t *testing.T) {
	c := New(testLogger{})

	done := make(chan struct{})
	require.NoError(t, c.AddTask("panics", "0 0 1 1 * *", func(ctx context.Context) {
		defer close(done)
		panic("boom")
	}))

	require.NoError(t, c.RunTask("panics"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was not triggered")
	}
}
