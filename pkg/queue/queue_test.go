package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(format string, args ...interface{})  {}
func (testLogger) Error(format string, args ...interface{}) {}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestQueueExecutesTasks(t *testing.T) {
	q := New(2, 0, testLogger{})
	q.Start()
	defer q.Stop()

	var count int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		ok := q.Submit(FuncTask{Kind: "count", Fn: func(ctx context.Context) error {
			defer wg.Done()
			atomic.AddInt32(&count, 1)
			return nil
		}})
		require.True(t, ok)
	}

	wg.Wait()
	assert.Equal(t, int32(10), atomic.LoadInt32(&count))
}

func TestQueueRetriesUntilSuccess(t *testing.T) {
	q := New(1, 5, testLogger{})
	q.Start()
	defer q.Stop()

	var attempts int32
	q.Submit(FuncTask{Kind: "flaky", Fn: func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("transient")
		}
		return nil
	}})

	waitFor(t, func() bool { return atomic.LoadInt32(&attempts) == 3 })
}

func TestQueueGivesUpAfterMaxRetries(t *testing.T) {
	q := New(1, 2, testLogger{})
	q.Start()
	defer q.Stop()

	var attempts int32
	q.Submit(FuncTask{Kind: "doomed", Fn: func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("permanent")
	}})

	// 1 initial attempt + 2 retries
	waitFor(t, func() bool { return atomic.LoadInt32(&attempts) == 3 })
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestQueueRejectsAfterStop(t *testing.T) {
	q := New(1, 0, testLogger{})
	q.Start()
	q.Stop()

	ok := q.Submit(FuncTask{Kind: "late", Fn: func(ctx context.Context) error { return nil }})
	assert.False(t, ok)
}

func TestQueueSubmitDuringStop(t *testing.T) {
	noop := FuncTask{Kind: "noop", Fn: func(ctx context.Context) error { return nil }}

	// hammer Submit against Stop; a send on the closed task channel
	// would panic and fail the run
	for i := 0; i < 500; i++ {
		q := New(2, 0, testLogger{})
		q.Start()

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					q.Submit(noop)
				}
			}()
		}

		q.Stop()
		wg.Wait()

		assert.False(t, q.Submit(noop))
	}
}

func TestQueueRecoversFromPanic(t *testing.T) {
	q := New(1, 0, testLogger{})
	q.Start()
	defer q.Stop()

	var done int32
	q.Submit(FuncTask{Kind: "panics", Fn: func(ctx context.Context) error {
		panic("boom")
	}})
	q.Submit(FuncTask{Kind: "after", Fn: func(ctx context.Context) error {
		atomic.StoreInt32(&done, 1)
		return nil
	}})

	waitFor(t, func() bool { return atomic.LoadInt32(&done) == 1 })
}
