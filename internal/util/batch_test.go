package util

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBatch_WaitsForAllTasks(t *testing.T) {
	batch := NewBatch(newDiscardLogger())

	var done atomic.Int32
	for range 3 {
		batch.GoBestEffort("sleep", func() error {
			time.Sleep(10 * time.Millisecond)
			done.Add(1)

			return nil
		})
	}
	batch.Go(func() error {
		done.Add(1)

		return nil
	})

	require.NoError(t, batch.Wait())
	assert.Equal(t, int32(4), done.Load())
}

func TestBatch_BestEffortFailureIsDropped(t *testing.T) {
	batch := NewBatch(newDiscardLogger())

	var mutated atomic.Bool
	batch.Go(func() error {
		mutated.Store(true)

		return nil
	})
	batch.GoBestEffort("notify", func() error {
		return errors.New("smtp unavailable")
	})

	require.NoError(t, batch.Wait())
	assert.True(t, mutated.Load())
}

func TestBatch_RequiredFailureIsReturned(t *testing.T) {
	batch := NewBatch(nil)
	want := errors.New("database down")

	var notified atomic.Bool
	batch.Go(func() error {
		return want
	})
	batch.GoBestEffort("notify", func() error {
		notified.Store(true)

		return nil
	})

	err := batch.Wait()
	require.ErrorIs(t, err, want)
	assert.True(t, notified.Load(), "best-effort tasks still run when a required task fails")
}

func TestBatch_TasksRunConcurrently(t *testing.T) {
	batch := NewBatch(newDiscardLogger())

	// Both tasks block until the other has started; a sequential runner would deadlock.
	var started sync.WaitGroup
	started.Add(2)
	for range 2 {
		batch.Go(func() error {
			started.Done()
			started.Wait()

			return nil
		})
	}

	finished := make(chan error, 1)
	go func() { finished <- batch.Wait() }()

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("batch tasks did not run concurrently")
	}
}
