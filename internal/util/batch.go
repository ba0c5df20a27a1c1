package util

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Batch runs independent side effects concurrently and joins all of them.
// Required tasks decide the batch result; best-effort tasks are only logged.
type Batch struct {
	group  errgroup.Group
	logger *slog.Logger
}

// NewBatch returns an empty batch logging best-effort failures to logger.
func NewBatch(logger *slog.Logger) *Batch {
	return &Batch{logger: logger}
}

// Go schedules a required task. Its error is returned by Wait.
func (b *Batch) Go(fn func() error) {
	b.group.Go(fn)
}

// GoBestEffort schedules a task whose error is logged and dropped.
func (b *Batch) GoBestEffort(name string, fn func() error) {
	b.group.Go(func() error {
		if err := fn(); err != nil && b.logger != nil {
			b.logger.Warn("Best-effort task failed",
				slog.String("task", name),
				slog.Any("error", err),
			)
		}

		return nil
	})
}

// Wait blocks until every task has returned and reports the first required task error.
func (b *Batch) Wait() error {
	return b.group.Wait()
}
