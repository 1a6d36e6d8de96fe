package reconciler

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI bounds how many snapshot builds run at once so a large
// backlog of (user, date) pairs cannot fan out into unbounded goroutines.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task builds one snapshot. Errors are logged, not retried; the pair shows
// up again on the next tick if its snapshot is still missing.
type Task func() error

type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	tasks := make(chan Task, size)
	wp := &WorkerPool{tasks: tasks}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("snapshot task failed", zap.Error(err))
		}
	}
}

// AddTask blocks while every worker is busy and the queue is full, so a
// canceled tick abandons its remaining pairs instead of piling them up.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.tasks:
	default:
		close(wp.tasks)
	}
}
