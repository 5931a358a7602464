package notification

import (
	"context"

	"smartincident/internal/shared/goroutine"
	"smartincident/internal/shared/logger"
)

// Task is a unit of fire-and-forget notification work.
type Task func(ctx context.Context) error

type job struct {
	name string
	task Task
}

// Dispatcher runs notification work on a bounded queue consumed by a single
// background worker. Enqueueing never blocks a request: when the queue is
// full the job is dropped and logged. Failures are logged, never surfaced,
// never retried.
type Dispatcher struct {
	queue  chan job
	logger logger.Interface
}

func NewDispatcher(queueSize int, log logger.Interface) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Dispatcher{
		queue:  make(chan job, queueSize),
		logger: log,
	}
}

// Start launches the worker. It drains until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	goroutine.SafeGo(d.logger, "notification-dispatcher", func() {
		for {
			select {
			case <-ctx.Done():
				return
			case j := <-d.queue:
				if err := j.task(ctx); err != nil {
					d.logger.Warnw("notification delivery failed", "job", j.name, "error", err)
				}
			}
		}
	})
}

// Enqueue schedules a task. It returns immediately; a full queue drops the
// task.
func (d *Dispatcher) Enqueue(name string, task Task) {
	select {
	case d.queue <- job{name: name, task: task}:
	default:
		d.logger.Warnw("notification queue full, dropping job", "job", name)
	}
}
