package notifications

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Job is one unit of fan-out work, run off the request path.
type Job func(ctx context.Context)

// Dispatcher runs fan-out jobs without blocking the caller. The producer's
// request never waits for a job, and a job's failure never reaches it.
type Dispatcher interface {
	Dispatch(job Job)
	Close()
}

// QueueDispatcher is a buffered channel drained by a fixed worker pool. When
// the queue is full the job is dropped and logged rather than blocking the
// request path.
type QueueDispatcher struct {
	jobs      chan Job
	wg        sync.WaitGroup
	log       *zap.Logger
	closeOnce sync.Once
}

// NewQueueDispatcher starts workers draining a queue of the given size.
func NewQueueDispatcher(workers, queueSize int, log *zap.Logger) *QueueDispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	d := &QueueDispatcher{
		jobs: make(chan Job, queueSize),
		log:  log,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	return d
}

func (d *QueueDispatcher) worker(id int) {
	defer d.wg.Done()
	for job := range d.jobs {
		d.run(id, job)
	}
}

func (d *QueueDispatcher) run(workerID int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("notification job panicked",
				zap.Int("worker", workerID),
				zap.Any("panic", r),
			)
		}
	}()
	job(context.Background())
}

// Dispatch enqueues a job. It never blocks: a full queue drops the job with a
// logged warning.
func (d *QueueDispatcher) Dispatch(job Job) {
	select {
	case d.jobs <- job:
	default:
		d.log.Warn("notification queue full, dropping job")
	}
}

// Close stops accepting jobs and waits for queued ones to drain.
func (d *QueueDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
		d.wg.Wait()
	})
}

// SyncDispatcher runs jobs inline. It backs tests and any deployment that
// wants fan-out on the request goroutine.
type SyncDispatcher struct{}

func (SyncDispatcher) Dispatch(job Job) { job(context.Background()) }
func (SyncDispatcher) Close()           {}
