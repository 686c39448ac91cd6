package notifications

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestQueueDispatcher_RunsAllJobs(t *testing.T) {
	d := NewQueueDispatcher(2, 16, zap.NewNop())

	var count int64
	for i := 0; i < 5; i++ {
		d.Dispatch(func(ctx context.Context) {
			atomic.AddInt64(&count, 1)
		})
	}
	d.Close()

	assert.Equal(t, int64(5), atomic.LoadInt64(&count))
}

func TestQueueDispatcher_DropsWhenQueueFull(t *testing.T) {
	d := NewQueueDispatcher(1, 1, zap.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	var count int64

	// Occupy the single worker.
	d.Dispatch(func(ctx context.Context) {
		close(started)
		<-release
		atomic.AddInt64(&count, 1)
	})
	<-started

	// Fills the queue slot.
	d.Dispatch(func(ctx context.Context) { atomic.AddInt64(&count, 1) })
	// Queue is full now, so this one is dropped instead of blocking.
	d.Dispatch(func(ctx context.Context) { atomic.AddInt64(&count, 1) })

	close(release)
	d.Close()

	assert.Equal(t, int64(2), atomic.LoadInt64(&count))
}

func TestQueueDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewQueueDispatcher(1, 1, zap.NewNop())
	d.Close()
	d.Close()
}

func TestQueueDispatcher_RecoversFromPanickingJob(t *testing.T) {
	d := NewQueueDispatcher(1, 4, zap.NewNop())

	var count int64
	d.Dispatch(func(ctx context.Context) { panic("boom") })
	d.Dispatch(func(ctx context.Context) { atomic.AddInt64(&count, 1) })
	d.Close()

	assert.Equal(t, int64(1), atomic.LoadInt64(&count))
}

func TestSyncDispatcher_RunsInline(t *testing.T) {
	var ran bool
	SyncDispatcher{}.Dispatch(func(ctx context.Context) { ran = true })
	assert.True(t, ran)
}
