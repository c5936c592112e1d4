package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingRemover struct {
	calls   atomic.Int32
	maxIdle atomic.Int64
}

func (c *countingRemover) CleanupIdle(maxIdle time.Duration) int {
	c.calls.Add(1)
	c.maxIdle.Store(int64(maxIdle))
	return 1
}

func TestWorkerRunsUntilCancelled(t *testing.T) {
	remover := &countingRemover{}
	w := NewWorker(remover, time.Hour, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return remover.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, int64(time.Hour), remover.maxIdle.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestRunCleanup(t *testing.T) {
	remover := &countingRemover{}
	w := NewWorker(remover, time.Minute, time.Hour)
	require.Equal(t, 1, w.runCleanup())
	require.Equal(t, int32(1), remover.calls.Load())
}
