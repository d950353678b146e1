package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestRunRefreshesUntilCanceled(t *testing.T) {
	r := &countingRefresher{err: errors.New("flaky")}
	w := NewRefreshWorker(r, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRunDisabled(t *testing.T) {
	r := &countingRefresher{}
	NewRefreshWorker(r, 0, zap.NewNop()).Run(context.Background())
	assert.Zero(t, r.calls.Load())

	var w *RefreshWorker
	w.Run(context.Background())
}
