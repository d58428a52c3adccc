package watch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/metrics"
)

type triggerRecorder struct {
	metrics.NoopRecorder
	mu      sync.Mutex
	reasons []string
}

func (r *triggerRecorder) IncRebuildTrigger(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func (r *triggerRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reasons...)
}

func TestWorker_CoalescesRequestsDuringBuild(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 10)
	var builds atomic.Int32

	w := NewWorker(func(context.Context) error {
		builds.Add(1)
		started <- struct{}{}
		<-release
		return nil
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	w.Request(ReasonInitial)
	<-started
	for range 5 {
		w.Request(ReasonChange)
	}
	release <- struct{}{}
	<-started
	release <- struct{}{}

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(2), builds.Load())

	cancel()
	<-done
}

func TestWorker_FailedBuildKeepsRunning(t *testing.T) {
	var builds atomic.Int32
	w := NewWorker(func(context.Context) error {
		builds.Add(1)
		return errors.New("boom")
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	w.Request(ReasonChange)
	require.Eventually(t, func() bool { return builds.Load() == 1 }, time.Second, 5*time.Millisecond)
	w.Request(ReasonChange)
	require.Eventually(t, func() bool { return builds.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestWorker_RecordsTriggerReasons(t *testing.T) {
	rec := &triggerRecorder{}
	w := NewWorker(func(context.Context) error { return nil }, rec, nil)
	w.Request(ReasonInitial)
	w.Request(ReasonSchedule)
	require.Equal(t, []string{ReasonInitial, ReasonSchedule}, rec.snapshot())
}
