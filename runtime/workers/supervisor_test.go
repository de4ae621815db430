package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingWorker struct {
	runs    atomic.Int32
	outcome func(run int32) error
}

func (w *countingWorker) Run(ctx context.Context) error {
	return w.outcome(w.runs.Add(1))
}

func Test_Supervisor_Restarts_A_Panicking_Worker(t *testing.T) {
	req := require.New(t)
	done := make(chan struct{})
	worker := &countingWorker{}
	worker.outcome = func(run int32) error {
		if run == 1 {
			panic("boom")
		}
		close(done)
		return nil
	}

	sup := NewSupervisor(slog.Default(), 10*time.Millisecond)
	sup.Add(worker)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go sup.Run(ctx)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("worker was never restarted")
	}
	req.GreaterOrEqual(worker.runs.Load(), int32(2))
}

func Test_Supervisor_Does_Not_Restart_A_Finished_Worker(t *testing.T) {
	req := require.New(t)
	worker := &countingWorker{}
	worker.outcome = func(int32) error { return nil }

	sup := NewSupervisor(slog.Default(), time.Millisecond)
	sup.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	finished := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not drain")
	}
	req.Equal(int32(1), worker.runs.Load())
}

func Test_Supervisor_Stop_Cancels_Workers(t *testing.T) {
	started := make(chan struct{})
	waiter := workerFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return nil
	})

	sup := NewSupervisor(slog.Default(), time.Millisecond)
	sup.Add(waiter)

	finished := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(finished)
	}()

	<-started
	sup.Stop()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not drain the supervisor")
	}
}

type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error { return f(ctx) }
