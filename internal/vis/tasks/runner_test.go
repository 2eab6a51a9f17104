package tasks

import (
	"context"
	"testing"
	"time"
)

func TestRunnerDeliversApply(t *testing.T) {
	woke := make(chan struct{}, 1)
	r := NewRunner(func() {
		select {
		case woke <- struct{}{}:
		default:
		}
	})
	defer r.Close()

	var got int
	r.Go(func(ctx context.Context) Apply {
		return func() { got = 42 }
	})

	select {
	case <-woke:
	case <-time.After(5 * time.Second):
		t.Fatal("wake never fired")
	}
	if n := r.Drain(); n != 1 {
		t.Fatalf("Drain ran %d applies, want 1", n)
	}
	if got != 42 {
		t.Errorf("apply did not run, got = %d", got)
	}
}

func TestDrainEmpty(t *testing.T) {
	r := NewRunner(nil)
	defer r.Close()
	if n := r.Drain(); n != 0 {
		t.Errorf("Drain on empty queue = %d, want 0", n)
	}
}

func TestNilApplyDropped(t *testing.T) {
	done := make(chan struct{})
	r := NewRunner(nil)
	defer r.Close()
	r.Go(func(ctx context.Context) Apply {
		defer close(done)
		return nil
	})
	<-done
	// The goroutine may still be between returning and wg.Done; a nil
	// apply never reaches the queue either way.
	if n := r.Drain(); n != 0 {
		t.Errorf("Drain = %d, want 0", n)
	}
}

func TestCloseCancelsJobs(t *testing.T) {
	r := NewRunner(nil)
	var ran bool
	started := make(chan struct{})
	r.Go(func(ctx context.Context) Apply {
		close(started)
		<-ctx.Done()
		return func() { ran = true }
	})
	<-started
	r.Close()
	if n := r.Drain(); n != 0 {
		t.Errorf("Drain after Close = %d, want 0", n)
	}
	if ran {
		t.Error("apply from a cancelled job must not run")
	}
}
