// Package tasks runs slow work off the frame loop and hands the
// results back to it. Jobs compute on worker goroutines; their apply
// steps run on the frame goroutine, so UI state stays single-threaded.
package tasks

import (
	"context"
	"sync"
)

// Apply mutates UI state. It runs on the frame goroutine via Drain.
type Apply func()

// Runner executes jobs on worker goroutines and queues their apply
// steps for the frame loop.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	wake   func()

	mu      sync.Mutex
	pending []Apply
	wg      sync.WaitGroup
}

// NewRunner creates a runner. wake is called after a job finishes so
// the window can schedule a frame; nil is allowed.
func NewRunner(wake func()) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{ctx: ctx, cancel: cancel, wake: wake}
}

// Go runs job off the frame loop. The job's context is cancelled when
// the runner closes. A nil apply result is dropped.
func (r *Runner) Go(job func(ctx context.Context) Apply) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		apply := job(r.ctx)
		if apply == nil {
			return
		}
		r.mu.Lock()
		if r.ctx.Err() == nil {
			r.pending = append(r.pending, apply)
		}
		r.mu.Unlock()
		if r.wake != nil {
			r.wake()
		}
	}()
}

// Drain runs queued apply steps and reports how many ran. Call from
// the frame goroutine only.
func (r *Runner) Drain() int {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()
	for _, apply := range batch {
		apply()
	}
	return len(batch)
}

// Close cancels in-flight jobs, waits for them to finish and drops
// anything still queued.
func (r *Runner) Close() {
	r.cancel()
	r.wg.Wait()
	r.mu.Lock()
	r.pending = nil
	r.mu.Unlock()
}
