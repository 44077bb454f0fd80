package state

import (
	"context"
	"sync"
)

type task struct {
	fn   func()
	done chan struct{}
}

// Runner executes submitted tasks one at a time on a single background
// goroutine, in strict submission order. It is the deferred-execution context
// behind CommitAsync: offloaded work stays serialized, so container state is
// still only ever mutated from one control path at a time.
//
// The goroutine starts on first use and stops at Close.
type Runner struct {
	tasks chan task
	quit  chan struct{}
	start func()
	stop  func()
}

// NewRunner returns an idle runner.
func NewRunner() *Runner {
	r := &Runner{
		tasks: make(chan task),
		quit:  make(chan struct{}),
	}
	r.start = sync.OnceFunc(func() { go r.loop() })
	r.stop = sync.OnceFunc(func() { close(r.quit) })
	return r
}

func (r *Runner) loop() {
	for {
		select {
		case t := <-r.tasks:
			t.fn()
			close(t.done)
		case <-r.quit:
			return
		}
	}
}

// Do submits fn and waits for it to finish. The context guards submission
// only: once fn has started it always runs to completion. After Close, Do
// fails with ErrStoreClosed.
func (r *Runner) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.start()
	t := task{fn: fn, done: make(chan struct{})}
	select {
	case r.tasks <- t:
	case <-r.quit:
		return ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-t.done
	return nil
}

// Close stops the runner. In-flight work finishes; later submissions fail.
// Safe to call more than once.
func (r *Runner) Close() {
	r.stop()
}
