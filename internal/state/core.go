package state

import (
	"context"
	"slices"
	"sync"
)

// Core is the store machinery embedded by every application container. It
// owns the observer registry, the error slot, and the transaction lifecycle;
// the container owns the live state fields and hands Core two hooks:
//
//   - snapshot builds a fresh value copy of live state, embedding the error
//     slot it is given;
//   - restore copies the transactional fields (and only those) of a
//     previously captured snapshot back onto live state. The error slot is
//     never restored.
//
// The baseline contract assumes intents are issued serially; the internal
// mutex is the hardening that keeps concurrent misuse from corrupting the
// registry or interleaving a notification mid-commit.
type Core[S any] struct {
	mu        sync.Mutex
	snapshot  func(err error) S
	restore   func(origin S)
	observers []Observer[S]
	err       error
	runner    *Runner
}

// NewCore wires a core around the container's snapshot and restore hooks.
func NewCore[S any](snapshot func(err error) S, restore func(origin S)) *Core[S] {
	return &Core[S]{
		snapshot: snapshot,
		restore:  restore,
		runner:   NewRunner(),
	}
}

// Snapshot returns a fresh immutable copy of current state. Never fails.
func (c *Core[S]) Snapshot() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(c.err)
}

// Bind registers an observer. Binding an already-bound observer is a no-op.
func (c *Core[S]) Bind(o Observer[S]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.observers, o) {
		return
	}
	c.observers = append(c.observers, o)
}

// Unbind removes an observer and reports whether it was bound.
func (c *Core[S]) Unbind(o Observer[S]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.Index(c.observers, o)
	if i < 0 {
		return false
	}
	c.observers = slices.Delete(c.observers, i, i+1)
	return true
}

// Bound reports the registry size.
func (c *Core[S]) Bound() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.observers)
}

// Begin opens a transaction: the current snapshot becomes the rollback
// origin and the mutation plan starts empty.
func (c *Core[S]) Begin() *Transaction[S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Transaction[S]{origin: c.snapshot(c.err)}
}

// Commit applies the transaction's steps in insertion order against live
// state. If a step fails, the transactional fields are restored from the
// rollback origin and the step's error is recorded in the error slot
// verbatim. Commit notifies every bound observer exactly once per call,
// whether the plan succeeded, failed, or was empty.
func (c *Core[S]) Commit(tx *Transaction[S]) {
	c.mu.Lock()
	for _, step := range tx.steps {
		if err := step(); err != nil {
			c.restore(tx.origin)
			c.err = err
			break
		}
	}
	snap := c.snapshot(c.err)
	obs := slices.Clone(c.observers)
	c.mu.Unlock()
	for _, o := range obs {
		o.OnStateChanged(snap)
	}
}

// CommitAsync has the same contract as Commit, but every step executes on
// the store's serial runner: in insertion order, one at a time, never in
// parallel. The context is checked at the suspension point before each step;
// a context error is handled like a failed step. The store lock is scoped to
// each step rather than the whole loop, so offloaded work can never deadlock
// against a lock-holder; whole-commit exclusivity remains the caller's
// serial-intents obligation from the baseline contract.
func (c *Core[S]) CommitAsync(ctx context.Context, tx *Transaction[S]) {
	var failed error
	for _, step := range tx.steps {
		var stepErr error
		err := c.runner.Do(ctx, func() {
			c.mu.Lock()
			stepErr = step()
			c.mu.Unlock()
		})
		if err != nil {
			failed = err
		} else {
			failed = stepErr
		}
		if failed != nil {
			break
		}
	}
	c.mu.Lock()
	if failed != nil {
		c.restore(tx.origin)
		c.err = failed
	}
	snap := c.snapshot(c.err)
	obs := slices.Clone(c.observers)
	c.mu.Unlock()
	for _, o := range obs {
		o.OnStateChanged(snap)
	}
}

// Offload runs fn on the store's serial runner and waits for it. Used by
// asynchronous operations to move their planning step off the calling
// goroutine while keeping all deferred work in one ordered lane.
func (c *Core[S]) Offload(ctx context.Context, fn func()) error {
	return c.runner.Do(ctx, fn)
}

// SetError assigns err to the error slot (nil clears it) and notifies every
// bound observer exactly once.
func (c *Core[S]) SetError(err error) {
	c.mu.Lock()
	c.err = err
	snap := c.snapshot(c.err)
	obs := slices.Clone(c.observers)
	c.mu.Unlock()
	for _, o := range obs {
		o.OnStateChanged(snap)
	}
}

// HasError reports whether the error slot is occupied.
func (c *Core[S]) HasError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err != nil
}

// Err returns the current error slot value.
func (c *Core[S]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close stops the async runner. Pending offloaded work finishes first;
// later async commits fail with ErrStoreClosed.
func (c *Core[S]) Close() {
	c.runner.Close()
}
