// Package dispatch routes external intents to registered domain operations
// and signals the UI-integration layer through a refresh callback.
package dispatch

import (
	"context"
	"fmt"

	"github.com/jask/samtui/internal/state"
)

// Intent is one external request: an operation identifier plus an optional
// payload the handler knows how to interpret.
type Intent struct {
	Op      string
	Payload any
}

// Handler executes the domain operation behind an intent. A handler that
// takes the asynchronous model path returns only after the whole chain
// resolves, so refresh keeps its commit-before-refresh ordering for free.
type Handler func(ctx context.Context, payload any) error

// Dispatcher is a registry of handlers keyed by operation identifier.
// Register everything before dispatching begins; the registry is read-only
// afterwards and safe for concurrent Dispatch calls.
type Dispatcher struct {
	handlers map[string]Handler
	refresh  func()
}

// New returns a dispatcher whose refresh callback is invoked exactly once
// after each successfully dispatched intent. A nil refresh is allowed.
func New(refresh func()) *Dispatcher {
	if refresh == nil {
		refresh = func() {}
	}
	return &Dispatcher{
		handlers: map[string]Handler{},
		refresh:  refresh,
	}
}

// Register binds op to h. Empty ops and nil handlers are ignored; a later
// registration for the same op replaces the earlier one.
func (d *Dispatcher) Register(op string, h Handler) {
	if op == "" || h == nil {
		return
	}
	d.handlers[op] = h
}

// Dispatch looks up the intent's handler, invokes it, and on success fires
// the refresh callback. A handler error propagates to the caller and skips
// the refresh. Unknown operations fail with state.ErrUnsupportedOperation.
func (d *Dispatcher) Dispatch(ctx context.Context, in Intent) error {
	h, ok := d.handlers[in.Op]
	if !ok {
		return fmt.Errorf("%w: %s", state.ErrUnsupportedOperation, in.Op)
	}
	if err := h(ctx, in.Payload); err != nil {
		return err
	}
	d.refresh()
	return nil
}
