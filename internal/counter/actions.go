package counter

import (
	"context"

	"github.com/jask/samtui/internal/dispatch"
)

// Intent identifiers for the counter app.
const (
	IntentIncrement      = "counter.increment"
	IntentDecrement      = "counter.decrement"
	IntentIncrementAsync = "counter.increment.async"
	IntentDecrementAsync = "counter.decrement.async"
)

// RegisterActions binds the counter intents to s on d. The async intents
// take the deferred model path end to end.
func RegisterActions(d *dispatch.Dispatcher, s *Store) {
	d.Register(IntentIncrement, func(context.Context, any) error {
		return Update(s, OpIncrement)
	})
	d.Register(IntentDecrement, func(context.Context, any) error {
		return Update(s, OpDecrement)
	})
	d.Register(IntentIncrementAsync, func(ctx context.Context, _ any) error {
		return UpdateAsync(ctx, s, OpIncrement)
	})
	d.Register(IntentDecrementAsync, func(ctx context.Context, _ any) error {
		return UpdateAsync(ctx, s, OpDecrement)
	})
}
