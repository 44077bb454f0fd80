package counter

import (
	"context"
	"fmt"

	"github.com/jask/samtui/internal/state"
)

// Op is the closed enumeration of counter operations.
type Op string

const (
	OpIncrement Op = "increment"
	OpDecrement Op = "decrement"
)

// NextCount computes the value op would produce from count. An op outside
// the closed enumeration fails with state.ErrUnsupportedOperation; that
// error is fatal to planning and is never stored in the container.
func NextCount(count int, op Op) (int, error) {
	switch op {
	case OpIncrement:
		return count + 1, nil
	case OpDecrement:
		return count - 1, nil
	default:
		return 0, fmt.Errorf("%w: %s", state.ErrUnsupportedOperation, op)
	}
}

// ValidateCount accepts or rejects a proposed count.
func ValidateCount(count int) state.ValidationResult {
	if count < 0 {
		return state.Invalid(&state.ValueError{Msg: "value may not be negative"})
	}
	return state.Valid()
}

// Prepare opens a transaction, computes the next count from the captured
// origin, validates it, and appends the matching mutator step only when the
// validation passed. A rejected value leaves the plan empty; the transaction
// is still returned so the caller can run a no-op commit and reconcile error
// state separately.
func Prepare(s *Store, op Op) (*state.Transaction[Snapshot], state.ValidationResult, error) {
	tx := s.Begin()
	next, err := NextCount(tx.Origin().Count, op)
	if err != nil {
		return nil, state.ValidationResult{}, err
	}
	res := ValidateCount(next)
	if res.Valid {
		switch op {
		case OpIncrement:
			tx.Add(s.applyIncrement)
		case OpDecrement:
			tx.Add(s.applyDecrement)
		}
	}
	return tx, res, nil
}

// Update runs one synchronous counter operation end to end:
// Prepare, Commit, then error reconciliation. Only an unsupported op
// returns an error; validation rejections land in the container's error
// slot instead.
func Update(s *Store, op Op) error {
	tx, res, err := Prepare(s, op)
	if err != nil {
		return err
	}
	s.Commit(tx)
	ReconcileError(s, res)
	return nil
}

// UpdateAsync is Update on the deferred path: planning is offloaded to the
// container's serial runner, the commit applies step by step on that same
// runner, and reconciliation happens after the chain resolves.
func UpdateAsync(ctx context.Context, s *Store, op Op) error {
	var (
		tx      *state.Transaction[Snapshot]
		res     state.ValidationResult
		prepErr error
	)
	if err := s.Offload(ctx, func() {
		tx, res, prepErr = Prepare(s, op)
	}); err != nil {
		return err
	}
	if prepErr != nil {
		return prepErr
	}
	s.CommitAsync(ctx, tx)
	ReconcileError(s, res)
	return nil
}

// ReconcileError folds a validation result into the container's error slot
// through the precedence rule.
func ReconcileError(s *Store, res state.ValidationResult) {
	s.SetError(state.ChooseError(s.Err(), res.Err))
}
