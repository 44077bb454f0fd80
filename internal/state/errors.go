package state

import "errors"

// ErrUnsupportedOperation marks an operation kind outside a closed
// enumeration. It is fatal to the planning step: propagated to the caller,
// never stored in the error slot, never retried. Wrap it with the offending
// kind, for example fmt.Errorf("%w: halve", state.ErrUnsupportedOperation).
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrStoreClosed is reported when work is submitted to a store whose async
// runner has been closed.
var ErrStoreClosed = errors.New("store closed")

// ValueError is the domain validation error: an expected, recoverable
// rejection of a proposed state change. Presenters show its text verbatim;
// every other error kind is masked behind a generic fallback, and the
// precedence rule in ChooseError treats every other kind as higher priority.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string {
	return e.Msg
}

// IsValueError reports whether err is, or wraps, a domain validation error.
func IsValueError(err error) bool {
	var ve *ValueError
	return errors.As(err, &ve)
}

// ChooseError selects the error a store should carry after a validated
// operation, given the error it holds now and the error produced by the new
// validation (nil when validation passed):
//
//  1. no current error: adopt next verbatim, including nil;
//  2. current error is not a validation error: it sticks, next is discarded;
//  3. current error is a validation error: next replaces it, including
//     clearing to nil.
//
// An unexpected error therefore persists until something outside the normal
// validation path clears it, while a routine validation error is always
// superseded by the outcome of the next validated operation.
func ChooseError(current, next error) error {
	if current == nil {
		return next
	}
	if !IsValueError(current) {
		return current
	}
	return next
}
