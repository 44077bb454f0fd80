package state

// ValidationResult is the outcome of a pure validation function: a validity
// flag plus the structured error explaining a rejection. Producing one never
// mutates state; converting it into store error state is a separate,
// explicit reconciliation step.
type ValidationResult struct {
	Valid bool
	Err   error
}

// Valid returns a passing result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a failing result carrying err.
func Invalid(err error) ValidationResult {
	return ValidationResult{Err: err}
}
