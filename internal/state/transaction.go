package state

// Step is one mutation applied against live container state during commit.
// Steps run with the store lock held: they must mutate fields directly and
// never call locking store methods. A non-nil return marks the step failed.
type Step func() error

// Transaction is a planned, atomic sequence of mutation steps plus the
// snapshot captured when the transaction was opened. The captured snapshot is
// the rollback target: on a failed step the store restores only the
// transactional fields from it. Transactions are single-use; commit once and
// discard.
type Transaction[S any] struct {
	origin S
	steps  []Step
}

// Add appends a step to the plan. Steps execute strictly in insertion order.
func (t *Transaction[S]) Add(step Step) {
	t.steps = append(t.steps, step)
}

// Origin returns the snapshot captured when the transaction was opened.
func (t *Transaction[S]) Origin() S {
	return t.origin
}

// Len reports how many steps are planned. A rejected operation plans zero.
func (t *Transaction[S]) Len() int {
	return len(t.steps)
}
