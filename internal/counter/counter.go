// Package counter implements the counter application: a container holding a
// single count plus the pure domain operations that change it.
package counter

import (
	"github.com/jask/samtui/internal/state"
)

// Snapshot is the immutable point-in-time view of the counter container.
type Snapshot struct {
	Count int
	Err   error
}

// Store is the counter container. The count is its only transactional
// field: rollback restores the count and nothing else.
type Store struct {
	*state.Core[Snapshot]
	count int
}

// NewStore returns a container holding start.
func NewStore(start int) *Store {
	s := &Store{count: start}
	s.Core = state.NewCore(
		func(err error) Snapshot {
			return Snapshot{Count: s.count, Err: err}
		},
		func(origin Snapshot) {
			s.count = origin.Count
		},
	)
	return s
}

// Transactional mutators. Commit-only: these run as transaction steps with
// the store lock held.

func (s *Store) applyIncrement() error {
	s.count++
	return nil
}

func (s *Store) applyDecrement() error {
	s.count--
	return nil
}
