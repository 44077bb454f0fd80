// Package todo implements the to-do list application: an ID-keyed item
// collection with tabbed filtering, a draft entry field, and validated
// transactional operations.
//
// Items are always mutated by identifier. Labels are not unique, so
// label-keyed mutation would silently hit every record sharing a name;
// the only label-based access here is the read-only FindByLabel.
package todo

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jask/samtui/internal/state"
)

// Tab is the closed enumeration of list filters.
type Tab string

const (
	TabAll       Tab = "all"
	TabActive    Tab = "active"
	TabCompleted Tab = "completed"
)

// Tabs returns the filter tabs in display order.
func Tabs() []Tab {
	return []Tab{TabAll, TabActive, TabCompleted}
}

// Item is one to-do record. The ID is opaque, generated at creation, and
// never reused; CreatedAt and UpdatedAt carry the store clock's timezone.
type Item struct {
	ID        uuid.UUID
	Label     string
	Completed bool
	Editing   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is the immutable point-in-time view of the to-do container.
type Snapshot struct {
	Items []Item
	Tab   Tab
	Draft string
	Err   error
}

// Store is the to-do container. Items, tab, and draft are the transactional
// fields restored on rollback; the error slot is not.
type Store struct {
	*state.Core[Snapshot]
	items []Item
	tab   Tab
	draft string
	now   func() time.Time
}

// NewStore returns an empty container whose timestamps are taken in loc
// (nil means the local timezone).
func NewStore(loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	s := &Store{
		tab: TabAll,
		now: func() time.Time { return time.Now().In(loc) },
	}
	s.Core = state.NewCore(
		func(err error) Snapshot {
			return Snapshot{
				Items: slices.Clone(s.items),
				Tab:   s.tab,
				Draft: s.draft,
				Err:   err,
			}
		},
		func(origin Snapshot) {
			s.items = slices.Clone(origin.Items)
			s.tab = origin.Tab
			s.draft = origin.Draft
		},
	)
	return s
}

// Transactional mutators. Commit-only: these run as transaction steps with
// the store lock held.

func (s *Store) appendItem(label string) state.Step {
	return func() error {
		now := s.now()
		s.items = append(s.items, Item{
			ID:        uuid.New(),
			Label:     label,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil
	}
}

func (s *Store) mutateItem(id uuid.UUID, mutate func(*Item)) state.Step {
	return func() error {
		for i := range s.items {
			if s.items[i].ID == id {
				mutate(&s.items[i])
				return nil
			}
		}
		return fmt.Errorf("no task with id %s", id)
	}
}

func (s *Store) removeItem(id uuid.UUID) state.Step {
	return func() error {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items = slices.Delete(s.items, i, i+1)
				return nil
			}
		}
		return fmt.Errorf("no task with id %s", id)
	}
}

func (s *Store) setTab(tab Tab) state.Step {
	return func() error {
		s.tab = tab
		return nil
	}
}

func (s *Store) setDraft(text string) state.Step {
	return func() error {
		s.draft = text
		return nil
	}
}
