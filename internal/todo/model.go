package todo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/samtui/internal/state"
)

// ValidateLabel accepts or rejects a proposed item label.
func ValidateLabel(label string) state.ValidationResult {
	if strings.TrimSpace(label) == "" {
		return state.Invalid(&state.ValueError{Msg: "task label may not be empty"})
	}
	return state.Valid()
}

// requireItem validates, at planning time, that id exists in the captured
// origin. A stale identifier is a recoverable rejection, not a fatal error.
func requireItem(origin Snapshot, id uuid.UUID) state.ValidationResult {
	for _, it := range origin.Items {
		if it.ID == id {
			return state.Valid()
		}
	}
	return state.Invalid(&state.ValueError{Msg: fmt.Sprintf("no task with id %s", id)})
}

// Add appends a new item with the trimmed label and clears the draft in the
// same transaction. A blank label is rejected and nothing changes.
func Add(s *Store, label string) {
	tx := s.Begin()
	res := ValidateLabel(label)
	if res.Valid {
		tx.Add(s.appendItem(strings.TrimSpace(label)))
		tx.Add(s.setDraft(""))
	}
	s.Commit(tx)
	ReconcileError(s, res)
}

// Toggle flips the completion flag of the item with id.
func Toggle(s *Store, id uuid.UUID) {
	tx := s.Begin()
	res := requireItem(tx.Origin(), id)
	if res.Valid {
		tx.Add(s.mutateItem(id, func(it *Item) {
			it.Completed = !it.Completed
			it.UpdatedAt = s.now()
		}))
	}
	s.Commit(tx)
	ReconcileError(s, res)
}

// Rename relabels the item with id. Renaming is the save action of an edit,
// so it also clears the item's editing flag. Items are addressed by
// identifier only: two items sharing a label stay independent.
func Rename(s *Store, id uuid.UUID, label string) {
	tx := s.Begin()
	res := requireItem(tx.Origin(), id)
	if res.Valid {
		res = ValidateLabel(label)
	}
	if res.Valid {
		tx.Add(s.mutateItem(id, func(it *Item) {
			it.Label = strings.TrimSpace(label)
			it.Editing = false
			it.UpdatedAt = s.now()
		}))
	}
	s.Commit(tx)
	ReconcileError(s, res)
}

// Remove deletes the item with id.
func Remove(s *Store, id uuid.UUID) {
	tx := s.Begin()
	res := requireItem(tx.Origin(), id)
	if res.Valid {
		tx.Add(s.removeItem(id))
	}
	s.Commit(tx)
	ReconcileError(s, res)
}

// SetEditing marks or unmarks the item with id as being edited. The editing
// flag is presentation state on the record; it does not bump UpdatedAt.
func SetEditing(s *Store, id uuid.UUID, editing bool) {
	tx := s.Begin()
	res := requireItem(tx.Origin(), id)
	if res.Valid {
		tx.Add(s.mutateItem(id, func(it *Item) {
			it.Editing = editing
		}))
	}
	s.Commit(tx)
	ReconcileError(s, res)
}

// SetTab selects the visible filter. A tab outside the closed enumeration
// fails with state.ErrUnsupportedOperation and changes nothing.
func SetTab(s *Store, tab Tab) error {
	switch tab {
	case TabAll, TabActive, TabCompleted:
	default:
		return fmt.Errorf("%w: tab %s", state.ErrUnsupportedOperation, tab)
	}
	tx := s.Begin()
	tx.Add(s.setTab(tab))
	s.Commit(tx)
	ReconcileError(s, state.Valid())
	return nil
}

// SetDraft stores the in-progress entry text.
func SetDraft(s *Store, text string) {
	tx := s.Begin()
	tx.Add(s.setDraft(text))
	s.Commit(tx)
	ReconcileError(s, state.Valid())
}

// ClearCompleted removes every completed item in one transaction, one
// removal step per item.
func ClearCompleted(s *Store) {
	tx := s.Begin()
	for _, it := range tx.Origin().Items {
		if it.Completed {
			tx.Add(s.removeItem(it.ID))
		}
	}
	s.Commit(tx)
	ReconcileError(s, state.Valid())
}

// ReconcileError folds a validation result into the container's error slot
// through the precedence rule.
func ReconcileError(s *Store, res state.ValidationResult) {
	s.SetError(state.ChooseError(s.Err(), res.Err))
}

// Visible returns the items the snapshot's tab selects, in insertion order.
// Snapshots can only carry tabs admitted by SetTab; anything else falls back
// to showing everything.
func Visible(snap Snapshot) []Item {
	switch snap.Tab {
	case TabActive:
		return filterItems(snap.Items, func(it Item) bool { return !it.Completed })
	case TabCompleted:
		return filterItems(snap.Items, func(it Item) bool { return it.Completed })
	default:
		return filterItems(snap.Items, func(Item) bool { return true })
	}
}

func filterItems(items []Item, keep func(Item) bool) []Item {
	var out []Item
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Remaining counts the items not yet completed.
func Remaining(snap Snapshot) int {
	n := 0
	for _, it := range snap.Items {
		if !it.Completed {
			n++
		}
	}
	return n
}

// FindByLabel returns the first item whose label equals label exactly.
// First match only: labels are not unique, and callers needing a specific
// record must address it by ID.
func FindByLabel(snap Snapshot, label string) (Item, bool) {
	for _, it := range snap.Items {
		if it.Label == label {
			return it, true
		}
	}
	return Item{}, false
}
