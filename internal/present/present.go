// Package present projects container snapshots into display-ready
// view-models. Projections are total and pure: every snapshot maps to a
// view-model, unmapped error shapes fall through to a generic message, and
// nothing here reads or mutates live state.
package present

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jask/samtui/internal/state"
	"github.com/jask/samtui/internal/todo"
)

// fallbackMessage masks every error the presenter has no mapping for.
const fallbackMessage = "an unexpected error occurred"

// ErrorMessage maps a store error to the text shown to the user: nothing for
// no error, the validation detail verbatim, and the generic fallback for any
// other kind.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *state.ValueError
	if errors.As(err, &ve) {
		return ve.Msg
	}
	return fallbackMessage
}

// TodoRow is one rendered to-do item.
type TodoRow struct {
	ID        uuid.UUID
	Label     string
	Completed bool
	Editing   bool
	Created   string
	Updated   string
}

// TodoView is the display-ready projection of a to-do snapshot. Rows carry
// only the items the snapshot's tab selects.
type TodoView struct {
	Rows         []TodoRow
	Tab          todo.Tab
	Draft        string
	Remaining    int
	ErrorMessage string
}

// Todo projects snap for display. Timestamps render with dateFormat (a Go
// reference layout); an empty format hides them.
func Todo(snap todo.Snapshot, dateFormat string) TodoView {
	visible := todo.Visible(snap)
	rows := make([]TodoRow, 0, len(visible))
	for _, it := range visible {
		rows = append(rows, TodoRow{
			ID:        it.ID,
			Label:     it.Label,
			Completed: it.Completed,
			Editing:   it.Editing,
			Created:   formatStamp(it.CreatedAt, dateFormat),
			Updated:   formatStamp(it.UpdatedAt, dateFormat),
		})
	}
	return TodoView{
		Rows:         rows,
		Tab:          snap.Tab,
		Draft:        snap.Draft,
		Remaining:    todo.Remaining(snap),
		ErrorMessage: ErrorMessage(snap.Err),
	}
}

func formatStamp(t time.Time, layout string) string {
	if layout == "" || t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
