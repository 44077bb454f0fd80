package present

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jask/samtui/internal/counter"
	"github.com/jask/samtui/internal/state"
	"github.com/jask/samtui/internal/todo"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"no error", nil, ""},
		{"validation error verbatim", &state.ValueError{Msg: "value may not be negative"}, "value may not be negative"},
		{"wrapped validation error", fmt.Errorf("commit: %w", &state.ValueError{Msg: "task label may not be empty"}), "task label may not be empty"},
		{"unexpected error masked", errors.New("disk on fire"), "an unexpected error occurred"},
		{"unsupported op masked", state.ErrUnsupportedOperation, "an unexpected error occurred"},
	}
	for _, tc := range cases {
		if got := ErrorMessage(tc.err); got != tc.want {
			t.Fatalf("%s: ErrorMessage = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCounterProjection(t *testing.T) {
	v := Counter(counter.Snapshot{Count: 7})
	if v.Count != 7 || v.ErrorMessage != "" {
		t.Fatalf("view = %+v", v)
	}
	v = Counter(counter.Snapshot{Count: 0, Err: &state.ValueError{Msg: "value may not be negative"}})
	if v.ErrorMessage != "value may not be negative" {
		t.Fatalf("error message = %q", v.ErrorMessage)
	}
}

func TestTodoProjectionFiltersByTab(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	snap := todo.Snapshot{
		Items: []todo.Item{
			{ID: uuid.New(), Label: "open", CreatedAt: created, UpdatedAt: created},
			{ID: uuid.New(), Label: "done", Completed: true, CreatedAt: created, UpdatedAt: created},
		},
		Tab:   todo.TabActive,
		Draft: "next thing",
	}

	v := Todo(snap, "02/01 15:04")
	if len(v.Rows) != 1 || v.Rows[0].Label != "open" {
		t.Fatalf("active rows = %+v", v.Rows)
	}
	if v.Rows[0].Created != "14/03 09:30" {
		t.Fatalf("created stamp = %q", v.Rows[0].Created)
	}
	if v.Remaining != 1 {
		t.Fatalf("remaining = %d, want 1 (counts all items, not just visible)", v.Remaining)
	}
	if v.Draft != "next thing" || v.Tab != todo.TabActive {
		t.Fatalf("view = %+v", v)
	}
}

func TestTodoProjectionEmptyFormatHidesStamps(t *testing.T) {
	snap := todo.Snapshot{
		Items: []todo.Item{{ID: uuid.New(), Label: "x", CreatedAt: time.Now(), UpdatedAt: time.Now()}},
		Tab:   todo.TabAll,
	}
	v := Todo(snap, "")
	if v.Rows[0].Created != "" || v.Rows[0].Updated != "" {
		t.Fatalf("stamps = %q/%q, want hidden", v.Rows[0].Created, v.Rows[0].Updated)
	}
}

func TestTodoProjectionIsTotal(t *testing.T) {
	// An out-of-enum tab and an unexpected error must still project.
	snap := todo.Snapshot{
		Items: []todo.Item{{ID: uuid.New(), Label: "kept"}},
		Tab:   todo.Tab("bogus"),
		Err:   errors.New("boom"),
	}
	v := Todo(snap, "")
	if len(v.Rows) != 1 {
		t.Fatalf("rows = %+v, want fallback to all items", v.Rows)
	}
	if v.ErrorMessage != "an unexpected error occurred" {
		t.Fatalf("error message = %q", v.ErrorMessage)
	}
}
