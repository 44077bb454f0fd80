package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/samtui/internal/config"
	"github.com/jask/samtui/internal/dispatch"
	"github.com/jask/samtui/internal/present"
	"github.com/jask/samtui/internal/state"
	"github.com/jask/samtui/internal/todo"
)

// TodoMini is the compact to-do variant: one always-focused input line and
// numbered rows. Digit keys toggle the numbered row while the input is
// empty; there is no edit surface, and the same ID-keyed core runs
// underneath.
type TodoMini struct {
	ctx    context.Context
	store  *todo.Store
	d      *dispatch.Dispatcher
	snap   todo.Snapshot
	input  textinput.Model
	status string
	styles Styles
}

// NewTodoMini builds the app around an already-populated store. Call Wire
// before running the program.
func NewTodoMini(ctx context.Context, cfg config.Config, store *todo.Store) *TodoMini {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "add a task"
	input.Focus()
	return &TodoMini{
		ctx:    ctx,
		store:  store,
		snap:   store.Snapshot(),
		input:  input,
		styles: NewStyles(cfg.UI.AccentColor),
	}
}

// Wire binds the store observer and the dispatcher's refresh callback to
// send, the program's message queue.
func (a *TodoMini) Wire(send func(tea.Msg)) {
	a.store.Bind(state.ObserverFunc(func(s todo.Snapshot) {
		send(todoSnapshotMsg(s))
	}))
	a.d = dispatch.New(func() { send(refreshMsg{}) })
	todo.RegisterActions(a.d, a.store)
}

func (a *TodoMini) Init() tea.Cmd {
	return textinput.Blink
}

func (a *TodoMini) dispatchNow(op string, payload any) {
	if err := a.d.Dispatch(a.ctx, dispatch.Intent{Op: op, Payload: payload}); err != nil {
		a.status = "error: " + err.Error()
	}
}

func (a *TodoMini) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c", "esc":
			a.store.Close()
			return a, tea.Quit
		case "enter":
			a.dispatchNow(todo.IntentAdd, a.input.Value())
			return a, nil
		case "ctrl+x":
			a.dispatchNow(todo.IntentClearCompleted, nil)
			return a, nil
		}
		if a.input.Value() == "" {
			if n, err := strconv.Atoi(m.String()); err == nil && n >= 1 && n <= len(a.snap.Items) {
				a.dispatchNow(todo.IntentToggle, a.snap.Items[n-1].ID)
				return a, nil
			}
		}
		var cmd tea.Cmd
		before := a.input.Value()
		a.input, cmd = a.input.Update(m)
		if v := a.input.Value(); v != before {
			a.dispatchNow(todo.IntentSetDraft, v)
		}
		return a, cmd
	case todoSnapshotMsg:
		a.snap = todo.Snapshot(m)
		a.input.SetValue(a.snap.Draft)
		a.input.CursorEnd()
	case refreshMsg:
		a.snap = a.store.Snapshot()
	case errMsg:
		a.status = "error: " + m.err.Error()
	}
	return a, nil
}

func (a *TodoMini) View() string {
	v := present.Todo(a.snap, "")

	out := a.styles.Title.Render("todo") + "  " +
		a.styles.Stamp.Render(fmt.Sprintf("%d left", v.Remaining)) + "\n\n"
	out += a.input.View() + "\n\n"

	for i, row := range v.Rows {
		box := "[ ]"
		label := row.Label
		if row.Completed {
			box = "[x]"
			label = a.styles.Done.Render(label)
		}
		out += fmt.Sprintf(" %s %s %s\n", a.styles.Cursor.Render(strconv.Itoa(i+1)+"."), box, label)
	}

	if v.ErrorMessage != "" {
		out += "\n" + a.styles.ErrBar.Render(v.ErrorMessage) + "\n"
	}
	if a.status != "" {
		out += "\n" + a.styles.Status.Render(a.status) + "\n"
	}
	out += "\n" + a.styles.HelpDesc.Render("enter add · 1-9 toggle (empty input) · ctrl+x clear done · esc quit")
	return out
}
