package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/samtui/internal/config"
	"github.com/jask/samtui/internal/counter"
	"github.com/jask/samtui/internal/dispatch"
	"github.com/jask/samtui/internal/present"
	"github.com/jask/samtui/internal/state"
)

type counterKeys struct {
	Increment      key.Binding
	Decrement      key.Binding
	IncrementAsync key.Binding
	DecrementAsync key.Binding
	Quit           key.Binding
}

func defaultCounterKeys() counterKeys {
	return counterKeys{
		Increment:      key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+", "increment")),
		Decrement:      key.NewBinding(key.WithKeys("-", "down"), key.WithHelp("-", "decrement")),
		IncrementAsync: key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "increment (async)")),
		DecrementAsync: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "decrement (async)")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Counter is the counter demo app. It holds no state of its own beyond the
// latest snapshot: every render projects that snapshot through the
// presenter, and every key becomes an intent on the dispatcher.
type Counter struct {
	ctx    context.Context
	store  *counter.Store
	d      *dispatch.Dispatcher
	snap   counter.Snapshot
	status string
	styles Styles
	keys   counterKeys
	width  int
}

// NewCounter builds the app around an already-populated store. Call Wire
// before running the program.
func NewCounter(ctx context.Context, cfg config.Config, store *counter.Store) *Counter {
	return &Counter{
		ctx:    ctx,
		store:  store,
		snap:   store.Snapshot(),
		styles: NewStyles(cfg.UI.AccentColor),
		keys:   defaultCounterKeys(),
	}
}

// Wire binds the store observer and the dispatcher's refresh callback to
// send, the program's message queue.
func (a *Counter) Wire(send func(tea.Msg)) {
	a.store.Bind(state.ObserverFunc(func(s counter.Snapshot) {
		send(counterSnapshotMsg(s))
	}))
	a.d = dispatch.New(func() { send(refreshMsg{}) })
	counter.RegisterActions(a.d, a.store)
}

func (a *Counter) Init() tea.Cmd {
	return nil
}

func (a *Counter) intent(op string) tea.Cmd {
	return func() tea.Msg {
		if err := a.d.Dispatch(a.ctx, dispatch.Intent{Op: op}); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *Counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			a.store.Close()
			return a, tea.Quit
		case key.Matches(m, a.keys.Increment):
			return a, a.intent(counter.IntentIncrement)
		case key.Matches(m, a.keys.Decrement):
			return a, a.intent(counter.IntentDecrement)
		case key.Matches(m, a.keys.IncrementAsync):
			return a, a.intent(counter.IntentIncrementAsync)
		case key.Matches(m, a.keys.DecrementAsync):
			return a, a.intent(counter.IntentDecrementAsync)
		}
	case counterSnapshotMsg:
		a.snap = counter.Snapshot(m)
	case refreshMsg:
		a.snap = a.store.Snapshot()
	case errMsg:
		a.status = "error: " + m.err.Error()
	}
	return a, nil
}

func (a *Counter) View() string {
	v := present.Counter(a.snap)

	out := a.styles.Title.Render("counter") + "\n"
	out += a.styles.Count.Render(fmt.Sprintf("%d", v.Count)) + "\n"
	if v.ErrorMessage != "" {
		out += a.styles.ErrBar.Render(v.ErrorMessage) + "\n"
	}
	if a.status != "" {
		out += a.styles.Status.Render(a.status) + "\n"
	}
	out += "\n" + renderHelp(a.styles,
		a.keys.Increment, a.keys.Decrement,
		a.keys.IncrementAsync, a.keys.DecrementAsync,
		a.keys.Quit,
	)
	return out
}
