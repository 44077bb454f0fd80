package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/samtui/internal/config"
	"github.com/jask/samtui/internal/dispatch"
	"github.com/jask/samtui/internal/present"
	"github.com/jask/samtui/internal/state"
	"github.com/jask/samtui/internal/todo"
)

type todoMode string

const (
	modeList  todoMode = "list"
	modeInput todoMode = "input"
	modeEdit  todoMode = "edit"
)

type todoKeys struct {
	Add     key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Edit    key.Binding
	Delete  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Clear   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultTodoKeys() todoKeys {
	return todoKeys{
		Add:     key.NewBinding(key.WithKeys("a", "/"), key.WithHelp("a", "add")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Todo is the full to-do manager. The store owns every piece of list state
// including the draft text; the app's own fields are purely presentational
// (cursor, mode, the focused text inputs).
type Todo struct {
	ctx         context.Context
	store       *todo.Store
	d           *dispatch.Dispatcher
	snap        todo.Snapshot
	mode        todoMode
	input       textinput.Model
	edit        textinput.Model
	editingID   uuid.UUID
	cursor      int
	pendingAdd  string
	warning     string
	status      string
	warnSimilar bool
	dateFormat  string
	styles      Styles
	keys        todoKeys
	width       int
}

// NewTodo builds the app around an already-populated store. Call Wire before
// running the program.
func NewTodo(ctx context.Context, cfg config.Config, store *todo.Store) *Todo {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "what needs doing?"

	edit := textinput.New()
	edit.Prompt = "edit: "

	return &Todo{
		ctx:         ctx,
		store:       store,
		snap:        store.Snapshot(),
		mode:        modeList,
		input:       input,
		edit:        edit,
		warnSimilar: cfg.Todo.WarnSimilar,
		dateFormat:  cfg.UI.DateFormat,
		styles:      NewStyles(cfg.UI.AccentColor),
		keys:        defaultTodoKeys(),
	}
}

// Wire binds the store observer and the dispatcher's refresh callback to
// send, the program's message queue.
func (a *Todo) Wire(send func(tea.Msg)) {
	a.store.Bind(state.ObserverFunc(func(s todo.Snapshot) {
		send(todoSnapshotMsg(s))
	}))
	a.d = dispatch.New(func() { send(refreshMsg{}) })
	todo.RegisterActions(a.d, a.store)
}

func (a *Todo) Init() tea.Cmd {
	return nil
}

// dispatchNow runs a sync intent inline; list mutations are cheap and the
// observer delivers the fresh snapshot through the message queue.
func (a *Todo) dispatchNow(op string, payload any) {
	if err := a.d.Dispatch(a.ctx, dispatch.Intent{Op: op, Payload: payload}); err != nil {
		a.status = "error: " + err.Error()
	}
}

func (a *Todo) visible() []todo.Item {
	return todo.Visible(a.snap)
}

func (a *Todo) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *Todo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		switch a.mode {
		case modeInput:
			return a.handleInputKey(m)
		case modeEdit:
			return a.handleEditKey(m)
		default:
			return a.handleListKey(m)
		}
	case todoSnapshotMsg:
		a.snap = todo.Snapshot(m)
		a.clampCursor()
		if a.mode == modeInput {
			a.input.SetValue(a.snap.Draft)
			a.input.CursorEnd()
		}
	case refreshMsg:
		a.snap = a.store.Snapshot()
		a.clampCursor()
	case errMsg:
		a.status = "error: " + m.err.Error()
	}
	return a, nil
}

func (a *Todo) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.visible()
	switch {
	case key.Matches(m, a.keys.Quit):
		a.store.Close()
		return a, tea.Quit
	case key.Matches(m, a.keys.Add):
		a.mode = modeInput
		a.input.SetValue(a.snap.Draft)
		a.input.CursorEnd()
		a.input.Focus()
		a.status = ""
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Toggle):
		if len(rows) > 0 {
			a.dispatchNow(todo.IntentToggle, rows[a.cursor].ID)
		}
	case key.Matches(m, a.keys.Delete):
		if len(rows) > 0 {
			a.dispatchNow(todo.IntentRemove, rows[a.cursor].ID)
		}
	case key.Matches(m, a.keys.Edit):
		if len(rows) > 0 {
			it := rows[a.cursor]
			a.mode = modeEdit
			a.editingID = it.ID
			a.edit.SetValue(it.Label)
			a.edit.CursorEnd()
			a.edit.Focus()
			a.dispatchNow(todo.IntentSetEditing, todo.EditArgs{ID: it.ID, Editing: true})
		}
	case key.Matches(m, a.keys.NextTab):
		a.dispatchNow(todo.IntentSetTab, nextTab(a.snap.Tab, 1))
	case key.Matches(m, a.keys.PrevTab):
		a.dispatchNow(todo.IntentSetTab, nextTab(a.snap.Tab, -1))
	case key.Matches(m, a.keys.Clear):
		a.dispatchNow(todo.IntentClearCompleted, nil)
	}
	return a, nil
}

func (a *Todo) handleInputKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.mode = modeList
		a.input.Blur()
		a.warning = ""
		a.pendingAdd = ""
		return a, nil
	case key.Matches(m, a.keys.Confirm):
		label := a.input.Value()
		if a.warnSimilar && a.pendingAdd != label {
			if near := todo.Similar(a.snap, label); len(near) > 0 {
				a.warning = fmt.Sprintf("similar task exists: %q (enter again to add)", near[0].Label)
				a.pendingAdd = label
				return a, nil
			}
		}
		a.warning = ""
		a.pendingAdd = ""
		a.dispatchNow(todo.IntentAdd, label)
		return a, nil
	}
	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(m)
	if v := a.input.Value(); v != before {
		a.dispatchNow(todo.IntentSetDraft, v)
	}
	return a, cmd
}

func (a *Todo) handleEditKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.dispatchNow(todo.IntentSetEditing, todo.EditArgs{ID: a.editingID, Editing: false})
		a.mode = modeList
		a.edit.Blur()
		return a, nil
	case key.Matches(m, a.keys.Confirm):
		a.dispatchNow(todo.IntentRename, todo.RenameArgs{ID: a.editingID, Label: a.edit.Value()})
		a.mode = modeList
		a.edit.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.edit, cmd = a.edit.Update(m)
	return a, cmd
}

func nextTab(cur todo.Tab, dir int) todo.Tab {
	tabs := todo.Tabs()
	for i, t := range tabs {
		if t == cur {
			return tabs[(i+dir+len(tabs))%len(tabs)]
		}
	}
	return tabs[0]
}

func (a *Todo) View() string {
	v := present.Todo(a.snap, a.dateFormat)

	out := a.styles.Title.Render("todo") + "\n\n"
	out += a.renderTabs(v.Tab) + "\n\n"

	switch a.mode {
	case modeInput:
		out += a.input.View() + "\n"
	case modeEdit:
		out += a.edit.View() + "\n"
	default:
		if v.Draft != "" {
			out += a.styles.Stamp.Render("draft: "+v.Draft) + "\n"
		}
	}
	out += "\n"

	if len(v.Rows) == 0 {
		out += a.styles.Stamp.Render("nothing here") + "\n"
	}
	for i, row := range v.Rows {
		out += a.renderRow(i, row) + "\n"
	}

	out += "\n" + a.styles.Stamp.Render(fmt.Sprintf("%d items left", v.Remaining)) + "\n"
	if v.ErrorMessage != "" {
		out += a.styles.ErrBar.Render(v.ErrorMessage) + "\n"
	}
	if a.warning != "" {
		out += a.styles.WarnBar.Render(a.warning) + "\n"
	}
	if a.status != "" {
		out += a.styles.Status.Render(a.status) + "\n"
	}

	k := a.keys
	switch a.mode {
	case modeInput, modeEdit:
		out += "\n" + renderHelp(a.styles, k.Confirm, k.Cancel)
	default:
		out += "\n" + renderHelp(a.styles, k.Add, k.Up, k.Toggle, k.Edit, k.Delete, k.NextTab, k.Clear, k.Quit)
	}
	return out
}

func (a *Todo) renderTabs(active todo.Tab) string {
	out := ""
	for _, t := range todo.Tabs() {
		st := a.styles.TabOff
		if t == active {
			st = a.styles.TabOn
		}
		out += st.Render(string(t))
	}
	return out
}

func (a *Todo) renderRow(i int, row present.TodoRow) string {
	cursor := "  "
	if a.mode == modeList && i == a.cursor {
		cursor = a.styles.Cursor.Render("> ")
	}
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	label := row.Label
	if row.Completed {
		label = a.styles.Done.Render(label)
	}
	if row.Editing {
		label += a.styles.Stamp.Render(" (editing)")
	}
	line := cursor + box + " " + label
	if row.Updated != "" {
		line += "  " + a.styles.Stamp.Render(row.Updated)
	}
	return line
}
