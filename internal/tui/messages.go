package tui

import (
	"github.com/jask/samtui/internal/counter"
	"github.com/jask/samtui/internal/todo"
)

// Messages delivered into the Bubble Tea programs. Snapshot messages come
// from the bound store observer, refreshMsg from the dispatcher's refresh
// callback; both arrive via Program.Send.

type counterSnapshotMsg counter.Snapshot

type todoSnapshotMsg todo.Snapshot

type refreshMsg struct{}

type errMsg struct{ err error }
