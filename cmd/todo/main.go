package main

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/samtui/internal/config"
	"github.com/jask/samtui/internal/todo"
	"github.com/jask/samtui/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("timezone %q: %v (falling back to local)", cfg.UI.Timezone, err)
		loc = time.Local
	}

	store := todo.NewStore(loc)
	defer store.Close()

	app := tui.NewTodo(ctx, cfg, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	app.Wire(p.Send)

	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
