package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/samtui/internal/config"
	"github.com/jask/samtui/internal/counter"
	"github.com/jask/samtui/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := counter.NewStore(cfg.Counter.Start)
	defer store.Close()

	app := tui.NewCounter(ctx, cfg, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	app.Wire(p.Send)

	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
