package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Styles is the shared style set for all three demo apps. The accent color
// comes from configuration; everything else is fixed palette.
type Styles struct {
	Title    lipgloss.Style
	Count    lipgloss.Style
	ErrBar   lipgloss.Style
	WarnBar  lipgloss.Style
	Status   lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	Stamp    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds the style set around accent. An empty accent falls back
// to the default palette accent.
func NewStyles(accent string) Styles {
	ac := colorPink
	if accent != "" {
		ac = lipgloss.Color(accent)
	}
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(ac).Bold(true),
		Count:    lipgloss.NewStyle().Foreground(colorText).Bold(true).Padding(1, 4),
		ErrBar:   lipgloss.NewStyle().Foreground(colorRed).Background(colorSurface0).Padding(0, 1),
		WarnBar:  lipgloss.NewStyle().Foreground(colorYellow).Background(colorSurface0).Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(colorGreen),
		TabOn:    lipgloss.NewStyle().Background(colorSurface0).Foreground(ac).Bold(true).Padding(0, 1),
		TabOff:   lipgloss.NewStyle().Background(colorMantle).Foreground(colorMuted).Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Foreground(ac).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true),
		Stamp:    lipgloss.NewStyle().Foreground(colorMuted),
		HelpKey:  lipgloss.NewStyle().Foreground(ac).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
