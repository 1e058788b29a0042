package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Dim          lipgloss.Style
	Cursor       lipgloss.Style
	Selected     lipgloss.Style
	DefaultBadge lipgloss.Style
	NoMatch      lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Scroll       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		DefaultBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		NoMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:   lipgloss.NewStyle().Faint(true),
		Scroll: lipgloss.NewStyle().Faint(true),
	}
}
