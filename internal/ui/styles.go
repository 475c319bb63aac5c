// Package ui is the terminal front end: a stack of bubbletea screens
// reading the store and dispatching its operations.
package ui

import "github.com/charmbracelet/lipgloss"

// Kamion brand palette.
var (
	ColorPrimary   = lipgloss.Color("#1B2B5E")
	ColorAccent    = lipgloss.Color("#F5A623")
	ColorMuted     = lipgloss.Color("#8A94A6")
	ColorBorder    = lipgloss.Color("#D6DAE0")
	ColorDanger    = lipgloss.Color("#E53935")
	ColorSuccess   = lipgloss.Color("#43A047")
	ColorHighlight = lipgloss.Color("#EEF1FA")
)

// Styles groups every style the screens render with.
type Styles struct {
	Brand      lipgloss.Style
	Header     lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Muted      lipgloss.Style
	Price      lipgloss.Style
	Status     lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Dialog     lipgloss.Style
	DialogHead lipgloss.Style
	Button     lipgloss.Style
	Help       lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		MarginBottom(1)

	return Styles{
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(1, 2),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Subtitle: lipgloss.NewStyle().Foreground(ColorMuted),
		Label:    lipgloss.NewStyle().Foreground(ColorMuted).Width(14),
		Value:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Price:    lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
		Status:   lipgloss.NewStyle().Foreground(ColorAccent),
		Card:     card,
		CardActive: card.
			BorderForeground(ColorAccent).
			Background(ColorHighlight),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2),
		DialogHead: lipgloss.NewStyle().Bold(true).Foreground(ColorDanger),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 2),
		Help: lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1),
	}
}
