// Package ui is the interactive terminal surface: reveal a spread, ask for
// a reading and browse recent draws.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Ink     = lipgloss.AdaptiveColor{Light: "#2b2540", Dark: "#ece6f5"}
	Dim     = lipgloss.AdaptiveColor{Light: "#7a7390", Dark: "#8c85a3"}
	Gold    = lipgloss.Color("#d4a94a")
	Violet  = lipgloss.Color("#8e6fd8")
	Caution = lipgloss.Color("#e0a340")
)

// Styles holds the styled components
type Styles struct {
	Title    lipgloss.Style
	Position lipgloss.Style
	CardName lipgloss.Style
	Meaning  lipgloss.Style
	Panel    lipgloss.Style
	Modal    lipgloss.Style
	Notice   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Spinner  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the styles used by New
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Gold),
		Position: lipgloss.NewStyle().
			Foreground(Dim).
			Bold(true),
		CardName: lipgloss.NewStyle().
			Foreground(Ink).
			Bold(true),
		Meaning: lipgloss.NewStyle().
			Foreground(Ink),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Violet).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Gold).
			Padding(0, 1),
		Notice: lipgloss.NewStyle().
			Foreground(Caution).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(Dim),
		Help: lipgloss.NewStyle().
			Foreground(Dim).
			MarginTop(1),
		Spinner: lipgloss.NewStyle().
			Foreground(Violet),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")),
	}
}
