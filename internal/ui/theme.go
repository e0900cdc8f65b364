// Package ui renders terminal output for the wizard: spinners, cards and
// markdown previews. Every component degrades to plain text when color is
// disabled or no terminal is attached.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors holds the dark-background hex palette.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme is shared by every ui component.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme. noColor disables all styling.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#DA7756",
			Secondary: "#7C3AED",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Text:      "#E5E7EB",
			Muted:     "#9CA3AF",
			Border:    "#4B5563",
		},
		NoColor: noColor,
	}
}

func (t *Theme) adaptive(light, dark string) lipgloss.TerminalColor {
	if t.NoColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func (t *Theme) primary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.adaptive("#C45A3C", t.Colors.Primary))
}

func (t *Theme) success() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.adaptive("#059669", t.Colors.Success))
}

func (t *Theme) warning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.adaptive("#D97706", t.Colors.Warning))
}

func (t *Theme) failure() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.adaptive("#DC2626", t.Colors.Error))
}

func (t *Theme) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.adaptive("#6B7280", t.Colors.Muted))
}

func (t *Theme) border() lipgloss.TerminalColor {
	return t.adaptive("#D1D5DB", t.Colors.Border)
}
