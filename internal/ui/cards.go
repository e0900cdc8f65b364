package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func symSuccess(t *Theme) string { return t.success().Render("✓") }
func symError(t *Theme) string   { return t.failure().Render("✗") }
func symWarning(t *Theme) string { return t.warning().Render("!") }

func cardStyle(t *Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.border()).
		Padding(0, 2)
}

// SuccessCard renders a bordered card with a check mark title and
// optional detail lines.
func (t *Theme) SuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(symSuccess(t) + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle(t).Render(body.String())
}

// InfoCard renders a bordered card with a bold title.
func (t *Theme) InfoCard(title, content string) string {
	return cardStyle(t).Render(t.primary().Bold(true).Render(title) + "\n\n" + content)
}

// Issues renders validation issues as a warning list.
func (t *Theme) Issues(issues []string) string {
	var b strings.Builder
	b.WriteString(t.warning().Bold(true).Render("Validation issues:"))
	for _, issue := range issues {
		b.WriteString("\n  " + symWarning(t) + " " + issue)
	}
	return b.String()
}

// KeyValue is one row of a KeyValueLines block.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValueLines aligns keys into a column followed by their values.
func (t *Theme) KeyValueLines(pairs []KeyValue) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		pad := strings.Repeat(" ", width-lipgloss.Width(p.Key))
		lines[i] = t.muted().Render(p.Key) + pad + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}
