package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// markdownWidth is the word wrap column for rendered markdown.
const markdownWidth = 100

// RenderMarkdown renders md for the terminal. With NoColor the notty style
// is used so output stays plain.
func (t *Theme) RenderMarkdown(md string) (string, error) {
	style := glamour.WithAutoStyle()
	if t.NoColor {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWidth))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
