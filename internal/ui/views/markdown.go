package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// RenderMarkdown renders text for the terminal. It falls back to the plain
// text when rendering fails so callers always have something to show.
func RenderMarkdown(text string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(styles.DarkStyle)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return text, err
	}
	out, err := r.Render(text)
	if err != nil {
		return text, err
	}
	return strings.Trim(out, "\n"), nil
}
