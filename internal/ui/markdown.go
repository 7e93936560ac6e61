package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders AI output for the terminal. Rendering problems are
// not fatal; the raw text is returned instead.
func RenderMarkdown(s string, width int) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	style := "dark"
	if current.Name == "mono" {
		style = "notty"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return s
	}
	out, err := r.Render(s)
	if err != nil {
		return s
	}
	return strings.Trim(out, "\n")
}
