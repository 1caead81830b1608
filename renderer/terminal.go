package renderer

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown with ANSI styles for a terminal of the given width.
// style is a glamour standard style ("dark", "light", "notty"), empty picks one
// from the terminal background.
func Terminal(md string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("cannot render markdown: %w", err)
	}
	return out, nil
}
