// Package markdown provides styled markdown rendering for the TUI.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by New besides "auto".
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with the browser's configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a markdown renderer with the given width. An empty style means
// auto detection.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = StyleAuto
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case StyleAuto:
		opts = append(opts, glamour.WithAutoStyle())
	case StyleDark, StyleLight, StyleNoTTY:
		opts = append(opts, glamour.WithStandardStyle(style))
	default:
		return nil, fmt.Errorf("unknown markdown style %q", style)
	}
	opts = append(opts, glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)))

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the configured style name.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
