package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"
)

// Renderer styles markdown for the terminal at a fixed width. Output falls
// back to word-wrapped plain text if glamour cannot render.
type Renderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewRenderer creates a renderer using one of glamour's standard styles.
// An empty style means dark.
func NewRenderer(style string, width int) *Renderer {
	if style == "" {
		style = styles.DarkStyle
	}
	r := &Renderer{style: style, width: width}
	r.rebuild()
	return r
}

// SetWidth updates the wrap width.
func (r *Renderer) SetWidth(width int) {
	if width != r.width {
		r.width = width
		r.rebuild()
	}
}

func (r *Renderer) Width() int {
	return r.width
}

// Render converts markdown to styled terminal output.
func (r *Renderer) Render(md string) string {
	if r.renderer == nil {
		return r.plain(md)
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return r.plain(md)
	}
	return strings.TrimSpace(out)
}

func (r *Renderer) plain(md string) string {
	if r.width <= 0 {
		return md
	}
	return wordwrap.String(md, r.width)
}

func (r *Renderer) rebuild() {
	width := r.width
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.renderer = nil
		return
	}
	r.renderer = renderer
}
