package help

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for display.
type Renderer interface {
	Render(content string) string
}

// PlainRenderer passes content through untouched.
type PlainRenderer struct{}

// Render returns the content as-is.
func (PlainRenderer) Render(content string) string {
	return content
}

// GlamourRenderer renders markdown for the terminal.
type GlamourRenderer struct {
	Width int // 0 = no wrapping override
}

// Render converts markdown to styled terminal output, falling back to
// the raw content on any rendering error.
func (r GlamourRenderer) Render(content string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
