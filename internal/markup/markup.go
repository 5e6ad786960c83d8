// Package markup renders listing text as Markdown for the HTML preview.
package markup

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrConversion indicates Markdown rendering failed.
var ErrConversion = errors.New("markdown conversion failed")

// Renderer converts listing text to an HTML fragment.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions. Raw HTML in listing
// text is not passed through.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // listing lines stay lines
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// Fragment renders text as an HTML fragment without a document wrapper.
func (r *Renderer) Fragment(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return buf.String(), nil
}
