// Package render — Markdown preview renderer.
// Converts the rendered offers fragment into Markdown so content
// changes can be reviewed and diffed without opening a browser.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/rkobusch-privat/unger-warburg-website/core"
)

// MarkdownRenderer produces a Markdown snapshot of the offers fragment.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the offers fragment to Markdown.
func (r *MarkdownRenderer) Render(page core.Page) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(page.Fragment)
	if err != nil {
		return nil, fmt.Errorf("converting fragment to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
