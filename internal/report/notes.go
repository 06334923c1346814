// internal/report/notes.go
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderNotes converts markdown notes to HTML. Raw HTML in the source is
// omitted by the renderer.
func RenderNotes(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render notes: %w", err)
	}
	return template.HTML(buf.String()), nil
}
