package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrPreviewRender indicates HTML preview rendering failed.
var ErrPreviewRender = errors.New("HTML preview rendering failed")

// previewTemplate wraps goldmark's fragment output in a complete HTML5
// document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// PreviewRenderer renders the documentation sources to a standalone
// HTML document for review in a browser. This is a side output; the
// manpage itself never goes through it.
type PreviewRenderer struct {
	md goldmark.Markdown
}

// NewPreviewRenderer creates a PreviewRenderer with GFM extensions and
// syntax highlighting, so the config examples in block docs render as
// they would on a project site.
func NewPreviewRenderer() *PreviewRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &PreviewRenderer{md: md}
}

// Render converts Markdown content to a standalone HTML5 document.
func (r *PreviewRenderer) Render(title, content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	return fmt.Sprintf(previewTemplate, title, buf.String()), nil
}
