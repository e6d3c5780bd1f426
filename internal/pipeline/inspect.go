package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ListBlocks parses the generated block-definitions Markdown and
// returns the block names, in document order. A block is a heading at
// the given level; the generator emits one per configurable block.
func ListBlocks(source []byte, level int) []string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var names []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != level {
			return ast.WalkContinue, nil
		}
		if name := headingText(h, source); name != "" {
			names = append(names, name)
		}
		return ast.WalkSkipChildren, nil
	})
	return names
}

// headingText collects the plain text of a heading. Inline markup is
// walked recursively, so `name`, *name* and [name](url) all yield the
// bare name.
func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
