package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled patterns for Markdown transformations.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ATX headings at line start: captures the hash run and the rest
	atxHeading = regexp.MustCompile(`(?m)^(#{1,6})([ \t].*|)$`)
)

// maxHeadingLevel is the deepest ATX heading Markdown allows.
const maxHeadingLevel = 6

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ShiftHeadings deepens every ATX heading by shift levels, clamping at
// level 6. A shift of 0 or less returns the content unchanged. Fenced
// code blocks are respected so a "# comment" inside one is untouched.
func ShiftHeadings(content string, shift int) string {
	if shift <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		if isFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = atxHeading.ReplaceAllStringFunc(line, func(h string) string {
			m := atxHeading.FindStringSubmatch(h)
			level := len(m[1]) + shift
			if level > maxHeadingLevel {
				level = maxHeadingLevel
			}
			return strings.Repeat("#", level) + m[2]
		})
	}
	return strings.Join(lines, "\n")
}

// isFenceDelimiter reports whether a line opens or closes a fenced code
// block (``` or ~~~, optionally indented up to three spaces).
func isFenceDelimiter(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}
