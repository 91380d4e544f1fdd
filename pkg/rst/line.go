package rst

import "strings"

// Line is a single source line annotated with its indentation.
//
// Indent is always relative to the enclosing block's own zero point,
// never an absolute column: Preprocess subtracts the document's shared
// indentation, and the nested-block extractor re-zeroes indentation for
// every nested block it carves out. Blank lines carry indent 0 and an
// empty Text.
type Line struct {
	Indent int
	Text   string
}

// Blank reports whether the line has no content.
func (l Line) Blank() bool {
	return l.Text == ""
}

// Preprocess splits raw source text into annotated lines.
//
// Each non-blank line's indent is its leading-whitespace length minus
// the minimum leading-whitespace length over all non-blank lines, so a
// uniformly indented document parses identically to its dedented form.
// CRLF line endings are accepted. Any input is valid; there are no
// error cases.
func Preprocess(source string) []Line {
	raw := strings.Split(source, "\n")
	lines := make([]Line, 0, len(raw))

	shared := -1
	for _, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		content := strings.TrimLeft(s, " \t")
		indent := 0
		if content != "" {
			indent = len(s) - len(content)
			if shared == -1 || indent < shared {
				shared = indent
			}
		}
		lines = append(lines, Line{Indent: indent, Text: content})
	}

	if shared > 0 {
		for i := range lines {
			if !lines[i].Blank() {
				lines[i].Indent -= shared
			}
		}
	}

	return lines
}
