package rst

import (
	"strings"

	"github.com/yaklabco/rstfmt/pkg/textwrap"
)

// Keep is the container filter: the set of container names whose
// content is retained in rendered output. A nil Keep retains every
// container; a non-nil Keep (even an empty one) suppresses every
// container whose name it does not hold. Blocks outside containers are
// never affected.
type Keep map[string]bool

// KeepNames builds a Keep from container names. KeepNames() with no
// arguments returns an empty, non-nil filter that suppresses all
// containers.
func KeepNames(names ...string) Keep {
	keep := make(Keep, len(names))
	for _, n := range names {
		keep[n] = true
	}
	return keep
}

// Render produces the plain-text form of the document at the given
// width, with indent prepended to every line and containers filtered
// through keep. Non-suppressed block outputs are joined with blank
// lines. Rendering is pure: the same arguments always produce the same
// output, and a document may be rendered any number of times.
func (d *Document) Render(width int, indent string, keep Keep) string {
	var parts []string
	for _, b := range d.Blocks {
		if out, ok := renderBlock(b, width, indent, keep); ok {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n\n")
}

// renderBlock renders one block. The second return is false when the
// block is suppressed entirely (a container filtered out by keep),
// which is distinct from rendering to an empty string.
func renderBlock(b *Block, width int, indent string, keep Keep) (string, bool) {
	switch b.Kind {
	case KindParagraph:
		return renderParagraph(b, width, indent), true
	case KindList:
		return renderList(b, width, indent, keep), true
	case KindContainer:
		if keep != nil && !keep[b.Name] {
			return "", false
		}
		return b.Body.Render(width, indent, keep), true
	case KindAdmonition:
		return indent + b.Title + "\n" + b.Body.Render(width, indent+"  ", keep), true
	case KindNested:
		return b.Body.Render(width, indent+"  ", keep), true
	default:
		return "", false
	}
}

// renderParagraph wraps the paragraph text and appends the literal
// block, if any. Literal lines get two extra leading spaces past the
// paragraph's indent and keep their own recorded indentation; blank
// literal lines render empty.
func renderParagraph(b *Block, width int, indent string) string {
	var parts []string
	if b.Text != "" {
		parts = append(parts, textwrap.Fill(b.Text, width, indent, indent))
	}
	if len(b.Literal) > 0 {
		lines := make([]string, len(b.Literal))
		for i, l := range b.Literal {
			if l.Blank() {
				continue
			}
			lines[i] = indent + "  " + strings.Repeat(" ", l.Indent) + l.Text
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// renderList lays the items out in an aligned key column. Each body is
// rendered at the hanging indent; a key that fits the column has the
// body's first line spliced onto its own line, while an oversized key
// goes on a line of its own with the body below. A blank separator is
// inserted before an item when the list requests vertical spacing or
// when the previous rendered item already contains a blank line.
func renderList(b *Block, width int, indent string, keep Keep) string {
	hanging := indent + strings.Repeat(" ", b.Keywidth)
	offset := len(indent) + b.Keywidth

	var parts []string
	for _, it := range b.Items {
		content := it.Body.Render(width, hanging, keep)
		if len(it.Key)+b.MinSpace > b.Keywidth {
			content = indent + it.Key + "\n" + content
		} else {
			tail := ""
			if len(content) > offset {
				tail = content[offset:]
			}
			content = indent + padRight(it.Key, b.Keywidth) + tail
		}
		if len(parts) > 0 && (b.VSpace || strings.Contains(parts[len(parts)-1], "\n\n")) {
			parts = append(parts, "")
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n")
}

// padRight left-justifies s in a field of the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
