// Package rst parses and renders a minimal reStructuredText-like
// markup for fixed-width terminal display.
//
// Supported block forms:
//
//   - Paragraphs
//   - Enumerated lists (no auto-numbering)
//   - Bullet lists (must start with '-')
//   - Option lists (*nix style only)
//   - Field lists
//   - Definition lists
//   - Literal blocks
//   - Containers
//   - Admonitions
//
// Parsing is a pure, one-shot pass over the input; the resulting
// Document can be rendered repeatedly at different widths and with
// different container keep filters.
package rst

// Options configures rendering.
type Options struct {
	// Width bounds paragraph wrapping. Values <= 0 fall back to the
	// default of 80 columns.
	Width int

	// Indent is a literal prefix applied to every output line at the
	// top level; nested blocks add their own indentation on top.
	Indent string

	// Keep filters named containers. nil keeps everything.
	Keep Keep
}

// DefaultOptions returns Options with the defaults callers usually
// want: 80 columns, no indentation, all containers kept.
func DefaultOptions() Options {
	return Options{Width: 80}
}

// Parse preprocesses source and parses it into a Document.
//
// Parsing is total over textual input: a source with no renderable
// content yields an empty Document, not an error. ErrParse is reserved
// for pathological input exceeding the nesting bound.
func Parse(source string) (*Document, error) {
	return parseBody(Preprocess(source), 0)
}

// Format parses source and renders it in one call.
func Format(source string, opts Options) (string, error) {
	doc, err := Parse(source)
	if err != nil {
		return "", err
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultOptions().Width
	}
	return doc.Render(width, opts.Indent, opts.Keep), nil
}
