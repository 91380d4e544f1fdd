package rst

// BlockKind classifies a parsed block.
type BlockKind uint8

// Block kinds, one per syntactic form the parser emits.
const (
	KindParagraph BlockKind = iota
	KindList
	KindContainer
	KindAdmonition
	KindNested
)

var kindNames = [...]string{
	KindParagraph:  "Paragraph",
	KindList:       "List",
	KindContainer:  "Container",
	KindAdmonition: "Admonition",
	KindNested:     "Nested",
}

func (k BlockKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Block is a parsed, independently renderable unit of document content.
// Only the fields for its Kind are populated; Render dispatches on Kind
// and ignores the rest.
type Block struct {
	Kind BlockKind

	// Paragraph: joined, inline-substituted text (may be empty when
	// the paragraph was a bare literal-block marker) and the verbatim
	// literal lines that followed a trailing "::", if any.
	Text    string
	Literal []Line

	// List: the items plus the layout tuning computed at parse time.
	Items    []ListItem
	Keywidth int
	MinSpace int
	VSpace   bool

	// Container: the directive name tested against the keep filter.
	Name string

	// Admonition: the display title rendered above the body.
	Title string

	// Container, Admonition, Nested: the recursively parsed body.
	Body *Document
}

// ListItem is one entry of a list block: the rendered label and its
// recursively parsed body.
type ListItem struct {
	Key  string
	Body *Document
}

// Document is an ordered sequence of parsed blocks. Rendering joins
// the non-suppressed block outputs with blank lines.
type Document struct {
	Blocks []*Block
}
