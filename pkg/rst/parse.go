package rst

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse is returned when no block form accepts the remaining input,
// or when nesting exceeds the depth bound. The paragraph catch-all
// accepts any non-blank line, so for textual input the only producer in
// practice is the depth bound.
var ErrParse = errors.New("invalid structured text source")

// maxNestDepth bounds recursive block nesting. Documents deeper than
// this are rejected instead of risking unbounded recursion.
const maxNestDepth = 100

// noShift marks nestedBlock calls that leave the first line alone.
const noShift = -1

// matchFn tries one block form against the remaining source. It
// returns the parsed block (nil when the form consumes input without
// producing output, e.g. a blank line), the unconsumed remainder, and
// whether the form matched. A non-match must leave src untouched.
type matchFn func(src []Line, depth int) (blk *Block, rest []Line, ok bool, err error)

// transitions lists the block forms in priority order. Matches are not
// mutually exclusive (a definition term line is also a valid
// paragraph), so the order is load-bearing: first match wins and there
// is no backtracking. The paragraph catch-all must stay last.
var transitions []matchFn

// init assigns transitions at run time rather than in the var
// initializer to break the static initialization cycle through
// parseBody.
func init() {
	transitions = []matchFn{
		matchBlank,
		matchNested,
		matchContainer,
		matchAdmonition,
		matchBulletList,
		matchOptionList,
		matchFieldList,
		matchDefinitionList,
		matchParagraph,
	}
}

// parseBody parses a sequence of preprocessed lines into a Document by
// repeatedly trying each transition in order until the input is
// exhausted.
func parseBody(src []Line, depth int) (*Document, error) {
	if depth > maxNestDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d levels", ErrParse, maxNestDepth)
	}

	doc := &Document{}
	for len(src) > 0 {
		matched := false
		for _, match := range transitions {
			blk, rest, ok, err := match(src, depth)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if blk != nil {
				doc.Blocks = append(doc.Blocks, blk)
			}
			src = rest
			matched = true
			break
		}
		if !matched {
			// Unreachable while matchParagraph accepts any non-blank
			// line; kept as a catchable failure rather than a panic.
			return nil, fmt.Errorf("%w: no block form matches %q", ErrParse, src[0].Text)
		}
	}
	return doc, nil
}

// nestedBlock carves the leading nested block out of src and returns it
// together with the unconsumed remainder.
//
// A nested block is the maximal prefix of lines that are blank or
// indented past the current level; a content line at indent 0 ends it.
// When stripIndent is set, the minimum indent of the consumed content
// lines is subtracted from each of them, re-zeroing the block so it can
// be parsed as fresh source.
//
// shiftFirst handles marker-prefixed first lines ("- body" and the
// like): when >= 0 the first line is always consumed regardless of its
// indent, excluded from the shared-indent computation, stripped of its
// first shiftFirst characters, and forced to indent 0. Pass noShift to
// disable. Leading and trailing blank lines are trimmed from the
// consumed block.
func nestedBlock(src []Line, shiftFirst int, stripIndent bool) (block, rest []Line) {
	end := 0
	indent := -1
	if shiftFirst >= 0 {
		end = 1
	}
	for end < len(src) {
		l := src[end]
		if !l.Blank() {
			if l.Indent < 1 {
				break
			}
			if indent == -1 || l.Indent < indent {
				indent = l.Indent
			}
		}
		end++
	}

	block, rest = src[:end], src[end:]
	if len(block) == 0 {
		return block, rest
	}

	if indent > 0 && stripIndent {
		for i := range block {
			if !block[i].Blank() {
				block[i].Indent -= indent
			}
		}
	}
	if shiftFirst >= 0 {
		block[0].Indent = 0
		if shiftFirst < len(block[0].Text) {
			block[0].Text = block[0].Text[shiftFirst:]
		} else {
			block[0].Text = ""
		}
	}
	for len(block) > 0 && block[0].Blank() {
		block = block[1:]
	}
	for len(block) > 0 && block[len(block)-1].Blank() {
		block = block[:len(block)-1]
	}
	return block, rest
}

// simpleBlock consumes the maximal run of consecutive non-blank lines.
func simpleBlock(src []Line) (block, rest []Line) {
	for i, l := range src {
		if l.Blank() {
			return src[:i], src[i:]
		}
	}
	return src, nil
}

// matchBlank consumes a single blank line. Blank lines end blocks;
// extra ones carry no content of their own, so no block is produced.
func matchBlank(src []Line, _ int) (*Block, []Line, bool, error) {
	if !src[0].Blank() {
		return nil, src, false, nil
	}
	return nil, src[1:], true, nil
}

// matchNested handles a line indented past the current level. The
// nested lines are re-zeroed and parsed as fresh source; rendering adds
// two spaces of indentation on top of the enclosing block's.
func matchNested(src []Line, depth int) (*Block, []Line, bool, error) {
	if src[0].Indent == 0 {
		return nil, src, false, nil
	}
	nested, rest := nestedBlock(src, noShift, true)
	body, err := parseBody(nested, depth+1)
	if err != nil {
		return nil, src, false, err
	}
	return &Block{Kind: KindNested, Body: body}, rest, true, nil
}

// containerMarker opens a named container directive.
const containerMarker = ".. container::"

// matchContainer handles a container directive: the marker line, a
// blank line, then an indented body. The body renders only when the
// keep filter retains the container's name.
func matchContainer(src []Line, depth int) (*Block, []Line, bool, error) {
	if len(src) <= 2 || !src[1].Blank() || !strings.HasPrefix(src[0].Text, containerMarker) {
		return nil, src, false, nil
	}
	name := strings.TrimSpace(src[0].Text[len(containerMarker):])
	nested, rest := nestedBlock(src[1:], noShift, true)
	body, err := parseBody(nested, depth+1)
	if err != nil {
		return nil, src, false, err
	}
	return &Block{Kind: KindContainer, Name: name, Body: body}, rest, true, nil
}

var admonitionRE = regexp.MustCompile(
	`^(?i)\.\. (attention|caution|danger|error|hint|important|note|tip|warning):: *`)

// admonitionTitles maps each recognized admonition directive to its
// display title.
var admonitionTitles = map[string]string{
	"attention": "Attention:",
	"caution":   "Caution:",
	"danger":    "Danger!",
	"error":     "Error:",
	"hint":      "Hint:",
	"important": "Important:",
	"note":      "Note:",
	"tip":       "Tip:",
	"warning":   "Warning!",
}

// matchAdmonition handles specially marked topics such as ".. note::".
// The rest of the marker line plus the following indented lines form
// the body, rendered under the mapped title at two extra spaces of
// indentation.
func matchAdmonition(src []Line, depth int) (*Block, []Line, bool, error) {
	m := admonitionRE.FindStringSubmatchIndex(src[0].Text)
	if m == nil {
		return nil, src, false, nil
	}
	title := admonitionTitles[strings.ToLower(src[0].Text[m[2]:m[3]])]
	nested, rest := nestedBlock(src, m[1], true)
	body, err := parseBody(nested, depth+1)
	if err != nil {
		return nil, src, false, err
	}
	return &Block{Kind: KindAdmonition, Title: title, Body: body}, rest, true, nil
}

// matchParagraph is the catch-all: it consumes a maximal run of
// non-blank lines, joins them with single spaces, and applies inline
// substitution. A trailing "::" marks a following literal block, which
// is consumed verbatim; the marker itself is stripped (a bare "::"
// suppresses the paragraph text, " ::" also drops the space before it,
// anything else just loses the final colon).
func matchParagraph(src []Line, _ int) (*Block, []Line, bool, error) {
	block, rest := simpleBlock(src)
	if len(block) == 0 {
		return nil, src, false, nil
	}

	para := parseInline(block)
	var literal []Line
	if strings.HasSuffix(para, "::") {
		switch {
		case para == "::":
			para = ""
		case strings.HasSuffix(para, " ::"):
			para = para[:len(para)-3]
		default:
			para = para[:len(para)-1]
		}
		literal, rest = nestedBlock(rest, noShift, true)
	}
	return &Block{Kind: KindParagraph, Text: para, Literal: literal}, rest, true, nil
}
