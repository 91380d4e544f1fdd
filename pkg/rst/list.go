package rst

import "regexp"

// itemMatch identifies the next list item: the rendered key and the
// offset from the start of the first line to the item's body text.
type itemMatch struct {
	key    string
	offset int
}

// itemMatcher tests whether the remaining source starts a list item of
// one particular list form.
type itemMatcher func(src []Line) (itemMatch, bool)

// Bullet and enumerated markers: "-", "1.", "(a)", "b)", "|",
// followed by spaces or end of line.
var bulletRE = regexp.MustCompile(`^(-|[0-9A-Za-z]+\.|\(?[0-9A-Za-z]+\)|\|)(?:$| +)`)

// *nix option lists: one or more comma-separated "-f"/"--flag" tokens,
// each with an optional "=ARG" or " ARG" suffix, terminated by end of
// line or at least two spaces before the description.
var optionRE = regexp.MustCompile(
	`^(--?[a-z-]+(?:[ =][a-zA-Z][\w-]*)?(?:,? *--?[a-z-]+(?:[ =][a-zA-Z][\w-]*)?)*)(?: *$|  +)`)

// matchItemRE matches a list item whose key is the first capture group
// of re; the body offset is the end of the whole match.
func matchItemRE(re *regexp.Regexp, src []Line) (itemMatch, bool) {
	m := re.FindStringSubmatchIndex(src[0].Text)
	if m == nil {
		return itemMatch{}, false
	}
	return itemMatch{key: src[0].Text[m[2]:m[3]], offset: m[1]}, true
}

func matchBullet(src []Line) (itemMatch, bool) {
	return matchItemRE(bulletRE, src)
}

func matchOption(src []Line) (itemMatch, bool) {
	return matchItemRE(optionRE, src)
}

// matchField matches ":name:" field labels. The reference pattern uses
// lookaround (":(?![: ])([^:]*(?<! ):)(?: *$| +)") which RE2 does not
// support, so this is a hand-written scanner with the same behavior:
// the label starts right after the leading colon, may not begin with a
// colon or space, contains no further colon, may not end with a space,
// and the closing colon must be followed by end of line or at least
// one space.
func matchField(src []Line) (itemMatch, bool) {
	text := src[0].Text
	if len(text) < 3 || text[0] != ':' || text[1] == ':' || text[1] == ' ' {
		return itemMatch{}, false
	}
	end := 1
	for end < len(text) && text[end] != ':' {
		end++
	}
	if end == len(text) || text[end-1] == ' ' {
		return itemMatch{}, false
	}
	offset := end + 1
	for offset < len(text) && text[offset] == ' ' {
		offset++
	}
	if offset == end+1 && offset < len(text) {
		// Description glued to the label without a space.
		return itemMatch{}, false
	}
	return itemMatch{key: text[1 : end+1], offset: offset}, true
}

// matchDefinition treats any line followed by a strictly more indented
// line as a definition term. Because everything matches, this form
// must come after every other list form and before the paragraph
// catch-all.
func matchDefinition(src []Line) (itemMatch, bool) {
	if len(src) > 1 && src[0].Indent < src[1].Indent {
		return itemMatch{key: src[0].Text, offset: len(src[0].Text)}, true
	}
	return itemMatch{}, false
}

// parseList runs the shared list algorithm for one item matcher:
// consume consecutive items, extract each item's body as a nested
// block with the marker prefix shifted off the first line, and parse
// the body recursively. A non-matching line ends the whole list.
//
// The key column is sized to the widest key plus minSpace, capped at
// maxKeywidth when > 0. vspace forces a blank separator line between
// items at render time.
func parseList(match itemMatcher, src []Line, depth, maxKeywidth, minSpace int, vspace bool) (*Block, []Line, bool, error) {
	m, ok := match(src)
	if !ok {
		return nil, src, false, nil
	}

	var items []ListItem
	for ok {
		var nested []Line
		nested, src = nestedBlock(src, m.offset, true)
		body, err := parseBody(nested, depth+1)
		if err != nil {
			return nil, src, false, err
		}
		items = append(items, ListItem{Key: m.key, Body: body})
		if len(src) == 0 {
			break
		}
		m, ok = match(src)
	}

	keywidth := 0
	for _, it := range items {
		if len(it.Key) > keywidth {
			keywidth = len(it.Key)
		}
	}
	keywidth += minSpace
	if maxKeywidth > 0 && keywidth > maxKeywidth {
		keywidth = maxKeywidth
	}

	blk := &Block{
		Kind:     KindList,
		Items:    items,
		Keywidth: keywidth,
		MinSpace: minSpace,
		VSpace:   vspace,
	}
	return blk, src, true, nil
}

func matchBulletList(src []Line, depth int) (*Block, []Line, bool, error) {
	return parseList(matchBullet, src, depth, 0, 1, false)
}

func matchOptionList(src []Line, depth int) (*Block, []Line, bool, error) {
	return parseList(matchOption, src, depth, 14, 2, false)
}

func matchFieldList(src []Line, depth int) (*Block, []Line, bool, error) {
	return parseList(matchField, src, depth, 14, 2, false)
}

func matchDefinitionList(src []Line, depth int) (*Block, []Line, bool, error) {
	return parseList(matchDefinition, src, depth, 2, 2, true)
}
