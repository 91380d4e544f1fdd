// Package textwrap provides greedy word wrapping for fixed-width
// terminal output.
//
// The algorithm collapses runs of whitespace, fills lines greedily, and
// breaks words that are longer than the usable width at the width
// boundary. Words are delimited by whitespace only: a hyphenated word
// is kept whole rather than split at the hyphen. First-line and
// subsequent-line indentation are specified independently, which is
// what hanging list layouts are built on.
package textwrap

import "strings"

// Fill wraps s to the given width and returns the joined lines.
//
// indent is prepended to the first line and subindent to every line
// after it. Both count against width. When an indent leaves less than
// one usable column, a single column is used so progress is always
// made. Wrapping an empty (or all-whitespace) string yields "".
func Fill(s string, width int, indent, subindent string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	prefix := indent
	cur := ""
	open := false

	for i := 0; i < len(words); {
		word := words[i]
		if !open {
			a := usable(width, prefix)
			// A word wider than the line is broken at the width
			// boundary; the remainder starts the next line.
			for len(word) > a {
				lines = append(lines, prefix+word[:a])
				word = word[a:]
				prefix = subindent
				a = usable(width, prefix)
			}
			cur = prefix + word
			open = true
			i++
			continue
		}
		if len(cur)+1+len(word) <= width {
			cur += " " + word
			i++
			continue
		}
		lines = append(lines, cur)
		prefix = subindent
		open = false
	}
	if open {
		lines = append(lines, cur)
	}

	return strings.Join(lines, "\n")
}

// usable returns the column budget left of width after prefix, floored
// at one.
func usable(width int, prefix string) int {
	a := width - len(prefix)
	if a < 1 {
		a = 1
	}
	return a
}
