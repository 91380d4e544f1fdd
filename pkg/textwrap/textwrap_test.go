package textwrap_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/rstfmt/pkg/textwrap"
)

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		width     int
		indent    string
		subindent string
		want      string
	}{
		{
			name:  "short line unchanged",
			in:    "hello world",
			width: 80,
			want:  "hello world",
		},
		{
			name:  "wraps at width",
			in:    "aaa bbb ccc ddd",
			width: 7,
			want:  "aaa bbb\nccc ddd",
		},
		{
			name:  "collapses whitespace",
			in:    "a   b\t\tc",
			width: 80,
			want:  "a b c",
		},
		{
			name:      "hanging indent",
			in:        "one two three four",
			width:     11,
			indent:    "",
			subindent: "    ",
			want:      "one two\n    three\n    four",
		},
		{
			name:      "first line indent counts against width",
			in:        "aa bb cc",
			width:     6,
			indent:    "   ",
			subindent: "",
			want:      "   aa\nbb cc",
		},
		{
			name:  "breaks word longer than width",
			in:    "abcdefghij",
			width: 4,
			want:  "abcd\nefgh\nij",
		},
		{
			name:      "long word remainder joins following words",
			in:        "abcdef gh",
			width:     5,
			subindent: "",
			want:      "abcde\nf gh",
		},
		{
			name:  "hyphenated word stays whole",
			in:    "a well-known word",
			width: 10,
			want:  "a\nwell-known\nword",
		},
		{
			name:  "empty input",
			in:    "",
			width: 80,
			want:  "",
		},
		{
			name:  "whitespace only input",
			in:    "  \t ",
			width: 80,
			want:  "",
		},
		{
			name:      "indent wider than width still makes progress",
			in:        "ab",
			width:     2,
			indent:    "    ",
			subindent: "    ",
			want:      "    a\n    b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := textwrap.Fill(tt.in, tt.width, tt.indent, tt.subindent)
			if got != tt.want {
				t.Errorf("Fill(%q, %d, %q, %q) = %q, want %q",
					tt.in, tt.width, tt.indent, tt.subindent, got, tt.want)
			}
		})
	}
}

func TestFillNeverExceedsWidth(t *testing.T) {
	t.Parallel()

	// With no over-long words, every output line fits.
	got := textwrap.Fill(strings.Repeat("word ", 50), 20, "  ", "    ")
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}
}
