package rst

import (
	"strings"
	"testing"
)

func TestPreprocess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []Line
	}{
		{
			name:   "flat lines",
			source: "one\ntwo",
			want:   []Line{{0, "one"}, {0, "two"}},
		},
		{
			name:   "relative indentation",
			source: "one\n  two\n    three",
			want:   []Line{{0, "one"}, {2, "two"}, {4, "three"}},
		},
		{
			name:   "shared indentation removed",
			source: "    one\n      two",
			want:   []Line{{0, "one"}, {2, "two"}},
		},
		{
			name:   "blank lines are zero",
			source: "  one\n\n  two",
			want:   []Line{{0, "one"}, {0, ""}, {0, "two"}},
		},
		{
			name:   "crlf endings",
			source: "one\r\ntwo\r\n",
			want:   []Line{{0, "one"}, {0, "two"}, {0, ""}},
		},
		{
			name:   "all blank",
			source: "\n \n",
			want:   []Line{{0, ""}, {0, ""}, {0, ""}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Preprocess(tt.source)
			if len(got) != len(tt.want) {
				t.Fatalf("Preprocess(%q) = %v, want %v", tt.source, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Reconstructing the text from the (indent, text) pairs and
// preprocessing again must yield the same pairs.
func TestPreprocessIdempotent(t *testing.T) {
	t.Parallel()

	sources := []string{
		"one\n  two\n    three",
		"  a\n\n  b\n      c",
		"- item\n  body\n\nnext",
		"",
	}

	for _, source := range sources {
		first := Preprocess(source)

		parts := make([]string, len(first))
		for i, l := range first {
			parts[i] = strings.Repeat(" ", l.Indent) + l.Text
		}
		second := Preprocess(strings.Join(parts, "\n"))

		if len(second) != len(first) {
			t.Fatalf("source %q: got %d lines after round trip, want %d",
				source, len(second), len(first))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("source %q line %d: %v != %v", source, i, first[i], second[i])
			}
		}
	}
}
