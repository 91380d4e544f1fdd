package rst

import "testing"

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []Line
		want string
	}{
		{
			name: "joins lines with single spaces",
			in:   []Line{{0, "one"}, {0, "two"}, {0, "three"}},
			want: "one two three",
		},
		{
			name: "double backticks become quotes",
			in:   []Line{{0, "run ``ls -l`` twice"}},
			want: `run "ls -l" twice`,
		},
		{
			name: "code role prefixed",
			in:   []Line{{0, "use :code:`printf` here"}},
			want: `use "printf" here`,
		},
		{
			name: "code role suffixed",
			in:   []Line{{0, "use `printf`:code: here"}},
			want: `use "printf" here`,
		},
		{
			name: "multiple occurrences left to right",
			in:   []Line{{0, ":code:`a` and :code:`b`"}},
			want: `"a" and "b"`,
		},
		{
			name: "unknown role untouched",
			in:   []Line{{0, ":emph:`word`"}},
			want: ":emph:`word`",
		},
		{
			name: "punctuation in role content blocks the match",
			in:   []Line{{0, ":code:`ls -l`"}},
			want: ":code:`ls -l`",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parseInline(tt.in); got != tt.want {
				t.Errorf("parseInline(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
