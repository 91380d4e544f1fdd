package rst_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/rstfmt/pkg/rst"
)

// formatTest renders source with opts and diffs against want.
func formatTest(t *testing.T, source string, opts rst.Options, want string) {
	t.Helper()

	got, err := rst.Format(source, opts)
	if err != nil {
		t.Fatalf("Format(%q) failed: %v", source, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Format(%q) mismatch (-want +got):\n%s", source, diff)
	}
}

func TestFormatParagraph(t *testing.T) {
	t.Parallel()

	formatTest(t, "Hello world.\n", rst.DefaultOptions(), "Hello world.")

	// Consecutive non-blank lines join into one paragraph.
	formatTest(t, "one\ntwo\nthree\n", rst.DefaultOptions(), "one two three")

	// Blank lines separate paragraphs.
	formatTest(t, "first\n\nsecond\n", rst.DefaultOptions(), "first\n\nsecond")

	// Wrapping at the requested width.
	formatTest(t,
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod.",
		rst.Options{Width: 30},
		"Lorem ipsum dolor sit amet,\nconsectetur adipiscing elit,\nsed do eiusmod.")

	// Top-level indent prefixes every line.
	formatTest(t, "aa bb cc\n", rst.Options{Width: 9, Indent: "   "},
		"   aa bb\n   cc")
}

func TestFormatBulletList(t *testing.T) {
	t.Parallel()

	// No blank separator between single-paragraph bullet items.
	formatTest(t, "- one\n- two\n", rst.DefaultOptions(), "- one\n- two")

	// Enumerated markers share the bullet machinery.
	formatTest(t, "1. first\n2. second\n", rst.DefaultOptions(),
		"1. first\n2. second")

	// A multi-paragraph item gets a separator after it automatically.
	formatTest(t, "- first para\n\n  second para\n- next item\n",
		rst.DefaultOptions(),
		"- first para\n\n  second para\n\n- next item")

	// Item bodies wrap at the hanging indent.
	formatTest(t, "- aaa bbb ccc ddd\n", rst.Options{Width: 9},
		"- aaa bbb\n  ccc ddd")
}

func TestFormatOptionList(t *testing.T) {
	t.Parallel()

	formatTest(t, "-b ARG  Description b\n--long  Long description\n",
		rst.DefaultOptions(),
		"-b ARG  Description b\n--long  Long description")

	// A key wider than the column cap goes on its own line.
	formatTest(t,
		"--very-long-option-name ARG  Desc\n-b  Short desc\n",
		rst.DefaultOptions(),
		"--very-long-option-name ARG\n              Desc\n-b            Short desc")
}

func TestFormatFieldList(t *testing.T) {
	t.Parallel()

	formatTest(t, ":name:  The name.\n:value:  The value.\n",
		rst.DefaultOptions(),
		"name:   The name.\nvalue:  The value.")
}

func TestFormatDefinitionList(t *testing.T) {
	t.Parallel()

	// Definition items are separated by blank lines (vspace).
	formatTest(t, "alpha\n  first\nbeta\n  second\n",
		rst.DefaultOptions(),
		"alpha\n  first\n\nbeta\n  second")

	// A bullet list under a term is indented by the key column width.
	formatTest(t, "term\n  - one\n  - two\n",
		rst.DefaultOptions(),
		"term\n  - one\n  - two")
}

func TestFormatLiteralBlock(t *testing.T) {
	t.Parallel()

	// Two extra spaces past the paragraph indent; inner relative
	// indentation preserved verbatim.
	formatTest(t, "Example::\n\n  code line\n    indented\n\nAfter.\n",
		rst.DefaultOptions(),
		"Example:\n\n  code line\n    indented\n\nAfter.")

	// A bare "::" paragraph disappears, leaving only the literal.
	formatTest(t, "::\n\n  verbatim\n", rst.DefaultOptions(), "  verbatim")

	// A " ::" suffix drops the marker and the space before it.
	formatTest(t, "Text ::\n\n  lit\n", rst.DefaultOptions(), "Text\n\n  lit")
}

func TestFormatContainer(t *testing.T) {
	t.Parallel()

	source := ".. container:: verbose\n\n  Verbose output.\n\nAlways.\n"

	// nil keep retains everything.
	formatTest(t, source, rst.DefaultOptions(), "Verbose output.\n\nAlways.")

	// An empty keep filter suppresses every named container.
	formatTest(t, source, rst.Options{Width: 80, Keep: rst.KeepNames()}, "Always.")

	// Naming the container retains it.
	formatTest(t, source, rst.Options{Width: 80, Keep: rst.KeepNames("verbose")},
		"Verbose output.\n\nAlways.")
}

func TestFormatAdmonition(t *testing.T) {
	t.Parallel()

	formatTest(t, ".. note:: Remember this.\n", rst.DefaultOptions(),
		"Note:\n  Remember this.")

	// Body continues on following indented lines.
	formatTest(t, ".. warning:: Danger ahead.\n   Really.\n",
		rst.DefaultOptions(),
		"Warning!\n  Danger ahead. Really.")

	// Keyword matching is case-insensitive.
	formatTest(t, ".. NOTE:: Shouting.\n", rst.DefaultOptions(),
		"Note:\n  Shouting.")
}

func TestFormatNestedBlock(t *testing.T) {
	t.Parallel()

	formatTest(t, "para\n\n  nested\n", rst.DefaultOptions(), "para\n\n  nested")
}

func TestFormatInline(t *testing.T) {
	t.Parallel()

	formatTest(t, "run ``ls -l`` or :code:`pwd` now\n", rst.DefaultOptions(),
		`run "ls -l" or "pwd" now`)
}

func TestFormatEmptyDocument(t *testing.T) {
	t.Parallel()

	formatTest(t, "", rst.DefaultOptions(), "")
	formatTest(t, "\n\n  \n", rst.DefaultOptions(), "")
}

// The same parsed document renders at any width, deterministically.
func TestRenderRepeatable(t *testing.T) {
	t.Parallel()

	doc, err := rst.Parse("some words that will wrap\n\n- a\n- b\n")
	if err != nil {
		t.Fatal(err)
	}

	wide := doc.Render(80, "", nil)
	narrow := doc.Render(12, "", nil)
	if wide == narrow {
		t.Error("expected different output at different widths")
	}
	if again := doc.Render(80, "", nil); again != wide {
		t.Errorf("second render differs: %q vs %q", again, wide)
	}
	if again := doc.Render(12, "", nil); again != narrow {
		t.Errorf("second narrow render differs: %q vs %q", again, narrow)
	}
}
