package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rstfmt/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not render ANSI codes in non-TTY environments,
	// so just verify the struct is properly constructed.
	assert.NotNil(t, styles.Bold)
	assert.NotNil(t, styles.Error)
	assert.NotNil(t, styles.Warning)
	assert.NotNil(t, styles.Info)
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text.
	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
	assert.Equal(t, text, styles.Title.Render(text), "No-color Title should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoModeNonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf),
		"auto mode should return false for a non-file writer")
}

func TestIsColorEnabled_AutoModeNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout),
		"auto mode should honor NO_COLOR")
}
