package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rstfmt/pkg/rst"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", errors.Join(ErrUsage, errors.New("unknown flag: --bogus")), ExitInvalidUsage},
		{"config", errors.Join(ErrConfig, errors.New("bad yaml")), ExitConfigError},
		{"input", errors.Join(ErrInput, errors.New("no such file")), ExitIOError},
		{"parse", fmt.Errorf("render doc.txt: %w", rst.ErrParse), ExitFailure},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestKeepSet(t *testing.T) {
	t.Parallel()

	assert.Nil(t, keepSet(nil, false), "no names keeps everything")

	keep := keepSet([]string{"windows"}, false)
	assert.True(t, keep["windows"])
	assert.False(t, keep["verbose"])

	keep = keepSet(nil, true)
	assert.True(t, keep["verbose"])

	keep = keepSet([]string{"windows"}, true)
	assert.True(t, keep["windows"])
	assert.True(t, keep["verbose"])
}

func TestTerminalWidthFallback(t *testing.T) {
	t.Parallel()

	// A plain buffer has no file descriptor, so detection falls back.
	assert.Equal(t, fallbackWidth, terminalWidth(&bytes.Buffer{}))
}
