package cli

import (
	"errors"

	"github.com/yaklabco/rstfmt/pkg/rst"
)

// Exit codes for rstfmt, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the input document could not be rendered.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to classify command failures into exit codes.
var (
	// ErrUsage marks invalid command-line usage (bad flags, too many
	// arguments).
	ErrUsage = errors.New("usage error")

	// ErrConfig marks configuration loading or validation failures.
	ErrConfig = errors.New("configuration error")

	// ErrInput marks failures reading the input document.
	ErrInput = errors.New("input error")
)

// ExitCodeForError maps a command error to its process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrInput):
		return ExitIOError
	case errors.Is(err, rst.ErrParse):
		return ExitFailure
	default:
		return ExitFailure
	}
}
