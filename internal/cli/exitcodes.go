package cli

import (
	"errors"

	"github.com/yaklabco/textreport/internal/configloader"
	"github.com/yaklabco/textreport/pkg/fsutil"
	"github.com/yaklabco/textreport/pkg/report"
	"github.com/yaklabco/textreport/pkg/source"
)

// Exit codes for textreport, following sysexits.h where one fits.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an error with no more specific code.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates a source document that does not describe a valid report.
	ExitDataError = 65

	// ExitNoInput indicates the input file is missing or unreadable.
	ExitNoInput = 66

	// ExitIOError indicates an output write failure.
	ExitIOError = 74

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 78
)

// Sentinel errors raised by commands.
var (
	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrUsage wraps invalid flag or argument combinations.
	ErrUsage = errors.New("invalid usage")

	// ErrOutput wraps failures writing the rendered report.
	ErrOutput = errors.New("failed to write output")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrUsage), errors.Is(err, source.ErrUnknownFormat):
		return ExitInvalidUsage
	case errors.Is(err, ErrOutput):
		return ExitIOError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitNoInput
	case errors.Is(err, source.ErrInvalidDocument),
		errors.Is(err, report.ErrRowShape),
		errors.Is(err, report.ErrInvalidAlignment):
		return ExitDataError
	default:
		return ExitFailure
	}
}
