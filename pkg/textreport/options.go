package textreport

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxLineLength is the paragraph wrap width used when none is set.
const DefaultMaxLineLength = 60

// bufWriterSize is the buffer size for file-backed writers (64 KiB).
const bufWriterSize = 64 * 1024

// ErrInvalidLineLength is returned for a non-positive maximum line length.
var ErrInvalidLineLength = errors.New("max line length must be positive")

// Options configures a TextWriter.
type Options struct {
	// MaxLineLength is the paragraph wrap width in characters.
	// Zero selects DefaultMaxLineLength.
	MaxLineLength int

	// Logger receives debug records about rendered nodes.
	// Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns Options with the default line length.
func DefaultOptions() Options {
	return Options{MaxLineLength: DefaultMaxLineLength}
}

// Validate reports whether the options can be used.
func (o Options) Validate() error {
	if o.MaxLineLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineLength, o.MaxLineLength)
	}
	return nil
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.MaxLineLength == 0 {
		o.MaxLineLength = DefaultMaxLineLength
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
