// Package source builds report documents from files: a YAML document
// schema that maps one-to-one onto the report model, and Markdown parsed
// with goldmark.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/textreport/pkg/fsutil"
	"github.com/yaklabco/textreport/pkg/report"
)

// Format identifies a source document format.
type Format string

// Supported formats. FormatAuto selects by file extension.
const (
	FormatAuto     Format = "auto"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Markdown flavors.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned when a format name or extension is not recognized.
	ErrUnknownFormat = errors.New("unknown source format")

	// ErrInvalidDocument is returned when a document does not describe a valid report.
	ErrInvalidDocument = errors.New("invalid report document")
)

// Options controls document parsing.
type Options struct {
	// Flavor selects the Markdown dialect. GFM is required for tables.
	Flavor string
}

// ParseFormat parses a format name. The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w %q; valid formats: auto, yaml, markdown", ErrUnknownFormat, s)
	}
}

// DetectFormat picks a format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: cannot detect format of %q", ErrUnknownFormat, path)
	}
}

// Parse builds a report from data in the given format.
// FormatAuto is not accepted here because there is no path to inspect.
func Parse(ctx context.Context, format Format, data []byte, opts Options) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	var (
		rep *report.Report
		err error
	)

	switch format {
	case FormatYAML:
		rep, err = parseYAML(data)
	case FormatMarkdown:
		rep, err = parseMarkdown(ctx, data, opts.Flavor)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := report.Validate(rep); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return rep, nil
}

// Load reads and parses the document at path. With FormatAuto the format is
// detected from the extension.
func Load(ctx context.Context, path string, format Format, opts Options) (*report.Report, error) {
	if format == FormatAuto || format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	rep, err := Parse(ctx, format, data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rep, nil
}
