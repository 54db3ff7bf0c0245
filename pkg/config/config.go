// Package config defines core configuration types for textreport.
// These types are pure data structures; loading and merging lives in
// internal/configloader.
package config

import "github.com/yaklabco/textreport/pkg/report"

// DefaultMaxLineLength is the paragraph wrap width used when none is configured.
const DefaultMaxLineLength = 60

// InputFormat selects how source documents are parsed.
type InputFormat string

const (
	InputFormatAuto     InputFormat = "auto"
	InputFormatYAML     InputFormat = "yaml"
	InputFormatMarkdown InputFormat = "markdown"
)

// IsValid returns true if the input format is known.
func (f InputFormat) IsValid() bool {
	switch f {
	case InputFormatAuto, InputFormatYAML, InputFormatMarkdown:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is known.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for textreport.
type Config struct {
	// MaxLineLength is the paragraph wrap width in characters.
	MaxLineLength int `yaml:"max_line_length"`

	// InputFormat selects the source parser ("auto", "yaml" or "markdown").
	InputFormat InputFormat `yaml:"input_format"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// Style is handed to the renderer. The text renderer ignores it.
	Style report.Style `yaml:"style"`

	// CLI-level options (not persisted to config files).

	// Output is the destination path. Empty means stdout.
	Output string `yaml:"-"`

	// FitTerminal sizes MaxLineLength to the terminal when stdout is one.
	FitTerminal bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		MaxLineLength: DefaultMaxLineLength,
		InputFormat:   InputFormatAuto,
		Flavor:        FlavorGFM,
		Style:         *report.DefaultStyle(),
	}
}
