package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/textreport/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "style.body_font_size").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
// Zero values are treated as unset and pass.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.MaxLineLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_line_length",
			Value:   cfg.MaxLineLength,
			Message: "max_line_length must be > 0",
		})
	}

	if cfg.InputFormat != "" && !cfg.InputFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "input_format",
			Value:   cfg.InputFormat,
			Message: fmt.Sprintf("invalid input format %q; must be one of: auto, yaml, markdown", cfg.InputFormat),
		})
	}

	if cfg.Flavor != "" && !cfg.Flavor.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "flavor",
			Value:   cfg.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor),
		})
	}

	validateStyle(cfg, result)

	return result
}

func validateStyle(cfg *config.Config, result *ValidationResult) {
	if cfg.Style.BodyFontSize < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "style.body_font_size",
			Value:   cfg.Style.BodyFontSize,
			Message: "body_font_size must be > 0",
		})
	}

	formats := []struct {
		field string
		value string
	}{
		{"style.table_caption_format", cfg.Style.TableCaptionFormat},
		{"style.figure_text_format", cfg.Style.FigureTextFormat},
	}
	for _, f := range formats {
		if f.value != "" && !strings.Contains(f.value, "%d") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   f.field,
				Value:   f.value,
				Message: fmt.Sprintf("format %q has no %%d verb for the number", f.value),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
