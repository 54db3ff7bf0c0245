package configloader

import (
	"github.com/yaklabco/textreport/pkg/config"
	"github.com/yaklabco/textreport/pkg/report"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Style: merged field by field
//   - Booleans: only a true override is observable
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.MaxLineLength != 0 {
		result.MaxLineLength = override.MaxLineLength
	}
	if override.InputFormat != "" {
		result.InputFormat = override.InputFormat
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.FitTerminal {
		result.FitTerminal = true
	}

	result.Style = mergeStyle(base.Style, override.Style)

	return &result
}

// mergeStyle merges individual style fields.
func mergeStyle(base, override report.Style) report.Style {
	result := base

	if override.DefaultFont != "" {
		result.DefaultFont = override.DefaultFont
	}
	if override.HeaderFont != "" {
		result.HeaderFont = override.HeaderFont
	}
	if override.BodyFontSize != 0 {
		result.BodyFontSize = override.BodyFontSize
	}
	if override.TableCaptionFormat != "" {
		result.TableCaptionFormat = override.TableCaptionFormat
	}
	if override.FigureTextFormat != "" {
		result.FigureTextFormat = override.FigureTextFormat
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
