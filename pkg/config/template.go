package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value.
	// If false, generates a minimal commented template.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	fmt.Fprintf(&buf, `

# Maximum paragraph line length in characters
max_line_length: %d

# Source format: auto (by extension), yaml, or markdown
# input_format: auto

# Markdown flavor: commonmark or gfm (gfm is required for tables)
# flavor: gfm

# Page style, used by renderers that lay out pages
# style:
#   default_font: Arial
#   header_font: Arial
#   body_font_size: 11
#   table_caption_format: "Table %%d. %%s"
#   figure_text_format: "Figure %%d. %%s"
`, DefaultMaxLineLength)

	return buf.Bytes()
}

func generateFullTemplate() ([]byte, error) {
	out, err := NewConfig().ToYAMLWithHeader(DefaultTemplateHeader())
	if err != nil {
		return nil, fmt.Errorf("generate template: %w", err)
	}
	return out, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# textreport configuration
# See: https://github.com/yaklabco/textreport`
}
