package report

// Style holds presentation settings for renderers that lay out pages.
// Plain text renderers accept it and ignore it.
type Style struct {
	DefaultFont string `yaml:"default_font,omitempty"`
	HeaderFont  string `yaml:"header_font,omitempty"`

	// BodyFontSize is in points.
	BodyFontSize float64 `yaml:"body_font_size,omitempty"`

	// TableCaptionFormat is a format string taking the table number and caption.
	TableCaptionFormat string `yaml:"table_caption_format,omitempty"`

	// FigureTextFormat is a format string taking the figure number and caption.
	FigureTextFormat string `yaml:"figure_text_format,omitempty"`
}

// DefaultStyle returns the style used when none is configured.
func DefaultStyle() *Style {
	return &Style{
		DefaultFont:        "Arial",
		HeaderFont:         "Arial",
		BodyFontSize:       11,
		TableCaptionFormat: "Table %d. %s",
		FigureTextFormat:   "Figure %d. %s",
	}
}
