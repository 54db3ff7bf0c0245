package report

// Header is a heading line.
type Header struct {
	// Text is the heading text. A nil Text produces no output.
	Text *string

	// Level is the heading depth, starting at 1.
	Level int
}

// NewHeader creates a header with the given level and text.
func NewHeader(level int, text string) *Header {
	return &Header{Text: Text(text), Level: level}
}

// Render implements Item.
func (h *Header) Render(w Writer) error {
	return w.WriteHeader(h)
}

// Paragraph is a block of running text.
type Paragraph struct {
	Text string
}

// NewParagraph creates a paragraph.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

// Render implements Item.
func (p *Paragraph) Render(w Writer) error {
	return w.WriteParagraph(p)
}

// Section groups items under a title. When rendered, the title is emitted
// as a Header whose level is the nesting depth of the section (1 for a
// section directly under the report).
type Section struct {
	Title string
	Items []Item
}

// NewSection creates an empty section.
func NewSection(title string) *Section {
	return &Section{Title: title}
}

// Add appends items to the section and returns it for chaining.
func (s *Section) Add(items ...Item) *Section {
	s.Items = appendItems(s.Items, items)
	return s
}

// Render implements Item, treating the section as top-level.
func (s *Section) Render(w Writer) error {
	return s.renderAt(w, 1)
}

func (s *Section) renderAt(w Writer, depth int) error {
	if err := w.WriteHeader(s.header(depth)); err != nil {
		return err
	}
	return renderItems(w, s.Items, depth+1)
}

// header returns the heading for the section at depth.
// An untitled section yields a header with nil text.
func (s *Section) header(depth int) *Header {
	h := &Header{Level: depth}
	if s.Title != "" {
		h.Text = Text(s.Title)
	}
	return h
}

// DrawingFigure is a vector drawing placeholder.
type DrawingFigure struct {
	Caption string

	// Content is the drawing source (for example SVG or a diagram script).
	Content string
}

// Render implements Item.
func (d *DrawingFigure) Render(w Writer) error {
	return w.WriteDrawing(d)
}

// Equation is a typeset equation placeholder.
type Equation struct {
	Caption string

	// Content is the equation source, typically TeX.
	Content string
}

// Render implements Item.
func (e *Equation) Render(w Writer) error {
	return w.WriteEquation(e)
}

// Image is a raster image placeholder.
type Image struct {
	Caption string

	// Source is the image location (path or URL).
	Source string
}

// Render implements Item.
func (i *Image) Render(w Writer) error {
	return w.WriteImage(i)
}

// PlotFigure is a chart placeholder.
type PlotFigure struct {
	Caption string

	// Title is the plot's own title.
	Title string

	Width  float64
	Height float64
}

// Render implements Item.
func (p *PlotFigure) Render(w Writer) error {
	return w.WritePlot(p)
}
