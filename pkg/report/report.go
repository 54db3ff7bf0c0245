// Package report defines the in-memory report document model and the
// Writer capability set that renderers implement to serialize it.
//
// A Report is an ordered tree of items (headers, paragraphs, tables, sections
// and figure placeholders). Report.Write walks the tree in document order and
// calls the matching Writer method for every node, so a renderer never has to
// know how the tree is built.
package report

// Compile-time interface checks for the node types.
var (
	_ Item = (*Header)(nil)
	_ Item = (*Paragraph)(nil)
	_ Item = (*Table)(nil)
	_ Item = (*Section)(nil)
	_ Item = (*DrawingFigure)(nil)
	_ Item = (*Equation)(nil)
	_ Item = (*Image)(nil)
	_ Item = (*PlotFigure)(nil)
)

// Writer is the capability set a report renderer exposes.
// Report.Write invokes one method per node it visits, in document order.
type Writer interface {
	// WriteReport renders a whole report using the given style.
	// Renderers that have no use for styling may ignore it.
	WriteReport(r *Report, style *Style) error

	WriteHeader(h *Header) error
	WriteParagraph(p *Paragraph) error
	WriteTable(t *Table) error
	WriteDrawing(d *DrawingFigure) error
	WriteEquation(e *Equation) error
	WriteImage(i *Image) error
	WritePlot(p *PlotFigure) error
}

// Item is a node of the report tree.
type Item interface {
	// Render calls the Writer method that handles this node.
	Render(w Writer) error
}

// Report is the root of a report document.
type Report struct {
	// Title is descriptive metadata. It is not rendered by itself;
	// add a Header to show a title in the output.
	Title string

	// Items are the top-level nodes in document order.
	Items []Item
}

// NewReport creates an empty report with the given title.
func NewReport(title string) *Report {
	return &Report{Title: title}
}

// Add appends items to the report and returns the report for chaining.
// Nil items are skipped.
func (r *Report) Add(items ...Item) *Report {
	r.Items = appendItems(r.Items, items)
	return r
}

// Write traverses the report in document order, handing every node to w.
// The traversal stops at the first error, which is returned unchanged.
func (r *Report) Write(w Writer) error {
	if r == nil {
		return nil
	}
	return renderItems(w, r.Items, 1)
}

// renderItems renders items at the given section depth.
func renderItems(w Writer, items []Item, depth int) error {
	for _, item := range items {
		var err error
		if section, ok := item.(*Section); ok {
			err = section.renderAt(w, depth)
		} else {
			err = item.Render(w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func appendItems(dst, items []Item) []Item {
	for _, item := range items {
		if item != nil {
			dst = append(dst, item)
		}
	}
	return dst
}

// Text returns a pointer to s. It is a convenience for the nullable text
// fields of Header and TableCell.
func Text(s string) *string {
	return &s
}
