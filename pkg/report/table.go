package report

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for table contract violations.
var (
	// ErrRowShape indicates a row whose cell count differs from the column count.
	ErrRowShape = errors.New("row cell count does not match column count")

	// ErrInvalidAlignment indicates a column alignment outside the known set.
	ErrInvalidAlignment = errors.New("invalid column alignment")
)

// Alignment controls how cell text is padded within its column.
// The zero value is not a valid alignment.
type Alignment int

// Supported alignments.
const (
	AlignLeft Alignment = iota + 1
	AlignRight
	AlignCenter
)

// ParseAlignment parses "left", "right" or "center" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
	}
}

// String returns the lower-case name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// IsValid reports whether a is one of the supported alignments.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignLeft, AlignRight, AlignCenter:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TableColumn describes one column of a table.
type TableColumn struct {
	// Header is the column title. Renderers that show headers use it;
	// the text renderer expects header text to be given as a row.
	Header string

	Alignment Alignment
}

// Column is shorthand for a TableColumn literal.
func Column(header string, alignment Alignment) TableColumn {
	return TableColumn{Header: header, Alignment: alignment}
}

// TableCell is one cell of a table row.
type TableCell struct {
	// Content is the cell text. A nil Content renders as a blank cell.
	Content *string
}

// TableRow is an ordered list of cells, aligned by index to the columns.
type TableRow struct {
	Cells []TableCell
}

// Table is a captioned grid of cells.
type Table struct {
	Caption string
	Columns []TableColumn
	Rows    []TableRow
}

// NewTable creates a table with the given caption and columns.
func NewTable(caption string, columns ...TableColumn) *Table {
	return &Table{Caption: caption, Columns: columns}
}

// Render implements Item.
func (t *Table) Render(w Writer) error {
	return w.WriteTable(t)
}

// AddRow appends a row built from values, one per column.
func (t *Table) AddRow(values ...string) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowShape, len(values), len(t.Columns))
	}

	row := TableRow{Cells: make([]TableCell, len(values))}
	for i, value := range values {
		row.Cells[i] = TableCell{Content: Text(value)}
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// AddCells appends a row of prepared cells, allowing nil content.
func (t *Table) AddCells(cells ...TableCell) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowShape, len(cells), len(t.Columns))
	}
	t.Rows = append(t.Rows, TableRow{Cells: cells})
	return nil
}

// Validate checks the table invariants: every column has a valid alignment
// and every row has exactly one cell per column.
func (t *Table) Validate() error {
	for j, col := range t.Columns {
		if !col.Alignment.IsValid() {
			return fmt.Errorf("column %d: %w: %d", j, ErrInvalidAlignment, int(col.Alignment))
		}
	}

	for i, row := range t.Rows {
		if len(row.Cells) != len(t.Columns) {
			return fmt.Errorf("row %d: %w: got %d cells, want %d",
				i, ErrRowShape, len(row.Cells), len(t.Columns))
		}
	}

	return nil
}
