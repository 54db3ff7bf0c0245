package textreport

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/textreport/pkg/report"
)

// Table row decoration.
const (
	tableRowStart      = "| "
	tableCellSeparator = " | "
	tableRowEnd        = " |"
)

// WriteTable writes a numbered caption, a blank line, one line per row and a
// final blank line. Tables that break the row shape or alignment contract are
// rejected before anything is written and do not consume a table number.
func (w *TextWriter) WriteTable(t *report.Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("table %q: %w", t.Caption, err)
	}

	w.tableCounter++
	w.logger.Debug("render table",
		"table", w.tableCounter,
		"rows", len(t.Rows),
		"columns", len(t.Columns),
	)

	if err := w.writeLine(fmt.Sprintf("Table %d. %s", w.tableCounter, t.Caption)); err != nil {
		return err
	}
	if err := w.writeLine(""); err != nil {
		return err
	}

	widths := columnWidths(t)
	for _, row := range t.Rows {
		if err := w.writeLine(formatRow(t.Columns, row, widths)); err != nil {
			return err
		}
	}

	return w.writeLine("")
}

// columnWidths returns, per column, the longest cell content in characters.
// Nil content counts as zero.
func columnWidths(t *report.Table) []int {
	widths := make([]int, len(t.Columns))
	for j := range t.Columns {
		for _, row := range t.Rows {
			if content := row.Cells[j].Content; content != nil {
				widths[j] = max(widths[j], utf8.RuneCountInString(*content))
			}
		}
	}
	return widths
}

// formatRow renders one table row as a single decorated line.
func formatRow(columns []report.TableColumn, row report.TableRow, widths []int) string {
	var sb strings.Builder
	for j, cell := range row.Cells {
		sb.WriteString(decorateCell(j, len(columns), padCell(cell.Content, columns[j].Alignment, widths[j])))
	}
	return sb.String()
}

// decorateCell adds the row start, cell separator and row end as they apply
// to column i of count. A single column gets both start and end.
func decorateCell(i, count int, text string) string {
	if i == 0 {
		text = tableRowStart + text
	}
	if i+1 < count {
		text += tableCellSeparator
	}
	if i == count-1 {
		text += tableRowEnd
	}
	return text
}

// padCell pads text to width according to alignment. Nil text becomes a blank
// cell. Center pads right to (len+width)/2 first and then left to width, so
// odd slack puts the extra space on the left.
func padCell(text *string, alignment report.Alignment, width int) string {
	if text == nil {
		return padLeft("", width)
	}

	switch alignment {
	case report.AlignLeft:
		return padRight(*text, width)
	case report.AlignRight:
		return padLeft(*text, width)
	case report.AlignCenter:
		centered := padRight(*text, (utf8.RuneCountInString(*text)+width)/2)
		return padLeft(centered, width)
	default:
		// Validate rejects unknown alignments before rows are formatted.
		panic(fmt.Sprintf("textreport: unhandled alignment %v", alignment))
	}
}

func padLeft(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
