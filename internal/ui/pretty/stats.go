package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/textreport/pkg/report"
)

// statsLabelWidth pads summary labels into a column.
const statsLabelWidth = 12

// WriteStats writes a short summary of a rendered report.
// Destination is the output path, or empty for stdout.
func WriteStats(w io.Writer, styles *Styles, r *report.Report, destination string) error {
	if destination == "" {
		destination = "stdout"
	}

	title := r.Title
	if title == "" {
		title = "untitled report"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s %s\n",
		styles.Success.Render("Rendered"),
		styles.Bold.Render(title),
		styles.Dim.Render("->"),
		destination,
	)

	stats := report.CountItems(r)
	rows := []struct {
		label string
		value string
	}{
		{"sections", fmt.Sprint(stats.Sections)},
		{"headers", fmt.Sprint(stats.Headers)},
		{"paragraphs", fmt.Sprint(stats.Paragraphs)},
		{"tables", fmt.Sprintf("%d (%d rows)", stats.Tables, stats.TableRows)},
		{"figures", fmt.Sprint(stats.Figures)},
	}
	for _, row := range rows {
		padding := strings.Repeat(" ", statsLabelWidth-len(row.label))
		fmt.Fprintf(&sb, "  %s%s%s\n", styles.Label.Render(row.label), padding, styles.Value.Render(row.value))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}
