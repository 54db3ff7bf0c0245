package textreport_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textreport/pkg/report"
)

func renderTable(t *testing.T, tbl *report.Table) []string {
	t.Helper()

	tw, buf := newWriter(t, 0)
	require.NoError(t, tw.WriteTable(tbl))
	return strings.Split(buf.String(), "\n")
}

func TestWriteTable_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("single column", func(t *testing.T) {
		t.Parallel()

		tbl := report.NewTable("one", report.Column("", report.AlignLeft))
		require.NoError(t, tbl.AddRow("x"))

		lines := renderTable(t, tbl)
		assert.Equal(t, []string{"Table 1. one", "", "| x |", "", ""}, lines)
	})

	t.Run("two columns left aligned", func(t *testing.T) {
		t.Parallel()

		tbl := report.NewTable("two",
			report.Column("", report.AlignLeft),
			report.Column("", report.AlignLeft),
		)
		require.NoError(t, tbl.AddRow("a", "bb"))
		require.NoError(t, tbl.AddRow("ccc", "d"))

		lines := renderTable(t, tbl)
		assert.Equal(t, []string{"Table 1. two", "", "| a   | bb |", "| ccc | d  |", "", ""}, lines)
	})

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()

		tbl := report.NewTable("empty",
			report.Column("", report.AlignLeft),
			report.Column("", report.AlignRight),
		)

		lines := renderTable(t, tbl)
		assert.Equal(t, []string{"Table 1. empty", "", "", ""}, lines)
	})

	t.Run("alignments", func(t *testing.T) {
		t.Parallel()

		tbl := report.NewTable("mixed",
			report.Column("", report.AlignLeft),
			report.Column("", report.AlignRight),
			report.Column("", report.AlignCenter),
		)
		require.NoError(t, tbl.AddRow("id", "7", "a"))
		require.NoError(t, tbl.AddRow("name", "100", "abcd"))

		lines := renderTable(t, tbl)
		assert.Equal(t, "| id   |   7 |   a  |", lines[2])
		assert.Equal(t, "| name | 100 | abcd |", lines[3])
	})

	t.Run("nil content is blank", func(t *testing.T) {
		t.Parallel()

		tbl := report.NewTable("nulls",
			report.Column("", report.AlignLeft),
			report.Column("", report.AlignCenter),
		)
		require.NoError(t, tbl.AddCells(
			report.TableCell{Content: report.Text("abc")},
			report.TableCell{},
		))
		require.NoError(t, tbl.AddCells(
			report.TableCell{},
			report.TableCell{Content: report.Text("xy")},
		))

		lines := renderTable(t, tbl)
		assert.Equal(t, "| abc |    |", lines[2])
		assert.Equal(t, "|     | xy |", lines[3])
	})

	t.Run("all nil column has zero width", func(t *testing.T) {
		t.Parallel()

		tbl := report.NewTable("blank",
			report.Column("", report.AlignLeft),
			report.Column("", report.AlignRight),
		)
		require.NoError(t, tbl.AddCells(report.TableCell{}, report.TableCell{Content: report.Text("1")}))

		lines := renderTable(t, tbl)
		assert.Equal(t, "|  | 1 |", lines[2])
	})
}

func TestWriteTable_CounterIncrementsPerTable(t *testing.T) {
	t.Parallel()

	tw, buf := newWriter(t, 0)
	for _, caption := range []string{"first", "second", "third"} {
		require.NoError(t, tw.WriteTable(report.NewTable(caption)))
	}

	out := buf.String()
	assert.Contains(t, out, "Table 1. first\n")
	assert.Contains(t, out, "Table 2. second\n")
	assert.Contains(t, out, "Table 3. third\n")

	// A new writer numbers from one again.
	other, otherBuf := newWriter(t, 0)
	require.NoError(t, other.WriteTable(report.NewTable("fresh")))
	assert.True(t, strings.HasPrefix(otherBuf.String(), "Table 1. fresh\n"))
}

func TestWriteTable_RejectsContractViolations(t *testing.T) {
	t.Parallel()

	t.Run("row shape", func(t *testing.T) {
		t.Parallel()

		tw, buf := newWriter(t, 0)
		bad := report.NewTable("bad", report.Column("", report.AlignLeft), report.Column("", report.AlignLeft))
		bad.Rows = append(bad.Rows, report.TableRow{Cells: []report.TableCell{{Content: report.Text("x")}}})

		err := tw.WriteTable(bad)
		require.ErrorIs(t, err, report.ErrRowShape)
		assert.Empty(t, buf.String())

		// The rejected table did not consume a number.
		require.NoError(t, tw.WriteTable(report.NewTable("good")))
		assert.True(t, strings.HasPrefix(buf.String(), "Table 1. good\n"))
	})

	t.Run("invalid alignment", func(t *testing.T) {
		t.Parallel()

		tw, buf := newWriter(t, 0)
		bad := report.NewTable("bad", report.TableColumn{Alignment: report.Alignment(9)})
		require.ErrorIs(t, tw.WriteTable(bad), report.ErrInvalidAlignment)
		assert.Empty(t, buf.String())
	})
}

func TestWriteTable_RowProperties(t *testing.T) {
	t.Parallel()

	contents := [][]string{
		{"alpha", "1", "x", ""},
		{"b", "22222", "yy", "zzz"},
		{"cc", "333", "", "q"},
	}
	alignments := []report.Alignment{report.AlignLeft, report.AlignRight, report.AlignCenter, report.AlignCenter}

	for cols := 1; cols <= len(alignments); cols++ {
		columns := make([]report.TableColumn, cols)
		for j := range columns {
			columns[j] = report.Column("", alignments[j])
		}
		tbl := report.NewTable("props", columns...)

		widths := make([]int, cols)
		for _, row := range contents {
			require.NoError(t, tbl.AddRow(row[:cols]...))
			for j, cell := range row[:cols] {
				widths[j] = max(widths[j], utf8.RuneCountInString(cell))
			}
		}

		lines := renderTable(t, tbl)
		rows := lines[2 : 2+len(contents)]

		for _, line := range rows {
			require.True(t, strings.HasPrefix(line, "| "), line)
			require.True(t, strings.HasSuffix(line, " |"), line)

			inner := strings.TrimSuffix(strings.TrimPrefix(line, "| "), " |")
			cells := strings.Split(inner, " | ")
			require.Len(t, cells, cols, "cols=%d line=%q", cols, line)

			for j, cell := range cells {
				assert.Equal(t, widths[j], utf8.RuneCountInString(cell), "cols=%d column %d", cols, j)
			}
		}
	}
}
