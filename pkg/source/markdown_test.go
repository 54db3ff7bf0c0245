package source_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textreport/pkg/report"
	"github.com/yaklabco/textreport/pkg/source"
	"github.com/yaklabco/textreport/pkg/textreport"
)

func parseMarkdown(t *testing.T, doc, flavor string) *report.Report {
	t.Helper()

	rep, err := source.Parse(context.Background(), source.FormatMarkdown, []byte(doc), source.Options{Flavor: flavor})
	require.NoError(t, err)
	return rep
}

const sampleMarkdown = "# Results\n" +
	"\n" +
	"Intro text\n" +
	"spanning *two* lines.\n" +
	"\n" +
	"Table: Scores\n" +
	"\n" +
	"| Name | Score |\n" +
	"|:-----|------:|\n" +
	"| Ada  | 97    |\n" +
	"| Bob  |       |\n" +
	"\n" +
	"- one\n" +
	"- two\n" +
	"\n" +
	"![Chart](chart.png)\n" +
	"\n" +
	"```math\n" +
	"E = mc^2\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"func main() {}\n" +
	"```\n"

func TestMarkdown_Mapping(t *testing.T) {
	t.Parallel()

	rep := parseMarkdown(t, sampleMarkdown, source.FlavorGFM)

	assert.Equal(t, "Results", rep.Title)
	require.Len(t, rep.Items, 7)

	assert.Equal(t, report.NewHeader(1, "Results"), rep.Items[0])
	assert.Equal(t, report.NewParagraph("Intro text spanning two lines."), rep.Items[1])

	tbl, ok := rep.Items[2].(*report.Table)
	require.True(t, ok, "got %T", rep.Items[2])
	assert.Equal(t, "Scores", tbl.Caption)
	assert.Equal(t, []report.TableColumn{
		report.Column("Name", report.AlignLeft),
		report.Column("Score", report.AlignRight),
	}, tbl.Columns)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, "Name", *tbl.Rows[0].Cells[0].Content)
	assert.Equal(t, "97", *tbl.Rows[1].Cells[1].Content)
	assert.Nil(t, tbl.Rows[2].Cells[1].Content)

	assert.Equal(t, report.NewParagraph("- one"), rep.Items[3])
	assert.Equal(t, report.NewParagraph("- two"), rep.Items[4])
	assert.Equal(t, &report.Image{Caption: "Chart", Source: "chart.png"}, rep.Items[5])
	assert.Equal(t, &report.Equation{Content: "E = mc^2"}, rep.Items[6])
}

func TestMarkdown_RendersThroughTextWriter(t *testing.T) {
	t.Parallel()

	rep := parseMarkdown(t, sampleMarkdown, "")

	var buf bytes.Buffer
	w, err := textreport.New(&buf, textreport.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, w.WriteReport(rep, nil))

	want := "Results\n" +
		"=======\n" +
		"\n" +
		"Intro text spanning two lines.\n" +
		"\n" +
		"Table 1. Scores\n" +
		"\n" +
		"| Name | Score |\n" +
		"| Ada  |    97 |\n" +
		"| Bob  |       |\n" +
		"\n" +
		"- one\n" +
		"\n" +
		"- two\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestMarkdown_OrderedAndNestedLists(t *testing.T) {
	t.Parallel()

	doc := "3. first\n" +
		"4. second\n" +
		"   - nested\n"

	rep := parseMarkdown(t, doc, source.FlavorGFM)
	assert.Equal(t, []report.Item{
		report.NewParagraph("3. first"),
		report.NewParagraph("4. second"),
		report.NewParagraph("- nested"),
	}, rep.Items)
}

func TestMarkdown_Blockquote(t *testing.T) {
	t.Parallel()

	rep := parseMarkdown(t, "> quoted\n> text\n", source.FlavorGFM)
	assert.Equal(t, []report.Item{report.NewParagraph("quoted text")}, rep.Items)
}

func TestMarkdown_MermaidFence(t *testing.T) {
	t.Parallel()

	rep := parseMarkdown(t, "```mermaid\ngraph TD\n  A --> B\n```\n", source.FlavorGFM)
	assert.Equal(t, []report.Item{&report.DrawingFigure{Content: "graph TD\n  A --> B"}}, rep.Items)
}

func TestMarkdown_CommonMarkHasNoTables(t *testing.T) {
	t.Parallel()

	doc := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	gfm := parseMarkdown(t, doc, source.FlavorGFM)
	require.Len(t, gfm.Items, 1)
	assert.IsType(t, &report.Table{}, gfm.Items[0])

	cm := parseMarkdown(t, doc, source.FlavorCommonMark)
	require.Len(t, cm.Items, 1)
	assert.IsType(t, &report.Paragraph{}, cm.Items[0])
}

func TestMarkdown_CaptionOnlyBeforeTable(t *testing.T) {
	t.Parallel()

	rep := parseMarkdown(t, "Table: not a caption\n\nplain\n", source.FlavorGFM)
	assert.Equal(t, []report.Item{
		report.NewParagraph("Table: not a caption"),
		report.NewParagraph("plain"),
	}, rep.Items)
}

func TestMarkdown_TaskList(t *testing.T) {
	t.Parallel()

	rep := parseMarkdown(t, "- [x] done\n- [ ] todo\n", source.FlavorGFM)
	assert.Equal(t, []report.Item{
		report.NewParagraph("- [x] done"),
		report.NewParagraph("- [ ] todo"),
	}, rep.Items)
}
