package report_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textreport/pkg/report"
)

// recorder logs every Writer call as a short string.
type recorder struct {
	calls  []string
	failOn string
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if r.failOn != "" && call == r.failOn {
		return errors.New("boom")
	}
	return nil
}

func (r *recorder) WriteReport(rep *report.Report, _ *report.Style) error {
	return rep.Write(r)
}

func (r *recorder) WriteHeader(h *report.Header) error {
	text := "<nil>"
	if h.Text != nil {
		text = *h.Text
	}
	return r.record(fmt.Sprintf("header:%d:%s", h.Level, text))
}

func (r *recorder) WriteParagraph(p *report.Paragraph) error {
	return r.record("paragraph:" + p.Text)
}

func (r *recorder) WriteTable(t *report.Table) error {
	return r.record("table:" + t.Caption)
}

func (r *recorder) WriteDrawing(d *report.DrawingFigure) error {
	return r.record("drawing:" + d.Caption)
}

func (r *recorder) WriteEquation(e *report.Equation) error {
	return r.record("equation:" + e.Caption)
}

func (r *recorder) WriteImage(i *report.Image) error {
	return r.record("image:" + i.Caption)
}

func (r *recorder) WritePlot(p *report.PlotFigure) error {
	return r.record("plot:" + p.Caption)
}

func sampleReport() *report.Report {
	details := report.NewSection("Details").Add(
		report.NewParagraph("nested"),
		report.NewSection("Deeper").Add(&report.Image{Caption: "img"}),
	)

	return report.NewReport("Sample").Add(
		report.NewHeader(1, "Title"),
		report.NewParagraph("intro"),
		report.NewTable("numbers", report.Column("n", report.AlignRight)),
		details,
		&report.DrawingFigure{Caption: "drawing"},
		&report.Equation{Caption: "eq"},
		&report.PlotFigure{Caption: "plot"},
	)
}

func TestReport_WriteVisitsInDocumentOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	require.NoError(t, sampleReport().Write(rec))

	assert.Equal(t, []string{
		"header:1:Title",
		"paragraph:intro",
		"table:numbers",
		"header:1:Details",
		"paragraph:nested",
		"header:2:Deeper",
		"image:img",
		"drawing:drawing",
		"equation:eq",
		"plot:plot",
	}, rec.calls)
}

func TestReport_WriteStopsAtFirstError(t *testing.T) {
	t.Parallel()

	rec := &recorder{failOn: "table:numbers"}
	err := sampleReport().Write(rec)

	require.Error(t, err)
	assert.Equal(t, []string{"header:1:Title", "paragraph:intro", "table:numbers"}, rec.calls)
}

func TestReport_WriteNil(t *testing.T) {
	t.Parallel()

	var rep *report.Report
	rec := &recorder{}
	require.NoError(t, rep.Write(rec))
	assert.Empty(t, rec.calls)
}

func TestReport_AddSkipsNil(t *testing.T) {
	t.Parallel()

	rep := report.NewReport("r").Add(nil, report.NewParagraph("x"), nil)
	assert.Len(t, rep.Items, 1)
}

func TestSection_UntitledHeaderHasNilText(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	require.NoError(t, report.NewSection("").Add(report.NewParagraph("p")).Render(rec))
	assert.Equal(t, []string{"header:1:<nil>", "paragraph:p"}, rec.calls)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	var depths []int
	err := report.Walk(sampleReport(), func(_ report.Item, depth int) error {
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)

	// header, paragraph, table, section(Details), paragraph, section(Deeper), image, drawing, equation, plot
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 2, 0, 0, 0}, depths)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	visited := 0
	err := report.Walk(sampleReport(), func(_ report.Item, _ int) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})

	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}

func TestCountItems(t *testing.T) {
	t.Parallel()

	rep := sampleReport()
	tbl := report.NewTable("t", report.Column("a", report.AlignLeft))
	require.NoError(t, tbl.AddRow("1"))
	require.NoError(t, tbl.AddRow("2"))
	rep.Add(tbl)

	stats := report.CountItems(rep)
	assert.Equal(t, report.Stats{
		Sections:   2,
		Headers:    1,
		Paragraphs: 2,
		Tables:     2,
		TableRows:  2,
		Figures:    4,
	}, stats)
}
