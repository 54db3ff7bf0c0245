package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/textreport/pkg/report"
)

// yamlDocument is the YAML form of a report:
//
//	title: Quarterly results
//	items:
//	  - header: Overview            # level 1; or {text: ..., level: 2}
//	  - paragraph: Some text.
//	  - table:
//	      caption: Scores
//	      columns: [left, {header: Score, alignment: right}]
//	      rows:
//	        - [Ada, 97]
//	        - [~, 12]              # null renders as a blank cell
//	  - section: {title: Details, items: [...]}
//	  - image: {source: chart.png, caption: Chart}
type yamlDocument struct {
	Title string     `yaml:"title"`
	Items []yamlItem `yaml:"items"`
}

type yamlItem struct {
	Header    *yamlHeader           `yaml:"header"`
	Paragraph *string               `yaml:"paragraph"`
	Table     *yamlTable            `yaml:"table"`
	Section   *yamlSection          `yaml:"section"`
	Drawing   *report.DrawingFigure `yaml:"drawing"`
	Equation  *report.Equation      `yaml:"equation"`
	Image     *report.Image         `yaml:"image"`
	Plot      *report.PlotFigure    `yaml:"plot"`
}

type yamlHeader struct {
	Text  *string `yaml:"text"`
	Level int     `yaml:"level"`
}

// UnmarshalYAML accepts a bare string as a level 1 header.
func (h *yamlHeader) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		h.Text = report.Text(node.Value)
		h.Level = 1
		return nil
	}

	type plain yamlHeader
	return node.Decode((*plain)(h))
}

type yamlColumn struct {
	Header    string           `yaml:"header"`
	Alignment report.Alignment `yaml:"alignment"`
}

// UnmarshalYAML accepts a bare alignment name as a column.
func (c *yamlColumn) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return c.Alignment.UnmarshalText([]byte(node.Value))
	}

	type plain yamlColumn
	return node.Decode((*plain)(c))
}

type yamlTable struct {
	Caption string       `yaml:"caption"`
	Columns []yamlColumn `yaml:"columns"`
	Rows    [][]*string  `yaml:"rows"`
}

type yamlSection struct {
	Title string     `yaml:"title"`
	Items []yamlItem `yaml:"items"`
}

func parseYAML(data []byte) (*report.Report, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrInvalidDocument, err)
	}

	items, err := convertItems(doc.Items, "items")
	if err != nil {
		return nil, err
	}

	return report.NewReport(doc.Title).Add(items...), nil
}

func convertItems(in []yamlItem, path string) ([]report.Item, error) {
	items := make([]report.Item, 0, len(in))
	for i, yi := range in {
		item, err := yi.convert(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (yi yamlItem) convert(path string) (report.Item, error) {
	var items []report.Item

	if yi.Header != nil {
		level := yi.Header.Level
		if level == 0 {
			level = 1
		}
		if level < 0 {
			return nil, fmt.Errorf("%w: %s: header level %d", ErrInvalidDocument, path, level)
		}
		items = append(items, &report.Header{Text: yi.Header.Text, Level: level})
	}
	if yi.Paragraph != nil {
		items = append(items, report.NewParagraph(*yi.Paragraph))
	}
	if yi.Table != nil {
		items = append(items, yi.Table.convert())
	}
	if yi.Section != nil {
		children, err := convertItems(yi.Section.Items, path+".section.items")
		if err != nil {
			return nil, err
		}
		items = append(items, report.NewSection(yi.Section.Title).Add(children...))
	}
	if yi.Drawing != nil {
		items = append(items, yi.Drawing)
	}
	if yi.Equation != nil {
		items = append(items, yi.Equation)
	}
	if yi.Image != nil {
		items = append(items, yi.Image)
	}
	if yi.Plot != nil {
		items = append(items, yi.Plot)
	}

	if len(items) != 1 {
		return nil, fmt.Errorf("%w: %s: expected exactly one node kind, got %d", ErrInvalidDocument, path, len(items))
	}
	return items[0], nil
}

func (yt *yamlTable) convert() *report.Table {
	columns := make([]report.TableColumn, len(yt.Columns))
	for j, col := range yt.Columns {
		alignment := col.Alignment
		if alignment == 0 {
			alignment = report.AlignLeft
		}
		columns[j] = report.Column(col.Header, alignment)
	}

	tbl := report.NewTable(yt.Caption, columns...)
	for _, values := range yt.Rows {
		row := report.TableRow{Cells: make([]report.TableCell, len(values))}
		for j, value := range values {
			row.Cells[j] = report.TableCell{Content: value}
		}
		// Shape is checked by report.Validate once the whole document is built.
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}
