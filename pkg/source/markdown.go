package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/textreport/pkg/report"
)

// tableCaptionPrefix marks a paragraph directly before a table as its caption.
const tableCaptionPrefix = "Table:"

// Fence languages that map onto figure nodes.
var (
	equationLanguages = map[string]bool{"math": true, "latex": true, "tex": true}
	drawingLanguages  = map[string]bool{"mermaid": true, "dot": true, "graphviz": true}
)

func parseMarkdown(ctx context.Context, data []byte, flavor string) (*report.Report, error) {
	md := newGoldmarkInstance(flavorOrDefault(flavor))
	doc := md.Parser().Parse(text.NewReader(data), parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	b := &markdownBuilder{source: data}
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		b.items = append(b.items, b.block(child)...)
	}

	return report.NewReport(b.title).Add(b.items...), nil
}

// flavorOrDefault returns the flavor if valid. Empty selects GFM and
// anything else falls back to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case "":
		return FlavorGFM
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
	}

	return goldmark.New(opts...)
}

// markdownBuilder maps goldmark block nodes onto report items.
type markdownBuilder struct {
	source []byte
	title  string
	items  []report.Item

	// caption is set by a "Table:" paragraph and consumed by the next table.
	caption string
}

func (b *markdownBuilder) block(node ast.Node) []report.Item {
	switch n := node.(type) {
	case *ast.Heading:
		content := b.inlineText(n)
		if b.title == "" && n.Level == 1 {
			b.title = content
		}
		return []report.Item{report.NewHeader(n.Level, content)}

	case *ast.Paragraph:
		return b.paragraph(n)

	case *ast.TextBlock:
		return []report.Item{report.NewParagraph(b.inlineText(n))}

	case *ast.List:
		return b.list(n)

	case *ast.Blockquote:
		var items []report.Item
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			items = append(items, b.block(child)...)
		}
		return items

	case *ast.FencedCodeBlock:
		return b.fence(n)

	case *east.Table:
		caption := b.caption
		b.caption = ""
		return []report.Item{b.table(n, caption)}

	default:
		// Thematic breaks, HTML, and indented code have no report form.
		return nil
	}
}

func (b *markdownBuilder) paragraph(n *ast.Paragraph) []report.Item {
	if img, ok := n.FirstChild().(*ast.Image); ok && n.FirstChild() == n.LastChild() {
		caption := b.inlineText(img)
		if caption == "" {
			caption = string(img.Title)
		}
		return []report.Item{&report.Image{Caption: caption, Source: string(img.Destination)}}
	}

	content := b.inlineText(n)
	if rest, ok := strings.CutPrefix(content, tableCaptionPrefix); ok {
		if _, next := n.NextSibling().(*east.Table); next {
			b.caption = strings.TrimSpace(rest)
			return nil
		}
	}

	return []report.Item{report.NewParagraph(content)}
}

// list flattens a list into paragraphs prefixed with their markers.
func (b *markdownBuilder) list(n *ast.List) []report.Item {
	var items []report.Item

	index := n.Start
	for li := n.FirstChild(); li != nil; li = li.NextSibling() {
		marker := "-"
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d.", index)
			index++
		}

		first := true
		for child := li.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				content := b.inlineText(c)
				if first {
					content = marker + " " + content
					first = false
				}
				items = append(items, report.NewParagraph(content))
			default:
				items = append(items, b.block(c)...)
			}
		}
		if first {
			items = append(items, report.NewParagraph(marker))
		}
	}

	return items
}

func (b *markdownBuilder) fence(n *ast.FencedCodeBlock) []report.Item {
	language := strings.ToLower(string(n.Language(b.source)))

	var sb strings.Builder
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(seg.Value(b.source))
	}
	content := strings.TrimRight(sb.String(), "\n")

	switch {
	case equationLanguages[language]:
		return []report.Item{&report.Equation{Content: content}}
	case drawingLanguages[language]:
		return []report.Item{&report.DrawingFigure{Content: content}}
	default:
		return nil
	}
}

// table converts a GFM table. The header row becomes the first row, and
// short or long rows are padded or truncated to the column count.
func (b *markdownBuilder) table(n *east.Table, caption string) *report.Table {
	columns := make([]report.TableColumn, len(n.Alignments))
	for j, alignment := range n.Alignments {
		columns[j].Alignment = mapAlignment(alignment)
	}

	tbl := report.NewTable(caption, columns...)
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		_, isHeader := row.(*east.TableHeader)

		cells := make([]report.TableCell, len(columns))
		j := 0
		for cell := row.FirstChild(); cell != nil && j < len(cells); cell = cell.NextSibling() {
			content := b.inlineText(cell)
			if content != "" {
				cells[j].Content = report.Text(content)
			}
			if isHeader {
				tbl.Columns[j].Header = content
			}
			j++
		}
		tbl.Rows = append(tbl.Rows, report.TableRow{Cells: cells})
	}

	return tbl
}

func mapAlignment(a east.Alignment) report.Alignment {
	switch a {
	case east.AlignRight:
		return report.AlignRight
	case east.AlignCenter:
		return report.AlignCenter
	case east.AlignLeft, east.AlignNone:
		return report.AlignLeft
	default:
		return report.AlignLeft
	}
}

// inlineText flattens the inline content of n into plain text with
// whitespace runs collapsed.
func (b *markdownBuilder) inlineText(n ast.Node) string {
	var sb strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := node.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(b.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.URL(b.source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *east.TaskCheckBox:
			if t.IsChecked {
				sb.WriteString("[x] ")
			} else {
				sb.WriteString("[ ] ")
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(sb.String()), " ")
}
