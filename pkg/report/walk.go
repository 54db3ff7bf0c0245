package report

// WalkFunc is called for every item visited by Walk, with the section depth
// of the item (0 for top-level items). Return a non-nil error to stop.
type WalkFunc func(item Item, depth int) error

// Walk performs a pre-order traversal of the report's items, descending into
// sections. If fn returns an error the walk stops and returns it.
func Walk(r *Report, fn WalkFunc) error {
	if r == nil {
		return nil
	}
	return walkItems(r.Items, 0, fn)
}

func walkItems(items []Item, depth int, fn WalkFunc) error {
	for _, item := range items {
		if err := fn(item, depth); err != nil {
			return err
		}
		if section, ok := item.(*Section); ok {
			if err := walkItems(section.Items, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats counts the nodes of a report by kind.
type Stats struct {
	Sections   int
	Headers    int
	Paragraphs int
	Tables     int
	TableRows  int
	Figures    int
}

// CountItems walks the report and tallies its nodes.
func CountItems(r *Report) Stats {
	var stats Stats
	_ = Walk(r, func(item Item, _ int) error {
		switch n := item.(type) {
		case *Section:
			stats.Sections++
		case *Header:
			stats.Headers++
		case *Paragraph:
			stats.Paragraphs++
		case *Table:
			stats.Tables++
			stats.TableRows += len(n.Rows)
		case *DrawingFigure, *Equation, *Image, *PlotFigure:
			stats.Figures++
		}
		return nil
	})
	return stats
}

// Validate checks every table in the report. It returns the first violation.
func Validate(r *Report) error {
	return Walk(r, func(item Item, _ int) error {
		if t, ok := item.(*Table); ok {
			return t.Validate()
		}
		return nil
	})
}
