package obstable

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// undefinedCell is the placeholder rendered for cells not yet recorded.
const undefinedCell = "·"

// Render returns a human-readable dump of the table: a header row of
// suffixes, one block of short-prefix rows, a separator, one block of
// long-prefix rows. format converts cell values to text; nil falls back
// to fmt.Sprint. Undefined cells render as "·".
func (t *Table[S, D]) Render(format func(D) string) string {
	if format == nil {
		format = func(d D) string { return fmt.Sprint(d) }
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	// suffix labels are case-sensitive words, keep them verbatim
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(t.suffixes)+1)
	header = append(header, "")
	for _, e := range t.suffixes {
		header = append(header, e.word.String())
	}
	tw.AppendHeader(header)

	appendBlock := func(entries []entry[S]) {
		for _, p := range entries {
			row := make(table.Row, 0, len(t.suffixes)+1)
			row = append(row, p.word.String())
			stored := t.cells[p.key]
			for _, e := range t.suffixes {
				if d, ok := stored[e.key]; ok {
					row = append(row, format(d))
				} else {
					row = append(row, undefinedCell)
				}
			}
			tw.AppendRow(row)
		}
	}

	appendBlock(t.short)
	tw.AppendSeparator()
	appendBlock(t.long)

	return tw.Render()
}
