package segment

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// maxCellLength caps cell text so one oversized cell cannot blow up a slide.
const maxCellLength = 200

// convertTable builds a rectangular grid from a table node. Rows without
// cells are ignored entirely; shorter rows are padded with empty strings to
// the widest row's cell count. Returns false when nothing usable remains.
func convertTable(sel *goquery.Selection) (core.Table, bool) {
	var rows []*goquery.Selection
	maxCols := 0

	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		n := tr.Find("td, th").Length()
		if n == 0 {
			return
		}
		rows = append(rows, tr)
		if n > maxCols {
			maxCols = n
		}
	})

	if maxCols == 0 {
		return core.Table{}, false
	}

	table := core.Table{Rows: make([][]string, 0, len(rows))}
	for i, tr := range rows {
		cells := tr.Find("td, th")
		row := make([]string, maxCols)
		for j := 0; j < maxCols && j < cells.Length(); j++ {
			row[j] = clip(nodeText(cells.Eq(j)), maxCellLength)
		}
		if i == 0 {
			table.HasHeaderRow = tr.Find("th").Length() > 0
		}
		table.Rows = append(table.Rows, row)
	}
	return table, true
}
