package segment

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableSelection(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find("table")
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestConvertTable_EmptyTableEmitsNothing(t *testing.T) {
	_, ok := convertTable(tableSelection(t, "<table></table>"))
	assert.False(t, ok)

	_, ok = convertTable(tableSelection(t, "<table><tr></tr></table>"))
	assert.False(t, ok, "rows without cells leave nothing to convert")
}

func TestConvertTable_CellTextTruncated(t *testing.T) {
	long := strings.Repeat("y", 300)
	table, ok := convertTable(tableSelection(t, "<table><tr><td>"+long+"</td></tr></table>"))

	require.True(t, ok)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, strings.Repeat("y", maxCellLength), table.Rows[0][0])
}

func TestConvertTable_HeaderOnlyOnFirstRow(t *testing.T) {
	table, ok := convertTable(tableSelection(t, `<table>
		<tr><td>plain</td></tr>
		<tr><th>late header</th></tr>
	</table>`))

	require.True(t, ok)
	assert.False(t, table.HasHeaderRow, "a header cell past row 0 does not style the grid")
}
