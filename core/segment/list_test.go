package segment

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/deckpipe/core"
)

func TestFlattenList_ReusesEmptyPlaceholderParagraph(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<ul><li>alpha</li><li>beta</li></ul>"))
	require.NoError(t, err)

	slide := &core.Slide{Elements: []core.Element{{Type: core.ElementParagraph, Text: ""}}}
	p := &pass{deck: &core.Deck{}}
	p.flattenList(slide, doc.Find("ul"), 0)

	require.Len(t, slide.Elements, 2, "the placeholder is overwritten, not appended after")
	assert.Equal(t, core.ElementListItem, slide.Elements[0].Type)
	assert.Equal(t, "alpha", slide.Elements[0].Text)
	assert.Equal(t, "beta", slide.Elements[1].Text)
}

func TestFlattenList_SkipsEmptyItems(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<ul><li>  </li><li>kept</li></ul>"))
	require.NoError(t, err)

	slide := &core.Slide{}
	p := &pass{deck: &core.Deck{}}
	p.flattenList(slide, doc.Find("ul"), 0)

	require.Len(t, slide.Elements, 1)
	assert.Equal(t, "kept", slide.Elements[0].Text)
}
