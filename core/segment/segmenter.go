// Package segment implements the Segmenter interface: the single-pass walk
// that maps an ordered HTML node sequence onto a slide deck.
//
// The walk is stateful: headings open slides, consecutive editor code-line
// divs accumulate into one code block, "speaker notes:" markers are
// intercepted and detached, and a processed set guards against emitting a
// nested node twice when the flat traversal re-surfaces descendants.
package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// interestingSelector is the fixed tag set the pass walks, in document order.
var interestingSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol, table, pre, code, blockquote, img, span, div"

var (
	slidePrefixRe = regexp.MustCompile(`(?i)^slide\s*\d+\s*:\s*`)
	notesMarkerRe = regexp.MustCompile(`(?i)speaker notes\s*:\s*`)
	subtitleRe    = regexp.MustCompile(`(?i)^subtitle\s*:\s*`)
)

const (
	maxTitleLength = 100
	maxListLevel   = 4
)

// Segmenter converts extracted canvas fragments into Decks. It holds only
// configuration; all per-run state lives in a pass, so one Segmenter can
// serve many independent conversions.
type Segmenter struct {
	cfg core.Config
	log *log.Logger
}

// New creates a Segmenter.
func New(cfg core.Config, logger *log.Logger) *Segmenter {
	if logger == nil {
		logger = log.Default()
	}
	return &Segmenter{cfg: cfg, log: logger}
}

// pass is the state of one segmentation run: the two-state machine of
// (current slide open?, code buffer non-empty?) plus the processed set and
// the note ledger. A pass is never reused.
type pass struct {
	cfg        core.Config
	log        *log.Logger
	deck       *core.Deck
	current    *core.Slide
	codeBuffer []string
	processed  map[*html.Node]bool
	notes      *noteLedger
}

// Segment walks the fragment and produces the Deck. Per-node failures are
// logged and skipped; the only hard error is an unparseable fragment.
func (s *Segmenter) Segment(fragment string) (*core.Deck, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	p := &pass{
		cfg:       s.cfg,
		log:       s.log,
		deck:      &core.Deck{SourceHTML: fragment},
		processed: make(map[*html.Node]bool),
		notes:     newNoteLedger(),
	}

	root := fragmentRoot(doc)
	p.extractTitle(root)
	p.run(root)

	// A code run that ends at the document boundary still flushes.
	p.flushCode()

	if len(p.deck.Slides) == 0 {
		p.deck.Slides = append(p.deck.Slides, &core.Slide{
			Title: "No Content Found",
			Elements: []core.Element{{
				Type:  core.ElementParagraph,
				Text:  "The canvas appears to be empty or could not be processed.",
				Style: core.StyleDefault,
			}},
		})
	}

	p.deck.Notes = p.notes.All()
	return p.deck, nil
}

// fragmentRoot returns the node whose descendants the pass walks. The
// extracted fragment usually arrives wrapped in a single container element;
// walking its descendants keeps the container itself out of the node
// sequence, mirroring how the elements were captured.
func fragmentRoot(doc *goquery.Document) *goquery.Selection {
	body := doc.Find("body").First()
	children := body.Children()
	if children.Length() == 1 {
		switch goquery.NodeName(children.First()) {
		case "div", "main", "article", "section":
			return children.First()
		}
	}
	return body
}

func (p *pass) run(root *goquery.Selection) {
	root.Find(interestingSelector).Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		if p.processed[node] {
			return
		}
		if err := p.handleNode(node, sel); err != nil {
			p.log.Warn("skipping element", "tag", goquery.NodeName(sel), "err", err)
			p.processed[node] = true
		}
	})
}

func (p *pass) handleNode(node *html.Node, sel *goquery.Selection) error {
	text := nodeText(sel)
	tag := goquery.NodeName(sel)

	// Inline speaker-note interception. The content before the marker is
	// dropped, matching the captured exports this was built against.
	if notesMarkerRe.MatchString(text) {
		_, notePart := splitNotes(text)
		if p.current != nil {
			p.attachNotes(notePart)
		}
		p.processed[node] = true
		return nil
	}

	// Editor exports emit one div per code line; accumulate runs of them.
	if tag == "div" && sel.HasClass("cm-line") {
		if text != "" {
			p.codeBuffer = append(p.codeBuffer, text)
		}
		p.processed[node] = true
		return nil
	}

	// A buffered code run ends at the first non code-line node. Flush
	// before dispatching the node itself so ordering is preserved.
	p.flushCode()

	// Containers already capture these; visiting them again would
	// duplicate their text.
	switch {
	case (tag == "p" || tag == "span") && sel.ParentsFiltered("ul, ol, li").Length() > 0:
		p.processed[node] = true
		return nil
	case tag == "span" && sel.ParentsFiltered("p").Length() > 0:
		p.processed[node] = true
		return nil
	case tag == "code" && sel.ParentsFiltered("pre").Length() > 0:
		p.processed[node] = true
		return nil
	}

	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		p.openSlide(text)

	case "ul", "ol":
		// Nested lists are reached through their top-level ancestor.
		if sel.ParentsFiltered("ul, ol").Length() == 0 {
			slide := p.ensureSlide("List")
			p.flattenList(slide, sel, 0)
			slide.ShrinkToFit = true
		}
		p.processed[node] = true
		return nil

	case "table":
		slide := p.ensureSlide("Content")
		if table, ok := convertTable(sel); ok {
			slide.Tables = append(slide.Tables, table)
		}
		p.processed[node] = true
		return nil

	case "pre", "code":
		slide := p.ensureSlide("Code")
		p.appendCode(slide, sel.Text())
		return nil
	}

	p.processed[node] = true
	return nil
}

// openSlide starts a new slide titled by the heading text, stripped of a
// leading "Slide N:" marker and truncated for the title placeholder.
func (p *pass) openSlide(title string) *core.Slide {
	title = slidePrefixRe.ReplaceAllString(title, "")
	title = truncateTitle(title, maxTitleLength)
	slide := &core.Slide{Title: title}
	p.deck.Slides = append(p.deck.Slides, slide)
	p.current = slide
	return slide
}

// ensureSlide returns the open slide, opening one with the given default
// title when content arrives before any heading.
func (p *pass) ensureSlide(defaultTitle string) *core.Slide {
	if p.current == nil {
		return p.openSlide(defaultTitle)
	}
	return p.current
}

// flushCode emits the buffered code lines as one newline-joined code block.
func (p *pass) flushCode() {
	if len(p.codeBuffer) == 0 {
		return
	}
	slide := p.ensureSlide("Content")
	p.appendCode(slide, strings.Join(p.codeBuffer, "\n"))
	p.codeBuffer = p.codeBuffer[:0]
}

func (p *pass) appendCode(slide *core.Slide, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	slide.Elements = append(slide.Elements, core.Element{
		Type: core.ElementCode,
		Text: clip(text, p.cfg.MaxSlideContentLength),
	})
}

// attachNotes records a note against the currently open slide. The slide's
// Notes text is only set when the (index, text) key is new to the ledger.
func (p *pass) attachNotes(text string) {
	index := len(p.deck.Slides) + 1 // the title slide is index 1
	if p.notes.Add(index, text) {
		p.current.Notes = strings.TrimSpace(text)
	}
}

// nodeText is the whitespace-collapsed visible text of a selection.
func nodeText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// splitNotes splits text at the first "speaker notes:" marker.
func splitNotes(text string) (content, note string) {
	loc := notesMarkerRe.FindStringIndex(text)
	if loc == nil {
		return text, ""
	}
	return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[1]:])
}

// truncateTitle caps a title and appends an ellipsis marker when cut.
func truncateTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// clip caps text at max runes with no marker.
func clip(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max])
}
