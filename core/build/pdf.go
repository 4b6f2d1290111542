// PDF deck builder. Renders one landscape page per slide using gofpdf:
// a title page, then per-slide title bars, bulleted body text, shaded
// code blocks, bordered tables, and a speaker-notes footer.
package build

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/deckpipe/core"
)

// PDFBuilder renders a Deck as a PDF slide deck. It implements both
// Renderer and SlideWriter; slide handles are 1-based page numbers.
type PDFBuilder struct {
	cfg    core.Config
	pdf    *gofpdf.Fpdf
	slides int
}

// NewPDFBuilder creates a PDFBuilder with the given fonts and limits.
func NewPDFBuilder(cfg core.Config) *PDFBuilder {
	return &PDFBuilder{cfg: cfg}
}

// Render converts the deck into PDF bytes.
func (b *PDFBuilder) Render(deck *core.Deck) ([]byte, error) {
	b.pdf = gofpdf.New("L", "mm", "A4", "")
	b.pdf.SetAutoPageBreak(true, 15)
	b.slides = 0

	WriteDeck(b, deck)

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (b *PDFBuilder) Extension() string {
	return ".pdf"
}

// NewTitleSlide opens the deck's opening page with centered heading and
// subheading.
func (b *PDFBuilder) NewTitleSlide(title, subtitle string) int {
	b.pdf.AddPage()
	b.slides++

	b.pdf.SetY(70)
	b.pdf.SetFont(b.font(core.StyleDefault), "B", 32)
	b.pdf.MultiCell(0, 14, title, "", "C", false)

	if subtitle != "" {
		b.pdf.Ln(4)
		b.pdf.SetFont(b.font(core.StyleDefault), "", 18)
		b.pdf.SetTextColor(100, 100, 100)
		b.pdf.MultiCell(0, 9, subtitle, "", "C", false)
		b.pdf.SetTextColor(0, 0, 0)
	}
	return b.slides
}

// NewSlide opens a content page with a title bar.
func (b *PDFBuilder) NewSlide(title string) int {
	b.pdf.AddPage()
	b.slides++

	b.pdf.SetFont(b.font(core.StyleDefault), "B", 24)
	b.pdf.MultiCell(0, 11, title, "", "L", false)
	b.pdf.Ln(5)
	return b.slides
}

// AppendParagraph writes one body line. Default-style text is bulleted and
// indented by level, matching presentation body placeholders; code style
// renders monospace on a light fill with no bullet.
func (b *PDFBuilder) AppendParagraph(_ int, text string, level int, style core.StyleHint) {
	left, _, _, _ := b.pdf.GetMargins()
	indent := float64(level) * 6

	if style == core.StyleCode {
		b.pdf.SetFont(b.font(style), "", 10)
		b.pdf.SetFillColor(245, 245, 245)
		b.pdf.SetLeftMargin(left + indent)
		b.pdf.MultiCell(0, 4.5, text, "", "L", true)
		b.pdf.SetLeftMargin(left)
		b.pdf.Ln(2)
		return
	}

	b.pdf.SetFont(b.font(style), "", 14)
	b.pdf.SetLeftMargin(left + indent)
	b.pdf.MultiCell(0, 7, "• "+text, "", "L", false)
	b.pdf.SetLeftMargin(left)
}

// AppendTable draws a bordered grid sized to the page width. Header rows
// get bold white text on a colored fill.
func (b *PDFBuilder) AppendTable(_ int, rows [][]string, hasHeader bool) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	pageW, _ := b.pdf.GetPageSize()
	left, _, right, _ := b.pdf.GetMargins()
	colWidth := (pageW - left - right) / float64(len(rows[0]))

	b.pdf.Ln(3)
	for i, row := range rows {
		header := hasHeader && i == 0
		if header {
			b.pdf.SetFont(b.font(core.StyleDefault), "B", 11)
			b.pdf.SetFillColor(68, 114, 196)
			b.pdf.SetTextColor(255, 255, 255)
		} else {
			b.pdf.SetFont(b.font(core.StyleDefault), "", 11)
			b.pdf.SetTextColor(0, 0, 0)
		}
		for _, cell := range row {
			b.pdf.CellFormat(colWidth, 8, cell, "1", 0, "L", header, 0, "")
		}
		b.pdf.Ln(-1)
	}
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.Ln(3)
}

// SetNotes renders the speaker notes as a muted footer on the slide's page.
func (b *PDFBuilder) SetNotes(_ int, text string) {
	b.pdf.SetY(-32)
	b.pdf.SetFont(b.font(core.StyleDefault), "I", 9)
	b.pdf.SetTextColor(120, 120, 120)
	b.pdf.MultiCell(0, 4.5, "Speaker notes: "+text, "", "L", false)
	b.pdf.SetTextColor(0, 0, 0)
}

func (b *PDFBuilder) font(style core.StyleHint) string {
	if style == core.StyleCode {
		if b.cfg.Fonts.Code != "" {
			return b.cfg.Fonts.Code
		}
		return "Courier"
	}
	if b.cfg.Fonts.Default != "" {
		return b.cfg.Fonts.Default
	}
	return "Helvetica"
}
