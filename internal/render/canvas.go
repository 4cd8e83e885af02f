package render

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B int
}

// Anchor selects the horizontal reference point of drawn text.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

// Style holds the text formatting for a single draw call.
type Style struct {
	FontStyle string // "" regular, "B" bold, "I" italic
	Size      float64
	Color     RGB
	Anchor    Anchor
}

// Canvas exposes absolute-position drawing over a fixed-size page.
// Coordinates are millimetres with the origin at the page's top-left
// corner. Text is never wrapped; callers pre-truncate to fit. NewPage
// commits the current page; the background must be redrawn after it.
type Canvas interface {
	PageSize() (w, h float64)
	FillRect(x, y, w, h float64, fill RGB)
	BorderRect(x, y, w, h float64, fill, border RGB, lineWidth float64)
	Line(x1, y1, x2, y2 float64, color RGB, width float64)
	Text(x, y float64, s string, style Style)
	NewPage()
}

const fontFamily = "Helvetica"

// buildDate pins the document metadata clock so identical input
// produces byte-identical output.
var buildDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// pdfCanvas implements Canvas over an fpdf A4 portrait document.
type pdfCanvas struct {
	doc *fpdf.Fpdf
	tr  func(string) string // UTF-8 to the core-font codepage
}

func newPDFCanvas() *pdfCanvas {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	// Pinned dates and sorted catalog writes keep the output
	// byte-identical for identical input; fpdf otherwise emits font
	// dictionaries in Go map order.
	doc.SetCatalogSort(true)
	doc.SetCreationDate(buildDate)
	doc.SetModificationDate(buildDate)
	doc.AddPage()
	return &pdfCanvas{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (c *pdfCanvas) PageSize() (float64, float64) {
	return c.doc.GetPageSize()
}

func (c *pdfCanvas) FillRect(x, y, w, h float64, fill RGB) {
	c.doc.SetFillColor(fill.R, fill.G, fill.B)
	c.doc.Rect(x, y, w, h, "F")
}

func (c *pdfCanvas) BorderRect(x, y, w, h float64, fill, border RGB, lineWidth float64) {
	c.doc.SetFillColor(fill.R, fill.G, fill.B)
	c.doc.SetDrawColor(border.R, border.G, border.B)
	c.doc.SetLineWidth(lineWidth)
	c.doc.Rect(x, y, w, h, "FD")
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64, color RGB, width float64) {
	c.doc.SetDrawColor(color.R, color.G, color.B)
	c.doc.SetLineWidth(width)
	c.doc.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) Text(x, y float64, s string, style Style) {
	c.doc.SetFont(fontFamily, style.FontStyle, style.Size)
	c.doc.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
	txt := c.tr(s)
	switch style.Anchor {
	case AnchorCenter:
		x -= c.doc.GetStringWidth(txt) / 2
	case AnchorEnd:
		x -= c.doc.GetStringWidth(txt)
	}
	c.doc.Text(x, y, txt)
}

func (c *pdfCanvas) NewPage() {
	c.doc.AddPage()
}

// Bytes finalizes the document and returns the serialized PDF.
func (c *pdfCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
