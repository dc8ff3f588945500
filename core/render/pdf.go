// Package render — PDF flyer renderer.
// Produces a printable price list of the current offers using gofpdf:
// one block per offer with title, price row, validity and bullets.
// Images are intentionally not embedded; the flyer is a text artifact.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/rkobusch-privat/unger-warburg-website/core"
	"github.com/rkobusch-privat/unger-warburg-website/core/config"
	"github.com/rkobusch-privat/unger-warburg-website/core/price"
)

// PDFRenderer renders the offers as a printable flyer.
type PDFRenderer struct {
	site config.Site
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(site config.Site) *PDFRenderer {
	return &PDFRenderer{site: site}
}

// Render builds the flyer PDF.
func (r *PDFRenderer) Render(page core.Page) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; route all text through the translator so
	// umlauts survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(r.site.Title), "", "L", false)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Stand: "+page.BuiltAt), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	if len(page.Offers) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr("Aktuell keine Angebote."), "", "L", false)
	}

	for _, o := range page.Offers {
		renderFlyerEntry(pdf, tr, o)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating flyer PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for the flyer.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderFlyerEntry renders one offer block.
func renderFlyerEntry(pdf *gofpdf.Fpdf, tr func(string) string, o core.Offer) {
	title := o.Title
	if o.Featured {
		// cp1252 has no star glyph, so the flyer marks featured
		// offers with a plain asterisk.
		title = "* " + title
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 6, tr(title), "", "L", false)

	if o.Category != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(o.Category), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	priceLine := price.Format(o.Price)
	if uvp := price.Format(o.UVP); uvp != "" {
		priceLine += "  (UVP " + uvp
		if percent, ok := price.DiscountPercent(price.Format(o.Price), uvp); ok {
			priceLine += ", -" + strconv.Itoa(percent) + "%"
		}
		priceLine += ")"
	}
	if priceLine != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(priceLine), "", "L", false)
	}

	if o.ValidTo != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr("Gültig bis "+price.FormatDateDE(o.ValidTo)), "", "L", false)
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, b := range o.Bullets {
		pdf.MultiCell(0, 5, tr("  •  "+b), "", "L", false)
	}

	pdf.Ln(5)
}
