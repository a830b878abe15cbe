// Package renderer turns an InvoiceDocument into a paginated PDF byte
// stream. Rendering is pure: identical documents produce identical layout,
// with the generated-at footer timestamp as the only varying element.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"encore.app/invoicing/config"
	"encore.app/invoicing/model"
)

const (
	pageMarginLeft  = 15.0
	pageMarginTop   = 15.0
	pageMarginRight = 15.0
	contentWidth    = 180.0 // A4 width minus side margins
	lineHeight      = 5.0

	colDescription = 80.0
	colHours       = 25.0
	colRate        = 35.0
	colAmount      = 40.0
)

type Renderer interface {
	Render(doc *model.InvoiceDocument) ([]byte, error)
}

type renderer struct {
	amounts *amountFormatter
	now     func() time.Time
}

func New(cfg config.Config) Renderer {
	return &renderer{
		amounts: newAmountFormatter(cfg.Locale),
		now:     time.Now,
	}
}

// Render lays the document out in a strict top-to-bottom chain: every
// section starts at the measured end of the previous one, so wrapped text
// in one section pushes everything below it down.
func (r *renderer) Render(doc *model.InvoiceDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginLeft, pageMarginTop, pageMarginRight)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.renderHeader(pdf, tr, doc)
	r.renderParties(pdf, tr, doc)
	r.renderPeriod(pdf, tr, doc)
	r.renderLineItems(pdf, tr, doc)
	r.renderNotes(pdf, tr, doc)
	r.renderBank(pdf, tr, doc)
	r.renderFooter(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", doc.Number, err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc *model.InvoiceDocument) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(contentWidth/2, 10, "INVOICE", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth/2, 10, tr(doc.Number), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(contentWidth/2, lineHeight, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, lineHeight, tr(fmt.Sprintf("Issue date: %s", doc.IssueDate.Format("January 2, 2006"))), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentWidth/2, lineHeight, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, lineHeight, tr(fmt.Sprintf("Due date: %s", doc.DueDate.Format("January 2, 2006"))), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

// renderParties draws the payee/payer blocks side by side. The section below
// starts after the taller of the two columns.
func (r *renderer) renderParties(pdf *gofpdf.Fpdf, tr func(string) string, doc *model.InvoiceDocument) {
	colWidth := contentWidth/2 - 5
	top := pdf.GetY()

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidth, lineHeight, "FROM", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(colWidth, lineHeight, tr(fmt.Sprintf("%s\n%s\n%s", doc.Payee.Name, doc.Payee.Address, doc.Payee.Email)), "", "L", false)
	leftEnd := pdf.GetY()

	pdf.SetXY(pageMarginLeft+contentWidth/2+5, top)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidth, lineHeight, "BILL TO", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(pageMarginLeft + contentWidth/2 + 5)
	pdf.MultiCell(colWidth, lineHeight, tr(fmt.Sprintf("%s\n%s\n%s", doc.Payer.Name, doc.Payer.Address, doc.Payer.Email)), "", "L", false)
	rightEnd := pdf.GetY()

	if leftEnd > rightEnd {
		pdf.SetY(leftEnd)
	} else {
		pdf.SetY(rightEnd)
	}
	pdf.Ln(6)
}

func (r *renderer) renderPeriod(pdf *gofpdf.Fpdf, tr func(string) string, doc *model.InvoiceDocument) {
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(contentWidth, lineHeight+1, tr(fmt.Sprintf("Billing period: %s – %s",
		doc.PeriodStart.Format("Jan 2, 2006"), doc.PeriodEnd.Format("Jan 2, 2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func (r *renderer) renderLineItems(pdf *gofpdf.Fpdf, tr func(string) string, doc *model.InvoiceDocument) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 224, 230)
	pdf.CellFormat(colDescription, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colHours, 7, "Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colRate, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(244, 246, 248)
	for i, item := range doc.LineItems {
		fill := i%2 == 1

		// Descriptions reflow to multi-line blocks; the rest of the row
		// stretches to the measured height.
		rowTop := pdf.GetY()
		pdf.MultiCell(colDescription, 6, tr(item.Description), "1", "L", fill)
		rowHeight := pdf.GetY() - rowTop

		pdf.SetXY(pageMarginLeft+colDescription, rowTop)
		pdf.CellFormat(colHours, rowHeight, trimFloat(item.Hours), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colRate, rowHeight, tr(r.amounts.Format(item.RateCents, doc.Currency)), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colAmount, rowHeight, tr(r.amounts.Format(item.AmountCents, doc.Currency)), "1", 1, "R", fill, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colDescription+colHours+colRate, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 8, tr(r.amounts.Format(doc.TotalCents, doc.Currency)), "1", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func (r *renderer) renderNotes(pdf *gofpdf.Fpdf, tr func(string) string, doc *model.InvoiceDocument) {
	if doc.Notes == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth, lineHeight, "Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentWidth, lineHeight, tr(doc.Notes), "", "L", false)
	pdf.Ln(4)
}

func (r *renderer) renderBank(pdf *gofpdf.Fpdf, tr func(string) string, doc *model.InvoiceDocument) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth, lineHeight, "Payment details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if doc.Bank == nil {
		// The section stays visible even without details.
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentWidth, lineHeight, "Bank details not provided.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	lines := fmt.Sprintf("Bank: %s\nAccount name: %s\nAccount number: %s\nRouting number: %s",
		doc.Bank.BankName,
		doc.Bank.AccountName,
		maskAccountNumber(doc.Bank.AccountNumber),
		doc.Bank.RoutingNumber)
	pdf.MultiCell(contentWidth, lineHeight, tr(lines), "", "L", false)
	pdf.Ln(4)
}

func (r *renderer) renderFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(contentWidth, lineHeight, tr(fmt.Sprintf("Generated at %s", r.now().UTC().Format(time.RFC3339))), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// trimFloat prints hours without trailing zeros, so whole-hour entries read
// "40" rather than "40.00".
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
