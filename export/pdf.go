// Package export renders the invoice preview to documents: a PDF file, or a
// printable page handed to the platform print spooler.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/invoicify/renderer"
	"github.com/jung-kurt/gofpdf"
)

// compressPDF is turned off in tests to inspect the content streams.
var compressPDF = true

// Column widths of the items table, in mm. They fill the 190mm between margins.
var columns = [4]float64{95, 20, 35, 40}

// WritePDF lays out the preview on an A4 portrait page and writes the PDF to w.
func WritePDF(w io.Writer, p *renderer.Preview) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetCompression(compressPDF)
	pdf.SetTitle("Invoice "+p.Number, true)
	pdf.SetAuthor(p.Sender.Name, true)
	pdf.SetCreator("invoicify", false)
	pdf.AddPage()
	// core fonts are cp1252, translate the user text.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header: sender on the left, invoice number on the right.
	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(130, 10, tr(p.Sender.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("# "+p.Number), "", 1, "R", false, 0, "")
	pdf.MultiCell(130, 5, tr(joinLines(p.Sender.Address, p.Sender.Email)), "", "L", false)
	rule(pdf)

	// Parties and dates.
	top := pdf.GetY() + 4
	pdf.SetY(top)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(130, 6, "BILL TO", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(130, 6, tr(p.Recipient.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.MultiCell(130, 5, tr(joinLines(p.Recipient.Address, p.Recipient.Email)), "", "L", false)
	bottom := pdf.GetY()

	pdf.SetXY(140, top)
	dateLine(pdf, "Invoice Date", p.InvoiceDate)
	pdf.SetX(140)
	dateLine(pdf, "Due Date", p.DueDate)
	pdf.SetY(max(bottom, pdf.GetY()) + 8)

	// Items.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 245, 249)
	pdf.SetTextColor(71, 85, 105)
	for i, h := range []string{"DESCRIPTION", "QTY", "UNIT PRICE", "TOTAL"} {
		pdf.CellFormat(columns[i], 8, h, "", 0, []string{"L", "C", "R", "R"}[i], true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(15, 23, 42)
	for _, it := range p.Items {
		pdf.CellFormat(columns[0], 8, tr(it.Description), "B", 0, "L", false, 0, "")
		pdf.CellFormat(columns[1], 8, it.Quantity.String(), "B", 0, "C", false, 0, "")
		pdf.CellFormat(columns[2], 8, tr(p.Money(it.Price)), "B", 0, "R", false, 0, "")
		pdf.CellFormat(columns[3], 8, tr(p.Money(it.Amount)), "B", 1, "R", false, 0, "")
	}

	// Totals, right aligned.
	pdf.Ln(6)
	totalLine(pdf, "Subtotal", tr(p.Money(p.Totals.Subtotal)), false)
	totalLine(pdf, p.TaxLabel(), tr(p.Money(p.Totals.Tax)), false)
	totalLine(pdf, "Total", tr(p.Money(p.Totals.Total)), true)

	if p.Notes != "" {
		pdf.Ln(10)
		rule(pdf)
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(p.Notes), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("cannot render PDF: %w", err)
	}
	return nil
}

func rule(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(226, 232, 240)
	y := pdf.GetY() + 2
	pdf.Line(10, y, 200, y)
	pdf.SetY(y)
}

func dateLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 5, label, "", 1, "R", false, 0, "")
	pdf.SetX(140)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(0, 6, value, "", 1, "R", false, 0, "")
}

func totalLine(pdf *gofpdf.Fpdf, label, amount string, strong bool) {
	style := ""
	if strong {
		style = "B"
		rule(pdf)
		pdf.Ln(1)
	}
	pdf.SetX(120)
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, amount, "", 1, "R", false, 0, "")
}

// joinLines drops the blank lines of parts.
func joinLines(parts ...string) string {
	var out []string
	for _, p := range parts {
		for _, l := range strings.Split(p, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				out = append(out, l)
			}
		}
	}
	return strings.Join(out, "\n")
}
