package infra

// pdf.go: Invoice rendering with go-pdf/fpdf.
// A4 portrait layout:
//   - indigo header band with brand and folio
//   - issuer block and sale details block
//   - item table (repeats its header on every page)
//   - totals with tax backed out of the stored sale total
//   - legal footer
//
// Output goes to any io.Writer, or to storagePath/Factura_{id}.pdf.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// InvoiceIssuer is the fixed merchant identity printed on every invoice.
var InvoiceIssuer = struct {
	Brand   string
	Name    string
	TaxID   string
	Address string
}{
	Brand:   "NEXUS POS",
	Name:    "Nexus Solutions S.A. de C.V.",
	TaxID:   "RFC: NEX123456ABC",
	Address: "Calle Innovación #101, Tech City",
}

var (
	indigo   = [3]int{99, 102, 241}
	stripe   = [3]int{248, 250, 252}
	textDark = [3]int{50, 50, 50}
	textGray = [3]int{150, 150, 150}
)

const (
	pageMargin   = 20.0
	headerHeight = 40.0
	rowHeight    = 8.0
	footerSpace  = 30.0
)

var paymentLabels = map[model.PaymentMethod]string{
	model.PaymentCash: "Efectivo",
	model.PaymentCard: "Tarjeta",
}

// InvoiceFileName is the download name of a sale's invoice.
func InvoiceFileName(sale model.Sale) string {
	return fmt.Sprintf("Factura_%s.pdf", sale.ID)
}

// RenderInvoice writes the invoice of a finalized sale as PDF.
func RenderInvoice(w io.Writer, sale model.Sale) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	// ── Header band ──────────────────────────────────────────────────────────
	pdf.SetFillColor(indigo[0], indigo[1], indigo[2])
	pdf.Rect(0, 0, pageW, headerHeight, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(pageMargin, 15)
	pdf.CellFormat(contentW/2, 12, tr(InvoiceIssuer.Brand), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageW/2, 15)
	pdf.CellFormat(contentW/2, 6, tr("FACTURA ELECTRÓNICA"), "", 2, "R", false, 0, "")
	pdf.CellFormat(contentW/2, 6, tr("Folio: #"+sale.ID), "", 0, "R", false, 0, "")

	// ── Issuer and sale details ──────────────────────────────────────────────
	pdf.SetTextColor(textDark[0], textDark[1], textDark[2])
	leftX, rightX := pageMargin, pageW-80
	y := 52.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(leftX, y, tr("Emisor:"))
	pdf.Text(rightX, y, tr("Detalles de Venta:"))
	pdf.SetFont("Helvetica", "", 10)
	left := []string{InvoiceIssuer.Name, InvoiceIssuer.TaxID, InvoiceIssuer.Address}
	right := []string{
		"Fecha: " + sale.CreatedAt.Format("02/01/2006 15:04:05"),
		"Método de Pago: " + paymentLabels[sale.PaymentMethod],
		"Cliente: Público en General",
	}
	for i := range left {
		pdf.Text(leftX, y+5*float64(i+1), tr(left[i]))
		pdf.Text(rightX, y+5*float64(i+1), tr(right[i]))
	}

	// ── Items ────────────────────────────────────────────────────────────────
	cols := []float64{contentW * 0.46, contentW * 0.14, contentW * 0.20, contentW * 0.20}
	heads := []string{"Descripción", "Cant.", "P. Unitario", "Subtotal"}
	aligns := []string{"L", "C", "R", "R"}

	tableHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(indigo[0], indigo[1], indigo[2])
		pdf.SetTextColor(255, 255, 255)
		for i, h := range heads {
			pdf.CellFormat(cols[i], rowHeight, tr(h), "", 0, aligns[i], true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(textDark[0], textDark[1], textDark[2])
	}

	pdf.SetXY(pageMargin, 85)
	tableHeader()
	for n, item := range sale.Items {
		if pdf.GetY()+rowHeight > pageH-pageMargin {
			pdf.AddPage()
			pdf.SetXY(pageMargin, pageMargin)
			tableHeader()
		}
		fill := n%2 == 1
		if fill {
			pdf.SetFillColor(stripe[0], stripe[1], stripe[2])
		}
		row := []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			money(item.Price),
			money(item.LineTotal()),
		}
		for i, v := range row {
			pdf.CellFormat(cols[i], rowHeight, tr(v), "", 0, aligns[i], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	if pdf.GetY()+footerSpace+35 > pageH-pageMargin {
		pdf.AddPage()
		pdf.SetY(pageMargin)
	}
	rows := totalsRows(sale.Total)
	labelX, valueW := pageW-pageMargin-80, 40.0
	finalY := pdf.GetY()

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetY(finalY + 10)
	for _, row := range rows[:2] {
		pdf.SetX(labelX)
		pdf.CellFormat(valueW, 6, row.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, row.Value, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(indigo[0], indigo[1], indigo[2])
	pdf.SetX(labelX)
	pdf.CellFormat(valueW, 10, rows[2].Label, "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 10, rows[2].Value, "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetTextColor(textGray[0], textGray[1], textGray[2])
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetXY(pageMargin, finalY+45)
	pdf.CellFormat(contentW, 5, tr("Este documento es una representación impresa de un CFDI."), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

// GenerateInvoicePDF renders the invoice into storagePath, creating the
// directory if needed, and returns the file path.
func GenerateInvoicePDF(sale model.Sale, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, InvoiceFileName(sale))

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("pdf: create file: %w", err)
	}
	if err := RenderInvoice(f, sale); err != nil {
		f.Close()
		return "", fmt.Errorf("pdf: render: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

type totalsRow struct {
	Label string
	Value string
}

// totalsRows is the printed totals block: subtotal and tax backed out of the
// tax-inclusive total, then the total itself.
func totalsRows(total decimal.Decimal) []totalsRow {
	t := model.BackOutTax(total)
	return []totalsRow{
		{"Subtotal:", money(t.Subtotal)},
		{"IVA (16%):", money(t.Tax)},
		{"TOTAL:", money(total)},
	}
}

func money(d decimal.Decimal) string { return "$" + d.StringFixed(2) }
