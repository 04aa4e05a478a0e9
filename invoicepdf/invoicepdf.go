// Package invoicepdf lays out a single-page A4 invoice.
package invoicepdf

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin  = 50.0
	rightEdge   = 545.0
	ruleEnd     = 550.0
	tableTop    = 330.0
	rowHeight   = 30.0
	lineHeight  = 12.0
	footerTop   = 780.0
	footerWidth = 500.0
)

type Sender struct {
	Name    string
	Street  string
	State   string
	City    string
	Country string
	ZipCode string
}

type Item struct {
	Name        string
	Description string
	UnitCost    float64
	Quantity    float64
}

func (i Item) LineTotal() float64 {
	return i.UnitCost * i.Quantity
}

type Document struct {
	Sender   Sender
	LogoPath string
	Number   string
	Date     string
	// Customer is printed as given; callers mask it first.
	Customer string
	Items    []Item
	Subtotal float64
	Paid     float64
	Terms    string
}

func (d Document) Due() float64 {
	return d.Subtotal - d.Paid
}

// Rows holds the vertical positions of the table. Items past the bottom of
// the page are placed where the arithmetic puts them.
type Rows struct {
	Header   float64
	Items    []float64
	Subtotal float64
	Paid     float64
	Due      float64
}

func Layout(items int) Rows {
	r := Rows{Header: tableTop, Items: make([]float64, items)}
	for i := 0; i < items; i++ {
		r.Items[i] = tableTop + float64(i+1)*rowHeight
	}
	r.Subtotal = tableTop + float64(items+1)*rowHeight
	r.Paid = r.Subtotal + 20
	r.Due = r.Paid + 25
	return r
}

// Render writes doc as a PDF to w.
func Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	p := &page{pdf: pdf, tr: tr}
	p.header(doc)
	p.customer(doc)
	p.table(doc)
	p.footer(doc)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build invoice pdf: %w", err)
	}
	return pdf.Output(w)
}

type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// text places s with its top edge at y, like a word processor would.
func (p *page) text(s string, x, y, w float64, align string) {
	p.pdf.SetXY(x, y)
	p.pdf.CellFormat(w, lineHeight, p.tr(s), "", 0, align, false, 0, "")
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont("Helvetica", style, size)
}

func (p *page) rule(y float64) {
	p.pdf.SetDrawColor(0xaa, 0xaa, 0xaa)
	p.pdf.SetLineWidth(1)
	p.pdf.Line(pageMargin, y, ruleEnd, y)
}

func (p *page) header(doc Document) {
	if doc.LogoPath != "" {
		if _, err := os.Stat(doc.LogoPath); err == nil {
			p.pdf.ImageOptions(doc.LogoPath, 50, 45, 50, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}
	p.pdf.SetTextColor(0x44, 0x44, 0x44)
	p.font("", 20)
	p.text(doc.Sender.Name, 110, 57, 0, "L")

	p.font("", 10)
	p.text(doc.Sender.Name, 200, 50, rightEdge-200, "R")
	p.text(joinNonEmpty(doc.Sender.State, doc.Sender.Street), 200, 65, rightEdge-200, "R")
	p.text(joinNonEmpty(doc.Sender.City, doc.Sender.Country, doc.Sender.ZipCode), 200, 80, rightEdge-200, "R")
}

func (p *page) customer(doc Document) {
	p.font("", 20)
	p.text("Invoice", 50, 160, 0, "L")
	p.rule(185)

	top := 200.0
	p.font("", 10)
	p.text("Invoice Number:", 50, top, 0, "L")
	p.font("B", 10)
	p.text(doc.Number, 150, top, 0, "L")
	p.font("", 10)
	p.text("Invoice Date:", 50, top+15, 0, "L")
	p.text(doc.Date, 150, top+15, 0, "L")
	p.text("Total:", 50, top+30, 0, "L")
	p.text(Money(doc.Subtotal), 150, top+30, 0, "L")

	p.font("B", 10)
	p.text(doc.Customer, 300, top, 0, "L")
	p.font("", 10)
	p.rule(252)
}

func (p *page) row(y float64, item, description, unitCost, quantity, lineTotal string) {
	p.text(item, 50, y, 0, "L")
	p.text(description, 150, y, 0, "L")
	p.text(unitCost, 280, y, 90, "R")
	p.text(quantity, 370, y, 90, "R")
	p.text(lineTotal, pageMargin, y, rightEdge-pageMargin, "R")
}

func (p *page) table(doc Document) {
	rows := Layout(len(doc.Items))

	p.font("B", 10)
	p.row(rows.Header, "Item", "Description", "Unit Cost", "Quantity", "Line Total")
	p.rule(rows.Header + 20)
	p.font("", 10)

	for i, it := range doc.Items {
		y := rows.Items[i]
		p.row(y, it.Name, it.Description, Money(it.UnitCost), Quantity(it.Quantity), Money(it.LineTotal()))
		p.rule(y + 20)
	}

	p.row(rows.Subtotal, "", "", "Subtotal", "", Money(doc.Subtotal))
	p.row(rows.Paid, "", "", "Paid To Date", "", Money(doc.Paid))
	p.font("B", 10)
	p.row(rows.Due, "", "", "Balance Due", "", Money(doc.Due()))
	p.font("", 10)
}

func (p *page) footer(doc Document) {
	p.font("", 10)
	p.pdf.SetXY(pageMargin, footerTop)
	p.pdf.MultiCell(footerWidth, lineHeight, p.tr(doc.Terms), "", "C", false)
}

func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, s := range parts {
		if s == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += s
	}
	return out
}
