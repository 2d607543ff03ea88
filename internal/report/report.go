// Package report builds spreadsheet summaries of invoice and purchase order
// lists.
package report

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/money"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	InvoicesFile       = "invoices.xlsx"
	PurchaseOrdersFile = "purchase_orders.xlsx"

	dateFormat   = "02 Jan 2006"
	amountFormat = "#,##0.00"
)

var invoiceHeaders = []string{"Invoice Number", "Date", "Vendor", "Items", "Sub Total", "Discount", "Tax", "Total"}

var purchaseOrderHeaders = []string{"PO Number", "Date", "Vendor", "Items", "Total"}

// Invoices writes one row per invoice followed by a totals row.
func Invoices(invs []*invoice.Invoice) ([]byte, error) {
	s, err := newSheet("Invoices", invoiceHeaders, []float64{24, 14, 30, 8, 16, 14, 14, 16})
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	var sub, discount, tax, total []decimal.Decimal

	for _, inv := range invs {
		t := inv.Totals()

		s.row(inv.Number, inv.Date.Format(dateFormat), inv.VendorName, len(inv.Items),
			amount(t.SubTotal), amount(t.DiscountTotal), amount(t.TaxTotal), amount(t.Total))

		sub = append(sub, t.SubTotal)
		discount = append(discount, t.DiscountTotal)
		tax = append(tax, t.TaxTotal)
		total = append(total, t.Total)
	}

	s.summary(fmt.Sprintf("Total (%d)", len(invs)), "", "", "",
		amount(money.Sum(sub...)), amount(money.Sum(discount...)), amount(money.Sum(tax...)), amount(money.Sum(total...)))

	return s.bytes()
}

// PurchaseOrders writes one row per purchase order followed by a totals row.
func PurchaseOrders(pos []*purchaseorder.PurchaseOrder) ([]byte, error) {
	s, err := newSheet("Purchase Orders", purchaseOrderHeaders, []float64{24, 14, 30, 8, 16})
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	totals := make([]decimal.Decimal, 0, len(pos))

	for _, po := range pos {
		t := po.Totals()

		s.row(po.Number, po.Date.Format(dateFormat), po.VendorName, len(po.Items), amount(t.Total))

		totals = append(totals, t.Total)
	}

	s.summary(fmt.Sprintf("Total (%d)", len(pos)), "", "", "", amount(money.Sum(totals...)))

	return s.bytes()
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

type sheet struct {
	f      *excelize.File
	name   string
	cols   int
	next   int
	money  int
	totals int
	err    error
}

func newSheet(name string, headers []string, widths []float64) (*sheet, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	numFmt := amountFormat

	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating amount style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating summary style: %w", err)
	}

	s := &sheet{f: f, name: name, cols: len(headers), next: 2, money: moneyStyle, totals: summaryStyle}

	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}

	s.setRow(1, row, headerStyle)

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(name, col, col, w); err != nil && s.err == nil {
			s.err = fmt.Errorf("setting width of %s: %w", col, err)
		}
	}

	return s, nil
}

func (s *sheet) row(values ...any) {
	s.setRow(s.next, values, s.money)
	s.next++
}

// summary writes the bold totals row under the data.
func (s *sheet) summary(values ...any) {
	s.setRow(s.next, values, s.totals)
}

// setRow writes values from column A and styles the whole row.
func (s *sheet) setRow(n int, values []any, style int) {
	if s.err != nil {
		return
	}

	first := fmt.Sprintf("A%d", n)

	if err := s.f.SetSheetRow(s.name, first, &values); err != nil {
		s.err = fmt.Errorf("writing row %d: %w", n, err)
		return
	}

	col, _ := excelize.ColumnNumberToName(s.cols)
	if err := s.f.SetCellStyle(s.name, first, fmt.Sprintf("%s%d", col, n), style); err != nil {
		s.err = fmt.Errorf("styling row %d: %w", n, err)
	}
}

func (s *sheet) bytes() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	var buf bytes.Buffer
	if err := s.f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
