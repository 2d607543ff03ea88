// Package render turns documents into printable HTML or PDF bytes.
package render

import (
	"encoding/base64"
	"errors"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoicePrint       = "invoice_print"
	PurchaseOrderPrint = "purchase_order_print"
)

var ErrUnknownTemplate = errors.New("unknown template")

// Renderer produces a printable representation of data using the named
// template.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/html; charset=utf-8"
	}
}

type Image struct {
	ContentType string
	Data        []byte
}

// DataURI embeds the image inline so rendered files stand alone.
func (i *Image) DataURI() template.URL {
	if i == nil || len(i.Data) == 0 {
		return ""
	}

	return template.URL("data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data))
}

type Party struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Phone   string
	Email   string
	TaxTIN  string
	Logo    *Image
}

func (p Party) LogoURI() template.URL {
	return p.Logo.DataURI()
}

type Bank struct {
	AccountNumber string
	AccountName   string
	Name          string
}

func (b Bank) Empty() bool {
	return b.AccountNumber == "" && b.AccountName == "" && b.Name == ""
}

type InvoiceLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Tax         bool
	Amount      decimal.Decimal
	TaxAmount   decimal.Decimal
	NetAmount   decimal.Decimal
}

type InvoiceView struct {
	Number        string
	Date          time.Time
	Terms         string
	Style         string
	Client        Party
	Vendor        Party
	Bank          Bank
	Lines         []InvoiceLine
	SubTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	TotalInWords  string
}

type PurchaseOrderLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

type PurchaseOrderView struct {
	Number string
	Date   time.Time
	Terms  string
	Client Party
	Vendor Party
	Lines  []PurchaseOrderLine
	Total  decimal.Decimal
}
