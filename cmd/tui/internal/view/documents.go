package view

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/words"
)

// Row is the list projection of an invoice or purchase order.
type Row struct {
	ID         uuid.UUID
	Number     string
	Date       time.Time
	VendorName string
	Items      int
	Total      decimal.Decimal
	Terms      string
}

func (r Row) TotalInWords() string {
	return words.Naira(r.Total)
}

// QuickLine is the single item a quick-created document starts with.
type QuickLine struct {
	VendorID    uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Terms       string
}

// Documents adapts one document family to the browser and create screens.
type Documents interface {
	Kind() document.Kind
	Label() string
	List(ctx context.Context, r DateRange) ([]Row, error)
	SetTerms(ctx context.Context, id uuid.UUID, terms string) error
	QuickCreate(ctx context.Context, line QuickLine) (Row, error)
}

type InvoiceDocuments struct {
	svc *invoice.Service
}

func NewInvoiceDocuments(svc *invoice.Service) *InvoiceDocuments {
	return &InvoiceDocuments{svc: svc}
}

func (d *InvoiceDocuments) Kind() document.Kind { return document.KindInvoice }
func (d *InvoiceDocuments) Label() string       { return "Invoices" }

func (d *InvoiceDocuments) List(ctx context.Context, r DateRange) ([]Row, error) {
	invs, err := d.svc.List(ctx, invoice.ListFilter{StartDate: r.Start, EndDate: r.End})
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(invs))
	for i, inv := range invs {
		rows[i] = invoiceRow(inv)
	}

	return rows, nil
}

func (d *InvoiceDocuments) SetTerms(ctx context.Context, id uuid.UUID, terms string) error {
	inv, err := d.svc.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = d.svc.Update(ctx, id, invoice.UpdateParams{
		VendorID: inv.VendorID,
		Date:     inv.Date,
		Terms:    terms,
		Items:    inv.Items,
	})

	return err
}

func (d *InvoiceDocuments) QuickCreate(ctx context.Context, line QuickLine) (Row, error) {
	item, err := invoice.NewItem(line.Description, line.Quantity, line.UnitPrice, decimal.Zero, false)
	if err != nil {
		return Row{}, err
	}

	inv, err := d.svc.Create(ctx, invoice.CreateParams{
		VendorID: line.VendorID,
		Terms:    line.Terms,
		Items:    []invoice.Item{item},
	})
	if err != nil {
		return Row{}, err
	}

	return invoiceRow(inv), nil
}

func invoiceRow(inv *invoice.Invoice) Row {
	return Row{
		ID:         inv.ID,
		Number:     inv.Number,
		Date:       inv.Date,
		VendorName: inv.VendorName,
		Items:      len(inv.Items),
		Total:      inv.Totals().Total,
		Terms:      inv.Terms,
	}
}

type PurchaseOrderDocuments struct {
	svc *purchaseorder.Service
}

func NewPurchaseOrderDocuments(svc *purchaseorder.Service) *PurchaseOrderDocuments {
	return &PurchaseOrderDocuments{svc: svc}
}

func (d *PurchaseOrderDocuments) Kind() document.Kind { return document.KindPurchaseOrder }
func (d *PurchaseOrderDocuments) Label() string       { return "Purchase Orders" }

func (d *PurchaseOrderDocuments) List(ctx context.Context, r DateRange) ([]Row, error) {
	pos, err := d.svc.List(ctx, purchaseorder.ListFilter{StartDate: r.Start, EndDate: r.End})
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(pos))
	for i, po := range pos {
		rows[i] = purchaseOrderRow(po)
	}

	return rows, nil
}

func (d *PurchaseOrderDocuments) SetTerms(ctx context.Context, id uuid.UUID, terms string) error {
	po, err := d.svc.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = d.svc.Update(ctx, id, purchaseorder.UpdateParams{
		VendorID: po.VendorID,
		Date:     po.Date,
		Terms:    terms,
		Items:    po.Items,
	})

	return err
}

func (d *PurchaseOrderDocuments) QuickCreate(ctx context.Context, line QuickLine) (Row, error) {
	item, err := purchaseorder.NewItem(line.Description, line.Quantity, line.UnitPrice)
	if err != nil {
		return Row{}, err
	}

	po, err := d.svc.Create(ctx, purchaseorder.CreateParams{
		VendorID: line.VendorID,
		Terms:    line.Terms,
		Items:    []purchaseorder.Item{item},
	})
	if err != nil {
		return Row{}, err
	}

	return purchaseOrderRow(po), nil
}

func purchaseOrderRow(po *purchaseorder.PurchaseOrder) Row {
	return Row{
		ID:         po.ID,
		Number:     po.Number,
		Date:       po.Date,
		VendorName: po.VendorName,
		Items:      len(po.Items),
		Total:      po.Totals().Total,
		Terms:      po.Terms,
	}
}
