package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/client"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/render"
	"github.com/MrJamesThe3rd/backoffice/internal/storage"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

//go:generate mockgen -source=sources.go -destination=sources_mock.go -package=export
type InvoiceGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
}

type PurchaseOrderGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*purchaseorder.PurchaseOrder, error)
}

type VendorGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error)
}

type ClientLoader interface {
	Load(ctx context.Context) (*client.Client, error)
}

type LogoGetter interface {
	GetLogo(ctx context.Context, key string) (*storage.Logo, error)
}

// parties resolves the issuing company and vendor blocks shared by every
// printed document.
type parties struct {
	vendors VendorGetter
	client  ClientLoader
	logos   LogoGetter
}

func (p parties) load(ctx context.Context, vendorID uuid.UUID) (render.Party, *vendor.Vendor, render.Party, error) {
	c, err := p.client.Load(ctx)
	if err != nil {
		return render.Party{}, nil, render.Party{}, fmt.Errorf("loading client profile: %w", err)
	}

	v, err := p.vendors.Get(ctx, vendorID)
	if err != nil {
		return render.Party{}, nil, render.Party{}, fmt.Errorf("loading vendor: %w", err)
	}

	issuer := render.Party{
		Name:    c.CompanyName,
		Address: c.Address,
		Email:   c.Email,
		Phone:   c.PhoneNumber,
		Logo:    p.logo(ctx, c.LogoKey),
	}

	return issuer, v, p.vendorParty(ctx, v), nil
}

func (p parties) vendorParty(ctx context.Context, v *vendor.Vendor) render.Party {
	return render.Party{
		Name:    v.Name,
		Address: v.Address,
		City:    v.City,
		State:   v.State,
		ZipCode: v.ZipCode,
		Phone:   v.PhoneNumber,
		Email:   v.Email,
		TaxTIN:  v.TaxTIN,
		Logo:    p.logo(ctx, v.LogoKey),
	}
}

// logo is best effort. Documents still print when storage is down.
func (p parties) logo(ctx context.Context, key string) *render.Image {
	if key == "" || p.logos == nil {
		return nil
	}

	l, err := p.logos.GetLogo(ctx, key)
	if err != nil {
		slog.Warn("failed to load logo", "key", key, "error", err)
		return nil
	}

	return &render.Image{ContentType: l.ContentType, Data: l.Data}
}

type InvoiceSource struct {
	invoices InvoiceGetter
	parties  parties
}

func NewInvoiceSource(invoices InvoiceGetter, vendors VendorGetter, c ClientLoader, logos LogoGetter) *InvoiceSource {
	return &InvoiceSource{
		invoices: invoices,
		parties:  parties{vendors: vendors, client: c, logos: logos},
	}
}

func (s *InvoiceSource) Load(ctx context.Context, id uuid.UUID) (*Printable, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	issuer, v, vendorParty, err := s.parties.load(ctx, inv.VendorID)
	if err != nil {
		return nil, err
	}

	totals := inv.Totals()

	view := &render.InvoiceView{
		Number: inv.Number,
		Date:   inv.Date,
		Terms:  inv.Terms,
		Style:  string(v.InvoiceTemplate),
		Client: issuer,
		Vendor: vendorParty,
		Bank: render.Bank{
			AccountNumber: v.BankAccountNumber,
			AccountName:   v.BankAccountName,
			Name:          v.BankName,
		},
		Lines:         make([]render.InvoiceLine, len(inv.Items)),
		SubTotal:      totals.SubTotal,
		DiscountTotal: totals.DiscountTotal,
		TaxTotal:      totals.TaxTotal,
		Total:         totals.Total,
		TotalInWords:  inv.TotalInWords(),
	}

	for i, item := range inv.Items {
		view.Lines[i] = render.InvoiceLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Tax:         item.Tax,
			Amount:      item.Amount(),
			TaxAmount:   item.TaxAmount(),
			NetAmount:   item.NetAmount(),
		}
	}

	return &Printable{Number: inv.Number, View: view}, nil
}

type PurchaseOrderSource struct {
	orders  PurchaseOrderGetter
	parties parties
}

func NewPurchaseOrderSource(orders PurchaseOrderGetter, vendors VendorGetter, c ClientLoader, logos LogoGetter) *PurchaseOrderSource {
	return &PurchaseOrderSource{
		orders:  orders,
		parties: parties{vendors: vendors, client: c, logos: logos},
	}
}

func (s *PurchaseOrderSource) Load(ctx context.Context, id uuid.UUID) (*Printable, error) {
	po, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	issuer, _, vendorParty, err := s.parties.load(ctx, po.VendorID)
	if err != nil {
		return nil, err
	}

	view := &render.PurchaseOrderView{
		Number: po.Number,
		Date:   po.Date,
		Terms:  po.Terms,
		Client: issuer,
		Vendor: vendorParty,
		Lines:  make([]render.PurchaseOrderLine, len(po.Items)),
		Total:  po.Totals().Total,
	}

	for i, item := range po.Items {
		view.Lines[i] = render.PurchaseOrderLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		}
	}

	return &Printable{Number: po.Number, View: view}, nil
}
