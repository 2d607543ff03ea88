package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/client"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/render"
	"github.com/MrJamesThe3rd/backoffice/internal/storage"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

type sourceMocks struct {
	invoices *export.MockInvoiceGetter
	orders   *export.MockPurchaseOrderGetter
	vendors  *export.MockVendorGetter
	client   *export.MockClientLoader
	logos    *export.MockLogoGetter
}

func newSourceMocks(ctrl *gomock.Controller) sourceMocks {
	return sourceMocks{
		invoices: export.NewMockInvoiceGetter(ctrl),
		orders:   export.NewMockPurchaseOrderGetter(ctrl),
		vendors:  export.NewMockVendorGetter(ctrl),
		client:   export.NewMockClientLoader(ctrl),
		logos:    export.NewMockLogoGetter(ctrl),
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoiceSource_Load(t *testing.T) {
	vendorID := uuid.New()
	id := uuid.New()

	item, err := invoice.NewItem("Cement", d("2"), d("100"), d("10"), true)
	require.NoError(t, err)

	inv := invoice.New(vendorID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "", []invoice.Item{item}, "INV/AC/2024/0001")
	inv.ID = id

	acme := &vendor.Vendor{
		ID:              vendorID,
		Name:            "Acme Co",
		LogoKey:         "vendors/acme.png",
		BankName:        "First Bank",
		InvoiceTemplate: vendor.TemplateModern,
	}

	tests := []struct {
		name      string
		setupMock func(m sourceMocks)
		wantErr   error
		check     func(t *testing.T, view *render.InvoiceView)
	}{
		{
			name: "BuildsView",
			setupMock: func(m sourceMocks) {
				m.invoices.EXPECT().Get(gomock.Any(), id).Return(inv, nil)
				m.client.EXPECT().Load(gomock.Any()).Return(&client.Client{CompanyName: "My Company", LogoKey: "client/me.png"}, nil)
				m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(acme, nil)
				m.logos.EXPECT().GetLogo(gomock.Any(), "client/me.png").Return(&storage.Logo{ContentType: "image/png", Data: []byte("me")}, nil)
				m.logos.EXPECT().GetLogo(gomock.Any(), "vendors/acme.png").Return(nil, storage.ErrDisabled)
			},
			check: func(t *testing.T, view *render.InvoiceView) {
				assert.Equal(t, "INV/AC/2024/0001", view.Number)
				assert.Equal(t, invoice.DefaultTerms, view.Terms)
				assert.Equal(t, "template2", view.Style)
				assert.Equal(t, "My Company", view.Client.Name)
				require.NotNil(t, view.Client.Logo)
				assert.Equal(t, "image/png", view.Client.Logo.ContentType)
				assert.Nil(t, view.Vendor.Logo)
				assert.Equal(t, "First Bank", view.Bank.Name)
				require.Len(t, view.Lines, 1)
				assert.True(t, d("175").Equal(view.Lines[0].NetAmount))
				assert.True(t, d("175").Equal(view.SubTotal))
				assert.True(t, d("180").Equal(view.Total))
				assert.Equal(t, "One Hundred And Eighty , Zero Kobo Naira Only", view.TotalInWords)
			},
		},
		{
			name: "InvoiceMissing",
			setupMock: func(m sourceMocks) {
				m.invoices.EXPECT().Get(gomock.Any(), id).Return(nil, invoice.ErrNotFound)
			},
			wantErr: invoice.ErrNotFound,
		},
		{
			name: "ClientFailure",
			setupMock: func(m sourceMocks) {
				m.invoices.EXPECT().Get(gomock.Any(), id).Return(inv, nil)
				m.client.EXPECT().Load(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("loading client profile: db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newSourceMocks(ctrl)
			tt.setupMock(m)

			src := export.NewInvoiceSource(m.invoices, m.vendors, m.client, m.logos)

			doc, err := src.Load(context.Background(), id)
			if tt.wantErr != nil {
				require.Error(t, err)

				if errors.Is(tt.wantErr, invoice.ErrNotFound) {
					assert.ErrorIs(t, err, invoice.ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "INV/AC/2024/0001", doc.Number)

			view, ok := doc.View.(*render.InvoiceView)
			require.True(t, ok)
			tt.check(t, view)
		})
	}
}

func TestPurchaseOrderSource_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newSourceMocks(ctrl)

	vendorID := uuid.New()
	id := uuid.New()

	item, err := purchaseorder.NewItem("Steel rods", d("3"), d("1500.50"))
	require.NoError(t, err)

	po := purchaseorder.New(vendorID, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), "Deliver to site", []purchaseorder.Item{item}, "PO/AC/2024/0007")

	m.orders.EXPECT().Get(gomock.Any(), id).Return(po, nil)
	m.client.EXPECT().Load(gomock.Any()).Return(&client.Client{CompanyName: "My Company"}, nil)
	m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(&vendor.Vendor{ID: vendorID, Name: "Acme Co", City: "Lagos"}, nil)

	src := export.NewPurchaseOrderSource(m.orders, m.vendors, m.client, m.logos)

	doc, err := src.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "PO/AC/2024/0007", doc.Number)

	view, ok := doc.View.(*render.PurchaseOrderView)
	require.True(t, ok)
	assert.Equal(t, "Deliver to site", view.Terms)
	assert.Equal(t, "Lagos", view.Vendor.City)
	require.Len(t, view.Lines, 1)
	assert.True(t, d("4501.50").Equal(view.Lines[0].Amount))
	assert.True(t, d("4501.50").Equal(view.Total))
}
