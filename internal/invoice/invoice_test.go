package invoice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustItem(t *testing.T, in invoice.ItemInput) invoice.Item {
	t.Helper()

	item, err := invoice.ParseItem(in)
	require.NoError(t, err)

	return item
}

func TestItem_Amounts(t *testing.T) {
	tests := []struct {
		name    string
		in      invoice.ItemInput
		wantAmt string
		wantTax string
		wantNet string
	}{
		{
			name:    "TaxedWithDiscount",
			in:      invoice.ItemInput{Description: "Cement", Quantity: "2", UnitPrice: "100", Discount: "10", Tax: true},
			wantAmt: "200",
			wantTax: "15",
			wantNet: "175",
		},
		{
			name:    "Untaxed",
			in:      invoice.ItemInput{Description: "Sand", Quantity: "3", UnitPrice: "19.99"},
			wantAmt: "59.97",
			wantTax: "0",
			wantNet: "59.97",
		},
		{
			name:    "FractionalQuantityRounds",
			in:      invoice.ItemInput{Description: "Cable", Quantity: "0.333", UnitPrice: "10.00", Tax: true},
			wantAmt: "3.33",
			wantTax: "0.25",
			wantNet: "3.08",
		},
		{
			name:    "ZeroQuantity",
			in:      invoice.ItemInput{Description: "Placeholder", Quantity: "0", UnitPrice: "50"},
			wantAmt: "0",
			wantTax: "0",
			wantNet: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := mustItem(t, tt.in)

			assert.True(t, dec(tt.wantAmt).Equal(item.Amount()), "amount %s", item.Amount())
			assert.True(t, dec(tt.wantTax).Equal(item.TaxAmount()), "tax %s", item.TaxAmount())
			assert.True(t, dec(tt.wantNet).Equal(item.NetAmount()), "net %s", item.NetAmount())
		})
	}
}

func TestParseItem_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		in        invoice.ItemInput
		wantField string
	}{
		{name: "NoDescription", in: invoice.ItemInput{Description: " ", Quantity: "1", UnitPrice: "1"}, wantField: "description"},
		{name: "NegativeQuantity", in: invoice.ItemInput{Description: "x", Quantity: "-1", UnitPrice: "1"}, wantField: "quantity"},
		{name: "NegativePrice", in: invoice.ItemInput{Description: "x", Quantity: "1", UnitPrice: "-1"}, wantField: "unit_price"},
		{name: "PriceTooPrecise", in: invoice.ItemInput{Description: "x", Quantity: "1", UnitPrice: "1.234"}, wantField: "unit_price"},
		{name: "PriceNotNumber", in: invoice.ItemInput{Description: "x", Quantity: "1", UnitPrice: "abc"}, wantField: "unit_price"},
		{name: "NegativeDiscount", in: invoice.ItemInput{Description: "x", Quantity: "1", UnitPrice: "1", Discount: "-2"}, wantField: "discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invoice.ParseItem(tt.in)

			var ve *document.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewItem_RejectsNegativeQuantity(t *testing.T) {
	_, err := invoice.NewItem("x", dec("-0.5"), dec("1"), decimal.Zero, false)
	assert.True(t, document.IsValidation(err))
}

func TestParseItems_NamesLine(t *testing.T) {
	_, err := invoice.ParseItems([]invoice.ItemInput{
		{Description: "ok", Quantity: "1", UnitPrice: "1"},
		{Description: "bad", Quantity: "1", UnitPrice: "-1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
	assert.True(t, document.IsValidation(err))
}

func TestInvoice_Totals(t *testing.T) {
	inv := invoice.New(uuid.New(), time.Now(), "", []invoice.Item{
		mustItem(t, invoice.ItemInput{Description: "Cement", Quantity: "2", UnitPrice: "100", Discount: "10", Tax: true}),
	}, "")

	got := inv.Totals()
	assert.True(t, dec("175").Equal(got.SubTotal))
	assert.True(t, dec("10").Equal(got.DiscountTotal))
	assert.True(t, dec("15").Equal(got.TaxTotal))
	assert.True(t, dec("180").Equal(got.Total))
}

func TestInvoice_TotalsFormula(t *testing.T) {
	items := []invoice.Item{
		mustItem(t, invoice.ItemInput{Description: "a", Quantity: "1.5", UnitPrice: "40", Discount: "2.5", Tax: true}),
		mustItem(t, invoice.ItemInput{Description: "b", Quantity: "4", UnitPrice: "12.25"}),
		mustItem(t, invoice.ItemInput{Description: "c", Quantity: "1", UnitPrice: "999.99", Discount: "100", Tax: true}),
	}

	inv := invoice.New(uuid.New(), time.Now(), "", items, "")

	var net, disc, tax decimal.Decimal
	for _, it := range items {
		net = net.Add(it.NetAmount())
		disc = disc.Add(it.Discount)
		tax = tax.Add(it.TaxAmount())
	}

	got := inv.Totals()
	assert.True(t, net.Sub(disc).Add(tax).Equal(got.Total), "total %s", got.Total)
}

func TestInvoice_TotalsRecomputedAfterReplace(t *testing.T) {
	inv := invoice.New(uuid.New(), time.Now(), "", []invoice.Item{
		mustItem(t, invoice.ItemInput{Description: "a", Quantity: "1", UnitPrice: "10"}),
	}, "")
	assert.True(t, dec("10").Equal(inv.Totals().Total))

	inv.ReplaceItems([]invoice.Item{
		mustItem(t, invoice.ItemInput{Description: "b", Quantity: "3", UnitPrice: "10"}),
	})
	assert.True(t, dec("30").Equal(inv.Totals().Total))

	inv.ReplaceItems(nil)
	assert.True(t, inv.Totals().Total.IsZero())
}

func TestNew_Defaults(t *testing.T) {
	inv := invoice.New(uuid.New(), time.Time{}, "", nil, "")

	assert.Equal(t, invoice.DefaultTerms, inv.Terms)
	assert.False(t, inv.Date.IsZero())
	assert.Empty(t, inv.Number)

	explicit := invoice.New(uuid.New(), time.Now(), "Net 15", nil, "INV-CUSTOM-1")
	assert.Equal(t, "INV-CUSTOM-1", explicit.Number)
	assert.Equal(t, "Net 15", explicit.Terms)
}

func TestReplaceItems_CopiesSlice(t *testing.T) {
	items := []invoice.Item{mustItem(t, invoice.ItemInput{Description: "a", Quantity: "1", UnitPrice: "10"})}
	inv := invoice.New(uuid.New(), time.Now(), "", items, "")

	items[0].Description = "changed"
	assert.Equal(t, "a", inv.Items[0].Description)
}

func TestInvoice_TotalInWords(t *testing.T) {
	inv := invoice.New(uuid.New(), time.Now(), "", []invoice.Item{
		mustItem(t, invoice.ItemInput{Description: "Cement", Quantity: "2", UnitPrice: "100", Discount: "10", Tax: true}),
	}, "")

	assert.Equal(t, "One Hundred And Eighty , Zero Kobo Naira Only", inv.TotalInWords())
}
