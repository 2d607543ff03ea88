package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
)

func TestItemsRoundTrip(t *testing.T) {
	items := []invoice.Item{
		{
			Description: "Cement bags",
			Quantity:    decimal.RequireFromString("2"),
			UnitPrice:   decimal.RequireFromString("100.00"),
			Discount:    decimal.RequireFromString("10"),
			Tax:         true,
		},
		{
			Description: "Delivery",
			Quantity:    decimal.RequireFromString("0.5"),
			UnitPrice:   decimal.RequireFromString("3000.25"),
		},
		{
			Description: "Aggregate",
			Quantity:    decimal.RequireFromString("12"),
			UnitPrice:   decimal.RequireFromString("7.5"),
		},
	}

	b, err := encodeItems(items)
	require.NoError(t, err)

	got, err := decodeItems(b)
	require.NoError(t, err)
	require.Len(t, got, len(items))

	for i := range items {
		assert.Equal(t, items[i].Description, got[i].Description)
		assert.True(t, items[i].Quantity.Equal(got[i].Quantity))
		assert.True(t, items[i].UnitPrice.Equal(got[i].UnitPrice))
		assert.True(t, items[i].Discount.Equal(got[i].Discount))
		assert.Equal(t, items[i].Tax, got[i].Tax)
		assert.True(t, items[i].NetAmount().Equal(got[i].NetAmount()))
	}
}

func TestEncodeItems_Empty(t *testing.T) {
	b, err := encodeItems(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	got, err := decodeItems(b)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeItems_Invalid(t *testing.T) {
	_, err := decodeItems([]byte(`{"not":"a list"}`))
	assert.ErrorContains(t, err, "decoding items")
}
