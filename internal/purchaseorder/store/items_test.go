package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
)

func TestItemsRoundTrip(t *testing.T) {
	items := []purchaseorder.Item{
		{Description: "Steel rods", Quantity: decimal.RequireFromString("40"), UnitPrice: decimal.RequireFromString("1250.00")},
		{Description: "Binding wire", Quantity: decimal.RequireFromString("2.5"), UnitPrice: decimal.RequireFromString("800")},
	}

	b, err := encodeItems(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"description":"Steel rods","quantity":"40","unit_price":"1250"},
		{"description":"Binding wire","quantity":"2.5","unit_price":"800"}
	]`, string(b))

	got, err := decodeItems(b)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Steel rods", got[0].Description)
	assert.Equal(t, "Binding wire", got[1].Description)
	assert.True(t, items[1].Amount().Equal(got[1].Amount()))
}
