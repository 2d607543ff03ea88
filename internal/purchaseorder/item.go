package purchaseorder

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/money"
)

// Item is one line of a purchase order. Purchase order lines carry no tax or
// discount.
type Item struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

type ItemInput struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

func NewItem(description string, quantity, unitPrice decimal.Decimal) (Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, document.Invalid("description", "is required")
	}

	if quantity.IsNegative() {
		return Item{}, document.Invalid("quantity", money.ErrNegative.Error())
	}

	if _, err := money.ParseAmount(unitPrice.String()); err != nil {
		return Item{}, document.Invalid("unit_price", err.Error())
	}

	return Item{Description: description, Quantity: quantity, UnitPrice: unitPrice}, nil
}

func ParseItem(in ItemInput) (Item, error) {
	quantity, err := money.ParseQuantity(in.Quantity)
	if err != nil {
		return Item{}, document.Invalid("quantity", err.Error())
	}

	unitPrice, err := money.ParseAmount(in.UnitPrice)
	if err != nil {
		return Item{}, document.Invalid("unit_price", err.Error())
	}

	return NewItem(in.Description, quantity, unitPrice)
}

func ParseItems(in []ItemInput) ([]Item, error) {
	items := make([]Item, 0, len(in))

	for i, input := range in {
		item, err := ParseItem(input)
		if err != nil {
			return nil, lineError(i, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func (i Item) Amount() decimal.Decimal {
	return money.Round(i.Quantity.Mul(i.UnitPrice))
}
