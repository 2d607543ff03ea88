package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/money"
)

// Item is one priced line of an invoice. Amounts derived from it are
// computed on every call and never stored.
type Item struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Tax         bool
}

// ItemInput is an item as submitted by a form or JSON body.
type ItemInput struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Discount    string `json:"discount"`
	Tax         bool   `json:"tax"`
}

func NewItem(description string, quantity, unitPrice, discount decimal.Decimal, tax bool) (Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, document.Invalid("description", "is required")
	}

	if quantity.IsNegative() {
		return Item{}, document.Invalid("quantity", money.ErrNegative.Error())
	}

	if err := checkAmount("unit_price", unitPrice); err != nil {
		return Item{}, err
	}

	if err := checkAmount("discount", discount); err != nil {
		return Item{}, err
	}

	return Item{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
		Tax:         tax,
	}, nil
}

func checkAmount(field string, d decimal.Decimal) error {
	if _, err := money.ParseAmount(d.String()); err != nil {
		return document.Invalid(field, err.Error())
	}

	return nil
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

	discount, err := money.ParseAmount(in.Discount)
	if err != nil {
		return Item{}, document.Invalid("discount", err.Error())
	}

	return NewItem(in.Description, quantity, unitPrice, discount, in.Tax)
}

// ParseItems parses inputs in order, naming the failing line in the error.
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

// TaxAmount is the flat rate applied to the line amount when the line is taxed.
func (i Item) TaxAmount() decimal.Decimal {
	if !i.Tax {
		return decimal.Zero
	}

	return money.Round(i.Amount().Mul(money.TaxRate))
}

// NetAmount is the amount less the line's own tax and discount.
func (i Item) NetAmount() decimal.Decimal {
	return i.Amount().Sub(i.TaxAmount()).Sub(i.Discount)
}
