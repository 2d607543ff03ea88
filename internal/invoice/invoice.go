package invoice

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/money"
	"github.com/MrJamesThe3rd/backoffice/internal/words"
)

const DefaultTerms = "Please pay within 30 days."

// MaxNumberLength bounds caller-supplied invoice numbers.
const MaxNumberLength = 255

var ErrNotFound = fmt.Errorf("invoice %w", document.ErrNotFound)

type Invoice struct {
	ID         uuid.UUID
	VendorID   uuid.UUID
	VendorName string // Loaded via JOIN
	Number     string
	Date       time.Time
	Terms      string
	Items      []Item
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// New builds an unsaved invoice. An empty number is assigned when the
// invoice is first persisted.
func New(vendorID uuid.UUID, date time.Time, terms string, items []Item, number string) *Invoice {
	if date.IsZero() {
		date = time.Now()
	}

	if terms == "" {
		terms = DefaultTerms
	}

	inv := &Invoice{
		VendorID: vendorID,
		Number:   number,
		Date:     date,
		Terms:    terms,
	}
	inv.ReplaceItems(items)

	return inv
}

// ReplaceItems swaps the whole item list.
func (inv *Invoice) ReplaceItems(items []Item) {
	inv.Items = slices.Clone(items)
}

type Totals struct {
	SubTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
}

// Totals sums the current items. Discount and tax are already part of each
// net amount and are applied to the sub total a second time.
func (inv *Invoice) Totals() Totals {
	var t Totals

	for _, item := range inv.Items {
		t.SubTotal = t.SubTotal.Add(item.NetAmount())
		t.DiscountTotal = t.DiscountTotal.Add(item.Discount)
		t.TaxTotal = t.TaxTotal.Add(item.TaxAmount())
	}

	t.Total = money.Round(t.SubTotal.Sub(t.DiscountTotal).Add(t.TaxTotal))

	return t
}

// TotalInWords spells the total for the printed invoice, or returns "".
func (inv *Invoice) TotalInWords() string {
	return words.Naira(inv.Totals().Total)
}

func lineError(i int, err error) error {
	return fmt.Errorf("item %d: %w", i+1, err)
}
