package purchaseorder

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/money"
)

// MaxNumberLength bounds caller-supplied PO numbers.
const MaxNumberLength = 50

var ErrNotFound = fmt.Errorf("purchase order %w", document.ErrNotFound)

type PurchaseOrder struct {
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

// New builds an unsaved purchase order. An empty number is assigned when
// the order is first persisted.
func New(vendorID uuid.UUID, date time.Time, terms string, items []Item, number string) *PurchaseOrder {
	if date.IsZero() {
		date = time.Now()
	}

	po := &PurchaseOrder{
		VendorID: vendorID,
		Number:   number,
		Date:     date,
		Terms:    terms,
	}
	po.ReplaceItems(items)

	return po
}

func (po *PurchaseOrder) ReplaceItems(items []Item) {
	po.Items = slices.Clone(items)
}

type Totals struct {
	SubTotal decimal.Decimal
	Total    decimal.Decimal
}

func (po *PurchaseOrder) Totals() Totals {
	amounts := make([]decimal.Decimal, len(po.Items))
	for i, item := range po.Items {
		amounts[i] = item.Amount()
	}

	sum := money.Sum(amounts...)

	return Totals{SubTotal: sum, Total: sum}
}

func lineError(i int, err error) error {
	return fmt.Errorf("item %d: %w", i+1, err)
}
