package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
)

// itemRecord is the JSONB shape of a stored line item. Derived amounts are
// not stored.
type itemRecord struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         bool            `json:"tax"`
}

func encodeItems(items []invoice.Item) ([]byte, error) {
	records := make([]itemRecord, len(items))
	for i, it := range items {
		records[i] = itemRecord(it)
	}

	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding items: %w", err)
	}

	return b, nil
}

func decodeItems(b []byte) ([]invoice.Item, error) {
	var records []itemRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	items := make([]invoice.Item, len(records))
	for i, r := range records {
		items[i] = invoice.Item(r)
	}

	return items, nil
}
