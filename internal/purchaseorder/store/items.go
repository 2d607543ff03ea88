package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
)

type itemRecord struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func encodeItems(items []purchaseorder.Item) ([]byte, error) {
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

func decodeItems(b []byte) ([]purchaseorder.Item, error) {
	var records []itemRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	items := make([]purchaseorder.Item, len(records))
	for i, r := range records {
		items[i] = purchaseorder.Item(r)
	}

	return items, nil
}
