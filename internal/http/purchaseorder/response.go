package purchaseorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
)

type itemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type purchaseOrderResponse struct {
	ID         uuid.UUID       `json:"id"`
	VendorID   uuid.UUID       `json:"vendor_id"`
	VendorName string          `json:"vendor_name"`
	PONumber   string          `json:"po_number"`
	Date       string          `json:"date"`
	Terms      string          `json:"terms"`
	Items      []itemResponse  `json:"items"`
	SubTotal   decimal.Decimal `json:"sub_total"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(po *purchaseorder.PurchaseOrder) purchaseOrderResponse {
	totals := po.Totals()

	resp := purchaseOrderResponse{
		ID:         po.ID,
		VendorID:   po.VendorID,
		VendorName: po.VendorName,
		PONumber:   po.Number,
		Date:       po.Date.Format(time.DateOnly),
		Terms:      po.Terms,
		Items:      make([]itemResponse, len(po.Items)),
		SubTotal:   totals.SubTotal,
		Total:      totals.Total,
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
	}

	for i, item := range po.Items {
		resp.Items[i] = itemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		}
	}

	return resp
}

func toResponseList(pos []*purchaseorder.PurchaseOrder) []purchaseOrderResponse {
	resp := make([]purchaseOrderResponse, len(pos))
	for i, po := range pos {
		resp[i] = toResponse(po)
	}

	return resp
}
