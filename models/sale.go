package models

import "time"

// SyncState describes whether a locally recorded sale has been acknowledged
// by the server yet.
type SyncState string

const (
	// SyncStatePending marks a sale that still has to be submitted.
	SyncStatePending SyncState = "pending"

	// SyncStateSynced marks a sale the server has acknowledged. A synced
	// record is never resubmitted; it is only kept for audit until purged.
	SyncStateSynced SyncState = "synced"
)

// PaymentMethod is the enumerated payment tag attached to a sale.
type PaymentMethod string

const (
	// PaymentStandard is a regular sale with no price adjustment.
	PaymentStandard PaymentMethod = "standard"

	// PaymentCashDiscount is a cash sale with the cash discount applied
	// at the register.
	PaymentCashDiscount PaymentMethod = "cash_discount"
)

// SaleItem is a single line of a sale. Items are immutable once the sale
// has been recorded.
type SaleItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Subtotal returns the line total for the item.
func (i SaleItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// PendingSale is a sale captured on this device while the server was not
// reachable (or opportunistically queued). The ID is assigned locally and is
// stable until the sale is acknowledged.
type PendingSale struct {
	ID            string        `json:"id"`
	Items         []SaleItem    `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
	SyncState     SyncState     `json:"sync_state"`
}

// Total returns the sum of all item subtotals.
func (s PendingSale) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Subtotal()
	}
	return total
}
