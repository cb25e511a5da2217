package models

import "time"

// CachedProduct is a local mirror of one catalog entry as the server last
// returned it. The mirror is best-effort and possibly stale; all fields are
// copied verbatim from the server and are read-only on the client.
type CachedProduct struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Barcode     string     `json:"barcode,omitempty"`
	CostPrice   float64    `json:"cost_price"`
	SalePrice   float64    `json:"sale_price"`
	Stock       int        `json:"stock"`
	MinStock    int        `json:"min_stock"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
