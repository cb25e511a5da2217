// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package models

// SaleSubmission is the request body for POST /sales. Observations carries
// the auto-generated note that the sale was recorded offline and when it was
// resubmitted.
type SaleSubmission struct {
	Items         []SaleItem    `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Observations  string        `json:"observations,omitempty"`
}

// ProductPage is the response body of GET /products?skip=&limit=.
type ProductPage struct {
	Products []CachedProduct `json:"products"`
	HasMore  bool            `json:"has_more"`
}
