// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

// Package adapter provides transport-layer abstractions for communicating with
// the point-of-sale backend.
//
// The primary abstraction is [ServerAdapter], which decouples the sync service
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/dcastanera/possync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty string clears the token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SubmitSale sends a single recorded sale to the backend. A nil return
	// means the server accepted the sale; any error means the sale must stay
	// queued locally.
	SubmitSale(ctx context.Context, sale models.SaleSubmission) error

	// FetchProductPage retrieves one page of the product catalog, skipping the
	// first skip records and returning at most limit records. The returned
	// page reports via HasMore whether further records exist past this page.
	FetchProductPage(ctx context.Context, skip, limit int) (models.ProductPage, error)

	// Ping performs a lightweight reachability check against the backend.
	// A nil return means the backend answered; it is used as the
	// connectivity probe and carries no payload.
	Ping(ctx context.Context) error
}
