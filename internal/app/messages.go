// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

// Package app contains shared application-layer constants used across the
// devserver handlers and the client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidSalePayload is returned when a sale submission body cannot
	// be decoded.
	MsgInvalidSalePayload = "invalid sale payload"

	// MsgSaleHasNoItems is returned when a sale submission contains an
	// empty item list.
	MsgSaleHasNoItems = "sale has no items"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
