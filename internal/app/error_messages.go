// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// authority server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies. Keeping them in one place keeps the wording consistent
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgUnknownCategory = "unknown category"
	MsgUnknownDataKind = "unknown data kind"

	// MsgInvalidRevision is returned when the revision query parameter is
	// not a non-negative integer.
	MsgInvalidRevision = "invalid revision"

	// MsgInvalidHashPrefix is returned when a matches lookup carries a hash
	// prefix that is too short or not lowercase hex.
	MsgInvalidHashPrefix = "invalid hash prefix"

	MsgServiceUnavailable = "service unavailable, try again later"
)
