// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the server:
// context keys, hashing, JSON responses, the resty client factory, bearer
// token handling and identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys to avoid collisions with
// other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// ClientIDCtxKey holds the subject of the bearer token of a request.
	ClientIDCtxKey = contextKey("clientID")
	// TraceIDCtxKey holds the trace id assigned to a request.
	TraceIDCtxKey = contextKey("traceID")
)

// GetClientIDFromContext returns the authenticated client id.
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDCtxKey).(string)
	return clientID, ok
}

// GetTraceIDFromContext returns the request trace id.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
