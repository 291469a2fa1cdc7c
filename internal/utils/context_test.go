// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "clientID", ClientIDCtxKey.String())
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetClientIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "browser-fleet")
	clientID, ok := GetClientIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "browser-fleet", clientID)

	clientID, ok = GetClientIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, clientID)

	ctx = context.WithValue(context.Background(), ClientIDCtxKey, int64(42))
	_, ok = GetClientIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")
	traceID, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", traceID)

	_, ok = GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
}
