// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
)

func testServerApp() config.ServerApp {
	return config.ServerApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-threat-sync",
		TokenDuration: time.Hour,
		Version:       "1.0.0",
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := NewAuthService(testServerApp(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "edge-node-7")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	clientID, err := parsed.ClientID()
	require.NoError(t, err)
	assert.Equal(t, "edge-node-7", clientID)
}

func TestAuthService_CreateToken_EmptyClientID(t *testing.T) {
	svc := NewAuthService(testServerApp(), logger.Nop())

	_, err := svc.CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	issued, err := NewAuthService(testServerApp(), logger.Nop()).CreateToken(ctx, "edge-node-7")
	require.NoError(t, err)

	otherKey := testServerApp()
	otherKey.TokenSignKey = "another-key"

	otherIssuer := testServerApp()
	otherIssuer.TokenIssuer = "someone-else"

	tests := []struct {
		name  string
		cfg   config.ServerApp
		token string
	}{
		{name: "wrong key", cfg: otherKey, token: issued.SignedString},
		{name: "wrong issuer", cfg: otherIssuer, token: issued.SignedString},
		{name: "garbage", cfg: testServerApp(), token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAuthService(tt.cfg, logger.Nop()).ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
