// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command tokengen issues a client API token signed with the server key.
// The signing settings are read the same way the server reads them.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

func main() {
	log := logger.NewClientLogger("threat-sync-tokengen")

	clientID := os.Getenv("TOKENGEN_CLIENT_ID")
	if clientID == "" {
		clientID = utils.NewUUIDGenerator().Generate()
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, clientID, cfg.App.TokenDuration, cfg.App.TokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	log.Info().Str("client_id", clientID).Time("expires_at", expiresAt(token)).Msg("token issued")
	fmt.Println(token.SignedString)
}

func expiresAt(token models.Token) (t time.Time) {
	if token.ExpiresAt != nil {
		t = token.ExpiresAt.Time
	}
	return t
}
