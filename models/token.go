// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a shared bearer credential issued to API clients.
//
// The "sub" claim names the client the token was issued to; it is used only
// for logging on the server side.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
}

// ClientID returns the subject the token was issued to.
func (t *Token) ClientID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client id from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting client id from token: empty subject")
	}
	return subject, nil
}

func (t *Token) String() string {
	return t.SignedString
}
