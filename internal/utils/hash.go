// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPrefixLength is the number of hex characters of a SHA-256 digest the
// datasets and the matches endpoint are keyed by.
const HashPrefixLength = 8

// SHA256Hex returns the lowercase hex SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashPrefix truncates a hex digest to [HashPrefixLength] characters.
// Shorter input is returned unchanged.
func HashPrefix(hash string) string {
	if len(hash) <= HashPrefixLength {
		return hash
	}
	return hash[:HashPrefixLength]
}

// IsLowerHex reports whether s is a non-empty lowercase hex string.
func IsLowerHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
