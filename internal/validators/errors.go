// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNegativeRevision    = errors.New("revision must not be negative")
	ErrStaleRevision       = errors.New("revision is older than the known revision")
	ErrOverlappingElements = errors.New("element is both inserted and removed")
	ErrInvalidElement      = errors.New("invalid element")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidDataKind     = errors.New("invalid data kind")
	ErrInvalidHashPrefix   = errors.New("invalid hash prefix")
	ErrEmptyMatches        = errors.New("matches list cannot be empty")
	ErrInvalidMatch        = errors.New("invalid match")
)
