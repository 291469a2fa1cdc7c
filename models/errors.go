// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	ErrUnknownThreatKind = errors.New("unknown threat kind")
	ErrUnknownDataKind   = errors.New("unknown data kind")
	ErrMalformedElement  = errors.New("malformed dataset element")
)
