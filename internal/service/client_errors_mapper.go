// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/internal/adapter"
)

// mapAdapterError classifies an error of the API client as a decode or a
// transport failure.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrDecode):
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
}
