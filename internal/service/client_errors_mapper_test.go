// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-threat-sync/internal/adapter"
)

func Test_mapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	offline := mapAdapterError(fmt.Errorf("%w: %w", adapter.ErrTransport, adapter.ErrNoConnectivity))
	assert.ErrorIs(t, offline, ErrTransportFailure)
	assert.ErrorIs(t, offline, adapter.ErrNoConnectivity)
	assert.Equal(t, "transport failure: api transport failure: no connectivity", offline.Error())

	decode := mapAdapterError(fmt.Errorf("%w: unexpected end of JSON input", adapter.ErrDecode))
	assert.ErrorIs(t, decode, ErrDecodeFailure)
	assert.NotErrorIs(t, decode, ErrTransportFailure)
}
