// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNilServices = errors.New("client services are not initialized")
	ErrUnknownMode = errors.New("unknown client mode")
)
