// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"time"
)

// APIRequest describes a single GET call to the threat intelligence API.
type APIRequest struct {
	// Path is relative to the configured API base URL, e.g. "/hashPrefix".
	Path string
	// Query holds the query string parameters.
	Query url.Values
	// Headers are extra request headers. The bearer token is added by the
	// transport.
	Headers map[string]string
	// Timeout bounds the whole call including retries. Zero means the
	// transport default.
	Timeout time.Duration
}
