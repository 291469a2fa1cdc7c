// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults.
type HTTPClientOptions struct {
	BaseURL          string
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

// NewHTTPClient returns an independent resty client. Requests are retried on
// connection errors and 5xx answers up to opts.RetryCount times with resty's
// jittered exponential backoff.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		AddRetryCondition(RetryOnServerError)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.RetryWaitTime > 0 {
		client.SetRetryWaitTime(opts.RetryWaitTime)
	}
	if opts.RetryMaxWaitTime > 0 {
		client.SetRetryMaxWaitTime(opts.RetryMaxWaitTime)
	}

	return &HTTPClient{Client: client}
}

// RetryOnServerError retries transport errors and 5xx responses, but not a
// cancelled or expired request context.
func RetryOnServerError(r *resty.Response, err error) bool {
	if r != nil && r.Request != nil && r.Request.Context().Err() != nil {
		return false
	}
	if err != nil {
		return true
	}
	return r != nil && r.StatusCode() >= http.StatusInternalServerError
}
