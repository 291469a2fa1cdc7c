// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is the class of every failure to obtain a response body.
	ErrTransport = errors.New("api transport failure")
	// ErrNoConnectivity marks a request that never reached the server.
	ErrNoConnectivity = errors.New("no connectivity")
	// ErrTimeout marks a request that ran out of its time budget.
	ErrTimeout = errors.New("request timeout")
	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("circuit breaker open")
	// ErrDecode marks a response body that is not the expected JSON.
	ErrDecode = errors.New("decode failure")
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// StatusError is a non-2xx answer of the API. It matches [ErrTransport] and
// the sentinel of its status code with [errors.Is].
type StatusError struct {
	StatusCode int
	Body       string

	sentinel error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.sentinel)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.sentinel, e.Body)
}

func (e *StatusError) Unwrap() []error {
	return []error{ErrTransport, e.sentinel}
}

// ServerFault reports whether the status points at the server side.
func (e *StatusError) ServerFault() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
