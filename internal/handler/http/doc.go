// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP API of the reference authority server.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer.
package http
