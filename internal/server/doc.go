// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the transport servers of the authority
// server.
//
// It provides the HTTP and gRPC server lifecycles, including startup and
// graceful shutdown of all enabled transports.
package server
