// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the threat data sync client runtime.
//
// It wires client services, the features provider and the metrics endpoint
// into a single process lifecycle: either a long-lived periodic scheduler or
// a one-shot batch update.
package client
