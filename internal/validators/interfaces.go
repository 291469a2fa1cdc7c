// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks data crossing a trust boundary: changesets
// received from the threat intelligence API on the client, and publish,
// match and query payloads on the authority server.
//
// Validators accept the value to check and, optionally, the names of the
// fields to restrict validation to. Without field names every rule applies.
package validators

import "context"

// Validator validates a value, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
