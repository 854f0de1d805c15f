// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks entities before they reach storage.
//
// A Validator takes any value and an optional list of field names. Without
// fields every rule of the value's type is checked; with fields only the
// named ones are.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
