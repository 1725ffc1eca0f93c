// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks API input before it reaches storage.
//
// [RequestValidator] enforces the rules declared in the `validate` struct tags
// of the request models, including the custom "notfuture" rule for
// application dates and "jobstatus" for the closed status set. Failures are
// reported as [FieldErrors] keyed by JSON field name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
