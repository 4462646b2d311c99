// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of SmokeStack: required catalog
// fields on the server and the placeholder PIN rules on the client.
//
// Each validator accepts a value and an optional list of field names that
// restricts which checks run. Without fields a validator applies its full
// default set.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
