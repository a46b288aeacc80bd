// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks untrusted input at the server boundary.
//
// A Validator accepts a value and an optional list of field names; when
// fields are given only those are checked.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
