// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingHash is reported when integrity checks are enabled and a
	// request carries no HashSHA256 header.
	ErrMissingHash = errors.New("missing `HashSHA256` header")

	// ErrHashMismatch is reported when the HashSHA256 header does not match
	// the request body.
	ErrHashMismatch = errors.New("integrity check failed")
)
