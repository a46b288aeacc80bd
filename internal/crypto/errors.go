// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrKeyDerivation is returned when a key cannot be derived, e.g. for an
	// empty secret, a salt of the wrong size or a non-positive iteration count.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrAuthentication is returned when GCM tag verification fails. A wrong
	// secret and a tampered envelope are deliberately indistinguishable.
	ErrAuthentication = errors.New("envelope authentication failed")

	// ErrMalformedEnvelope is returned when an envelope field is not valid
	// base64 or decodes to the wrong length.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrDeserialization is returned when authenticated plaintext is not
	// valid JSON for the requested target.
	ErrDeserialization = errors.New("plaintext deserialization failed")
)
