// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

//go:generate mockgen -source=interfaces.go -destination=../mock/session_holder_mock.go -package=mock

// Holder is the capability handed to every encrypting or decrypting
// operation. Implementations must refuse to run fn while locked.
type Holder interface {
	// WithSecret calls fn with the passphrase. fn must not retain the slice.
	// Returns [ErrNotUnlocked] without calling fn while locked.
	WithSecret(fn func(secret []byte) error) error

	// IsUnlocked reports whether a passphrase is currently held.
	IsUnlocked() bool
}
