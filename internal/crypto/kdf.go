// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor applied to every record.
	// It is not stored with the envelope; changing it makes existing records
	// unreadable.
	DefaultIterations = 310000

	// SaltSize is the length of the random per-record KDF salt.
	SaltSize = 16

	// NonceSize is the AES-GCM nonce length.
	NonceSize = 12

	// KeySize selects AES-256.
	KeySize = 32
)

// DeriveKey stretches secret into a 256-bit AES key using PBKDF2 with
// HMAC-SHA-256. The result is deterministic for the same inputs.
//
// Returns [ErrKeyDerivation] when secret is empty, salt is not [SaltSize]
// bytes long, or iterations is not positive. A weaker key is never returned.
func DeriveKey(secret, salt []byte, iterations int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrKeyDerivation)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKeyDerivation, SaltSize, len(salt))
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", ErrKeyDerivation, iterations)
	}

	return pbkdf2.Key(secret, salt, iterations, KeySize, sha256.New), nil
}
