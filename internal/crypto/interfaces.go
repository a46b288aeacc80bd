// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/account-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec seals arbitrary JSON-serializable values into an [models.Envelope]
// under a passphrase and opens them again.
//
// Every Encrypt call draws a fresh salt and nonce, so the same value sealed
// twice yields unrelated envelopes. Decrypt is all-or-nothing: target is
// only written after the GCM tag has been verified.
type Codec interface {
	// Encrypt serializes record to JSON and seals it under secret.
	Encrypt(record any, secret []byte) (models.Envelope, error)

	// Decrypt opens env with secret and unmarshals the plaintext into
	// target, which must be a non-nil pointer.
	Decrypt(env models.Envelope, secret []byte, target any) error
}
