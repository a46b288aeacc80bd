// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the encrypted, self-describing container persisted for every
// vault record. All three fields are standard base64 strings:
//   - Ciphertext: AES-256-GCM output with the 16-byte tag appended;
//   - Nonce:      the 12-byte GCM nonce;
//   - Salt:       the 16-byte PBKDF2 salt used to derive the record key.
//
// An Envelope is never modified after creation. Storage treats it as opaque.
type Envelope struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	Salt       string `json:"salt"`
}
