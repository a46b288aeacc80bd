// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/account-vault/models"
	"github.com/awnumar/memguard"
)

// gcmTagSize is the minimal length of a valid ciphertext.
const gcmTagSize = 16

var b64 = base64.StdEncoding.Strict()

// EnvelopeCodec is the AES-256-GCM implementation of [Codec]. Each record
// gets its own key derived from the passphrase and a random salt.
type EnvelopeCodec struct {
	iterations int
	random     io.Reader
}

// Option customizes an [EnvelopeCodec].
type Option func(*EnvelopeCodec)

// WithIterations overrides the PBKDF2 iteration count. Records sealed with a
// non-default count can only be opened by a codec configured the same way.
func WithIterations(n int) Option {
	return func(c *EnvelopeCodec) {
		c.iterations = n
	}
}

// WithRandom replaces the CSPRNG used for salts and nonces.
func WithRandom(r io.Reader) Option {
	return func(c *EnvelopeCodec) {
		c.random = r
	}
}

// NewEnvelopeCodec constructs an [EnvelopeCodec] using [DefaultIterations]
// and crypto/rand unless overridden by opts.
func NewEnvelopeCodec(opts ...Option) *EnvelopeCodec {
	c := &EnvelopeCodec{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [Codec].
func (c *EnvelopeCodec) Encrypt(record any, secret []byte) (models.Envelope, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(record)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal record: %w", err)
	}
	defer memguard.WipeBytes(plaintext)

	// 2. Fresh salt and nonce
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// 3. Derive the record key
	gcm, err := c.newGCM(secret, salt)
	if err != nil {
		return models.Envelope{}, err
	}

	// 4. Seal: ciphertext || tag
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return models.Envelope{
		Ciphertext: b64.EncodeToString(ciphertext),
		Nonce:      b64.EncodeToString(nonce),
		Salt:       b64.EncodeToString(salt),
	}, nil
}

// Decrypt implements [Codec]. Errors wrap exactly one of
// [ErrMalformedEnvelope], [ErrKeyDerivation], [ErrAuthentication] or
// [ErrDeserialization].
func (c *EnvelopeCodec) Decrypt(env models.Envelope, secret []byte, target any) error {
	// 1. Decode and size-check every field before any key work
	ciphertext, nonce, salt, err := DecodeEnvelope(env)
	if err != nil {
		return err
	}

	// 2. Derive the record key
	gcm, err := c.newGCM(secret, salt)
	if err != nil {
		return err
	}

	// 3. Verify tag and decrypt
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrAuthentication
	}
	defer memguard.WipeBytes(plaintext)

	// 4. Unmarshal into target
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}

	return nil
}

func (c *EnvelopeCodec) newGCM(secret, salt []byte) (cipher.AEAD, error) {
	key, err := DeriveKey(secret, salt, c.iterations)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// DecodeEnvelope base64-decodes the three envelope fields and checks their
// sizes. It performs no cryptography, so storage can use it to reject
// garbage without holding any key.
func DecodeEnvelope(env models.Envelope) (ciphertext, nonce, salt []byte, err error) {
	ciphertext, err = b64.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext: %v", ErrMalformedEnvelope, err)
	}
	if len(ciphertext) < gcmTagSize {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrMalformedEnvelope)
	}

	nonce, err = b64.DecodeString(env.Nonce)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: nonce: %v", ErrMalformedEnvelope, err)
	}
	if len(nonce) != NonceSize {
		return nil, nil, nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedEnvelope, NonceSize, len(nonce))
	}

	salt, err = b64.DecodeString(env.Salt)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt: %v", ErrMalformedEnvelope, err)
	}
	if len(salt) != SaltSize {
		return nil, nil, nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrMalformedEnvelope, SaltSize, len(salt))
	}

	return ciphertext, nonce, salt, nil
}
