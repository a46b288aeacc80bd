// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// KeyHolder is the in-memory [Holder] backed by a memguard enclave.
// The zero value is a locked holder ready for use.
type KeyHolder struct {
	mu      sync.RWMutex
	enclave *memguard.Enclave
}

// NewKeyHolder returns a locked [KeyHolder].
func NewKeyHolder() *KeyHolder {
	return &KeyHolder{}
}

// Unlock stores secret and moves the holder to the unlocked state, replacing
// any previously held passphrase. secret is wiped before Unlock returns.
//
// An empty secret returns [ErrEmptySecret] and leaves the holder locked.
func (h *KeyHolder) Unlock(secret []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(secret) == 0 {
		h.enclave = nil
		return ErrEmptySecret
	}

	// NewEnclave wipes secret.
	h.enclave = memguard.NewEnclave(secret)
	return nil
}

// Lock drops the held passphrase. Locking a locked holder is a no-op.
func (h *KeyHolder) Lock() {
	h.mu.Lock()
	h.enclave = nil
	h.mu.Unlock()
}

// IsUnlocked implements [Holder].
func (h *KeyHolder) IsUnlocked() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.enclave != nil
}

// WithSecret implements [Holder]. The plaintext buffer passed to fn is
// destroyed when fn returns. A concurrent Lock does not interrupt a running
// fn; it only affects later calls.
func (h *KeyHolder) WithSecret(fn func(secret []byte) error) error {
	h.mu.RLock()
	enclave := h.enclave
	h.mu.RUnlock()

	if enclave == nil {
		return ErrNotUnlocked
	}

	buf, err := enclave.Open()
	if err != nil {
		return fmt.Errorf("open passphrase enclave: %w", err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}
