// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/account-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// VaultService is the client-side facade used by the TUI. It owns the
// session key and is the only place where plaintext accounts are sealed
// into envelopes.
type VaultService interface {
	// Unlock keeps secret for the session. The caller's slice is wiped.
	Unlock(secret []byte) error
	// Lock discards the session secret.
	Lock()
	IsUnlocked() bool

	// Create encrypts acc locally and stores the envelope together with
	// the plaintext title and tags. Credential keys are dropped from meta.
	Create(ctx context.Context, acc models.Account, meta models.Meta) (models.Record, error)
	// List fetches every stored record, newest first.
	List(ctx context.Context) ([]models.Record, error)
	// Reveal copies one decrypted field of rec to the clipboard. It reports
	// false without error when the field is absent or empty.
	Reveal(rec models.Record, field string) (bool, error)
	Delete(ctx context.Context, id string) error

	// ClipboardTTL is how long a revealed value stays on the clipboard.
	ClipboardTTL() time.Duration
}
