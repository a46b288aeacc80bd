// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/account-vault/internal/adapter"
	"github.com/MKhiriev/account-vault/internal/crypto"
	"github.com/MKhiriev/account-vault/internal/disclosure"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/session"
	"github.com/MKhiriev/account-vault/models"
)

type vaultService struct {
	keys     *session.KeyHolder
	codec    crypto.Codec
	store    adapter.RecordStore
	revealer *disclosure.Revealer

	logger *logger.Logger
}

// NewVaultService wires the session key holder, the envelope codec, the
// storage adapter and the revealer into a [VaultService].
func NewVaultService(keys *session.KeyHolder, codec crypto.Codec, store adapter.RecordStore, revealer *disclosure.Revealer, logger *logger.Logger) (VaultService, error) {
	if keys == nil || codec == nil || store == nil || revealer == nil {
		return nil, ErrNilDependency
	}

	return &vaultService{
		keys:     keys,
		codec:    codec,
		store:    store,
		revealer: revealer,
		logger:   logger,
	}, nil
}

func (s *vaultService) Unlock(secret []byte) error {
	return s.keys.Unlock(secret)
}

func (s *vaultService) Lock() {
	s.keys.Lock()
}

func (s *vaultService) IsUnlocked() bool {
	return s.keys.IsUnlocked()
}

func (s *vaultService) Create(ctx context.Context, acc models.Account, meta models.Meta) (models.Record, error) {
	var env models.Envelope
	err := s.keys.WithSecret(func(secret []byte) error {
		var encErr error
		env, encErr = s.codec.Encrypt(acc, secret)
		return encErr
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("encrypt account: %w", err)
	}

	rec, err := s.store.Store(ctx, models.NewRecord{
		Envelope: env,
		Title:    acc.Title,
		Tags:     acc.Tags,
		Meta:     meta.Public(),
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("store account: %w", err)
	}

	s.logger.Debug().Str("func", "vaultService.Create").Str("id", rec.ID).Msg("account stored")
	return rec, nil
}

func (s *vaultService) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}
	return records, nil
}

func (s *vaultService) Reveal(rec models.Record, field string) (bool, error) {
	return s.revealer.Reveal(s.keys, rec.Envelope, field)
}

func (s *vaultService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}
	return nil
}

func (s *vaultService) ClipboardTTL() time.Duration {
	return s.revealer.TTL()
}

// FilterRecords returns the records whose title or tags contain query,
// ignoring case. An empty query matches everything.
func FilterRecords(records []models.Record, query string) []models.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), query) ||
			strings.Contains(strings.ToLower(r.Tags), query) {
			out = append(out, r)
		}
	}
	return out
}

// SplitTags turns a comma separated tag string into trimmed, non-empty tags.
func SplitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
