// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/store"
	"github.com/MKhiriev/account-vault/internal/utils"
	"github.com/MKhiriev/account-vault/models"
)

type accountService struct {
	repo   store.AccountRepository
	mirror MirrorQueue
	ids    *utils.UUIDGenerator
	now    func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an [AccountService] backed by repo. A nil
// mirror disables mirroring.
func NewAccountService(repo store.AccountRepository, mirror MirrorQueue, logger *logger.Logger) AccountService {
	return &accountService{
		repo:   repo,
		mirror: mirror,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger: logger,
	}
}

// Create assigns an id and timestamps, persists the record and hands a copy
// to the mirror queue. The mirror never affects the result.
func (s *accountService) Create(ctx context.Context, newRec models.NewRecord) (models.Record, error) {
	now := s.now()
	rec := models.Record{
		ID:        s.ids.Generate(),
		Envelope:  newRec.Envelope,
		Title:     newRec.Title,
		Tags:      newRec.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return models.Record{}, err
	}

	if s.mirror != nil {
		s.mirror.Enqueue(rec, newRec.Meta.Public())
	}

	return rec, nil
}

func (s *accountService) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *accountService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
