// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/account-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService is the server-side use case layer over encrypted records.
// It never decrypts anything.
type AccountService interface {
	Create(ctx context.Context, rec models.NewRecord) (models.Record, error)
	List(ctx context.Context) ([]models.Record, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MirrorQueue accepts created records for asynchronous mirroring.
type MirrorQueue interface {
	Enqueue(rec models.Record, meta models.Meta) bool
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
