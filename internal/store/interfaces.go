// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/account-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// AccountRepository persists encrypted vault records. It never sees
// plaintext credentials.
type AccountRepository interface {
	// Create inserts rec as-is; id and timestamps are assigned by the caller.
	Create(ctx context.Context, rec models.Record) error
	// List returns all records, newest first.
	List(ctx context.Context) ([]models.Record, error)
	// Delete removes the record with id or returns [ErrRecordNotFound].
	Delete(ctx context.Context, id string) error
	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
}

// Mirror receives a copy of every created record. Implementations are
// best effort; the caller logs and drops their errors.
type Mirror interface {
	Append(ctx context.Context, rec models.Record, meta models.Meta) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
