// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's storage boundary.
//
// The vault client only needs to store an envelope, fetch every stored
// envelope and delete one by id. [RecordStore] captures exactly that and
// keeps the service layer unaware of the transport. The package ships an
// HTTP/REST implementation ([NewHTTPRecordStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/account-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore is the storage collaborator seen from the client. It only ever
// carries ciphertext envelopes plus the plaintext title and tags.
type RecordStore interface {
	// Store persists rec and returns it with the id and timestamps assigned
	// by storage.
	Store(ctx context.Context, rec models.NewRecord) (models.Record, error)

	// FetchAll returns every stored record, newest first.
	FetchAll(ctx context.Context) ([]models.Record, error)

	// Delete removes the record with id. Returns [ErrNotFound] (wrapped)
	// when storage has no such record.
	Delete(ctx context.Context, id string) error

	// Ping checks that storage is reachable.
	Ping(ctx context.Context) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
