// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is a stored vault entry as returned by the server: the opaque
// envelope plus the two plaintext lookup fields.
type Record struct {
	// ID is the UUID assigned by storage on creation.
	ID string `json:"id"`

	Envelope

	// Title is a short human label, e.g. "github main". May be empty.
	Title string `json:"title"`

	// Tags is a comma separated list, e.g. "work,devops". May be empty.
	Tags string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord is the payload sent to storage to create a [Record].
type NewRecord struct {
	Envelope

	Title string `json:"title"`
	Tags  string `json:"tags"`

	// Meta holds free-form, non-secret classification values (platform,
	// priority, status and so on). It is never persisted in the database;
	// the server only forwards it to the spreadsheet mirror.
	Meta Meta `json:"meta,omitempty"`
}

// Meta is a set of non-secret key/value pairs attached to a new record.
type Meta map[string]string

// Public returns a copy of m without keys that name a secret account field.
// Credentials must never leave the client outside an envelope.
func (m Meta) Public() Meta {
	if len(m) == 0 {
		return nil
	}
	out := make(Meta, len(m))
	for k, v := range m {
		if IsSecretField(k) || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// HealthResponse is returned by the storage health endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}
