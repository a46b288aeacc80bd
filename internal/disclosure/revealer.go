// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package disclosure

import (
	"fmt"
	"time"

	"github.com/MKhiriev/account-vault/internal/crypto"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/session"
	"github.com/MKhiriev/account-vault/models"
)

// DefaultTTL is how long a revealed value stays in the sink.
const DefaultTTL = 25 * time.Second

// Revealer decrypts records and exposes one field at a time through a [Sink].
type Revealer struct {
	codec  crypto.Codec
	sink   Sink
	ttl    time.Duration
	logger *logger.Logger
}

// NewRevealer constructs a [Revealer]. A non-positive ttl selects [DefaultTTL].
func NewRevealer(codec crypto.Codec, sink Sink, ttl time.Duration, log *logger.Logger) *Revealer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Revealer{
		codec:  codec,
		sink:   sink,
		ttl:    ttl,
		logger: log,
	}
}

// TTL returns the delay after which a revealed value is cleared.
func (r *Revealer) TTL() time.Duration {
	return r.ttl
}

// Reveal decrypts env with the passphrase held by keys and writes the value
// of field to the sink. It reports whether anything was written.
//
// A field that is absent or empty in the decrypted record is a silent no-op:
// (false, nil) and the sink is untouched. Decryption errors are returned
// unchanged ([session.ErrNotUnlocked], [crypto.ErrAuthentication], ...);
// a failed sink write wraps [ErrSinkWrite].
//
// After a successful write a clear is scheduled for TTL later. It runs only
// if the sink still holds the revealed value, and its failures are logged.
func (r *Revealer) Reveal(keys session.Holder, env models.Envelope, field string) (bool, error) {
	var record map[string]any
	err := keys.WithSecret(func(secret []byte) error {
		return r.codec.Decrypt(env, secret, &record)
	})
	if err != nil {
		return false, err
	}

	value := fieldValue(record, field)
	if value == "" {
		return false, nil
	}

	if err := r.sink.Write(value); err != nil {
		return false, fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}

	time.AfterFunc(r.ttl, func() { r.clearIfUnchanged(value, field) })
	return true, nil
}

func (r *Revealer) clearIfUnchanged(value, field string) {
	log := r.logger.With().Str("func", "Revealer.clearIfUnchanged").Str("field", field).Logger()

	current, err := r.sink.Read()
	if err != nil {
		log.Warn().Err(err).Msg("could not read sink, leaving value in place")
		return
	}
	if current != value {
		log.Debug().Msg("sink contents changed, skipping clear")
		return
	}
	if err := r.sink.Clear(); err != nil {
		log.Warn().Err(err).Msg("could not clear sink")
		return
	}
	log.Debug().Msg("revealed value cleared")
}

func fieldValue(record map[string]any, field string) string {
	v, ok := record[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
