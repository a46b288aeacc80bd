// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/migrations"
)

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

// DB wraps *sql.DB with the dialect-specific pieces the repositories need.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the DSN scheme:
// "postgres://" and "postgresql://" open PostgreSQL, "file:" or a path
// ending in ".db"/".sqlite" opens SQLite.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// the retry budget is spent.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Dur("delay", delay).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = op()
	}
	return err
}
