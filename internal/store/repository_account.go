// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/models"
)

const accountsTable = "accounts"

var accountColumns = []string{
	"id", "ciphertext", "nonce", "salt", "title", "tags", "created_at", "updated_at",
}

// accountRepository is the SQL implementation of [AccountRepository]. The
// same queries serve PostgreSQL and SQLite; only the placeholder format
// differs.
type accountRepository struct {
	*DB
}

// NewAccountRepository constructs an [AccountRepository] on db.
func NewAccountRepository(db *DB) AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) Create(ctx context.Context, rec models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(rec.ID, rec.Ciphertext, rec.Nonce, rec.Salt, rec.Title, rec.Tags, rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isPgUniqueViolation(err) || isSQLiteUniqueViolation(err) {
			return ErrRecordExists
		}
		log.Err(err).Str("func", "accountRepository.Create").Str("id", rec.ID).Msg("failed to insert record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)
	for rows.Next() {
		var rec models.Record
		scanErr := rows.Scan(
			&rec.ID,
			&rec.Ciphertext,
			&rec.Nonce,
			&rec.Salt,
			&rec.Title,
			&rec.Tags,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accountRepository.List").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "accountRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Str("id", id).Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *accountRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
