package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/migrations"
	"github.com/MKhiriev/account-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newPostgresDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            migrations.Postgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func sampleRecord() models.Record {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.Record{
		ID: "0b6f3e0c-7d0a-4c55-9a51-3e5c1e1c2f10",
		Envelope: models.Envelope{
			Ciphertext: "Y2lwaGVydGV4dC1ieXRlcy0xNg==",
			Nonce:      "AAAAAAAAAAAAAAAA",
			Salt:       "AAAAAAAAAAAAAAAAAAAAAA==",
		},
		Title:     "github main",
		Tags:      "work,devops",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var recordColumns = []string{"id", "ciphertext", "nonce", "salt", "title", "tags", "created_at", "updated_at"}

// ── Create ───────────────────────────────────────────────────────────────────

func TestAccountRepository_Create(t *testing.T) {
	rec := sampleRecord()

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`INSERT INTO accounts \(id,ciphertext,nonce,salt,title,tags,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\)`).
					WithArgs(rec.ID, rec.Ciphertext, rec.Nonce, rec.Salt, rec.Title, rec.Tags, rec.CreatedAt, rec.UpdatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate id",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`INSERT INTO accounts`).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: ErrRecordExists,
		},
		{
			name: "generic failure",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`INSERT INTO accounts`).WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "retryable failure then success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`INSERT INTO accounts`).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
				m.ExpectExec(`INSERT INTO accounts`).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := NewAccountRepository(newPostgresDBFromSQL(db))

			err := repo.Create(testContext(), rec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAccountRepository_List(t *testing.T) {
	rec := sampleRecord()
	older := rec
	older.ID = "1c2d3e4f-0000-4000-8000-000000000000"
	older.CreatedAt = rec.CreatedAt.Add(-time.Hour)

	t.Run("success newest first", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`SELECT id, ciphertext, nonce, salt, title, tags, created_at, updated_at FROM accounts ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(rec.ID, rec.Ciphertext, rec.Nonce, rec.Salt, rec.Title, rec.Tags, rec.CreatedAt, rec.UpdatedAt).
				AddRow(older.ID, older.Ciphertext, older.Nonce, older.Salt, older.Title, older.Tags, older.CreatedAt, older.UpdatedAt))

		got, err := NewAccountRepository(newPostgresDBFromSQL(db)).List(testContext())
		require.NoError(t, err)
		assert.Equal(t, []models.Record{rec, older}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`SELECT .* FROM accounts`).WillReturnRows(sqlmock.NewRows(recordColumns))

		got, err := NewAccountRepository(newPostgresDBFromSQL(db)).List(testContext())
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`SELECT .* FROM accounts`).WillReturnError(errors.New("conn reset"))

		_, err := NewAccountRepository(newPostgresDBFromSQL(db)).List(testContext())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`SELECT .* FROM accounts`).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(rec.ID, rec.Ciphertext, rec.Nonce, rec.Salt, rec.Title, rec.Tags, "not-a-time", rec.UpdatedAt))

		_, err := NewAccountRepository(newPostgresDBFromSQL(db)).List(testContext())
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("row iteration error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(`SELECT .* FROM accounts`).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(rec.ID, rec.Ciphertext, rec.Nonce, rec.Salt, rec.Title, rec.Tags, rec.CreatedAt, rec.UpdatedAt).
				RowError(0, errors.New("broken row")))

		_, err := NewAccountRepository(newPostgresDBFromSQL(db)).List(testContext())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestAccountRepository_Delete(t *testing.T) {
	id := sampleRecord().ID

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM accounts`).WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "exec error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM accounts`).WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			err := NewAccountRepository(newPostgresDBFromSQL(db)).Delete(testContext(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── SQLite end to end ────────────────────────────────────────────────────────

func TestAccountRepository_SQLite(t *testing.T) {
	ctx := testContext()
	dsn := "file:" + filepath.Join(t.TempDir(), "vault.db")

	db, err := NewConnect(ctx, dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewAccountRepository(db)
	require.NoError(t, repo.Ping(ctx))

	first := sampleRecord()
	second := sampleRecord()
	second.ID = "2d3e4f50-0000-4000-8000-000000000000"
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	second.UpdatedAt = second.CreatedAt

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.ErrorIs(t, repo.Create(ctx, first), ErrRecordExists)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest first")
	assert.Equal(t, first.Envelope, got[1].Envelope)
	assert.True(t, first.CreatedAt.Equal(got[1].CreatedAt))

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrRecordNotFound)
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), "mysql://root@localhost/vault", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
