package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("w: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}

func TestUniqueViolationDetection(t *testing.T) {
	assert.True(t, isPgUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, isPgUniqueViolation(errors.New("x")))
	assert.True(t, isSQLiteUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, isSQLiteUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}
