// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema migrations for every supported
// database and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// dirs maps a dialect to its directory inside embedMigrations.
var dirs = map[Dialect]string{
	Postgres: "postgres",
	SQLite:   "sqlite",
}

// Migrate applies all pending migrations for dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
