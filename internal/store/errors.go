// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a delete targets an id that does
	// not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordExists is returned when an insert collides with an existing id.
	ErrRecordExists = errors.New("record already exists")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to iterate record rows")
)
