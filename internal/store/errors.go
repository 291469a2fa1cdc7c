// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Low-level database operation errors. Repository methods wrap them so
// callers can tell a failed query from a failed commit with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when a squirrel builder cannot render
	// a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a commit fails. The
	// transaction is rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")
)

var (
	// ErrUnsupportedDataKind is returned for a data kind without a table.
	ErrUnsupportedDataKind = errors.New("unsupported data kind")

	// ErrReadingKeyValueStore is returned when the key-value file cannot be
	// read or decoded.
	ErrReadingKeyValueStore = errors.New("failed to read key-value store")

	// ErrWritingKeyValueStore is returned when the key-value file cannot be
	// written.
	ErrWritingKeyValueStore = errors.New("failed to write key-value store")

	// ErrNilDB is returned when a repository is built without a connection.
	ErrNilDB = errors.New("database connection is nil")
)
