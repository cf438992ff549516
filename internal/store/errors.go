// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Vault errors. Callers match them with [errors.Is].
var (
	ErrEntryExists   = errors.New("vault entry already exists")
	ErrEntryNotFound = errors.New("vault entry not found")
	ErrNotAFolder    = errors.New("vault path is not a folder")
	ErrNotAFile      = errors.New("vault path is not a file")
	ErrParentMissing = errors.New("parent folder does not exist")
)

// History errors.
var (
	// ErrRunNotFound is returned when no run matches the query.
	ErrRunNotFound = errors.New("sync run not found")

	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when a result row cannot be scanned.
	ErrScanningRows = errors.New("failed to scan sync run rows")
)
