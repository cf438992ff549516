// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"

	"github.com/MKhiriev/notesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Vault is the local file tree notes are materialized into. Paths are
// vault-relative and slash separated; a leading slash is ignored and ".."
// cannot climb above the vault root.
type Vault interface {
	// ListFiles returns the paths of all regular files in the vault, sorted.
	ListFiles(ctx context.Context) ([]string, error)
	// GetEntryByPath reports what lives at p. A missing path is not an error:
	// it yields an entry of kind [models.EntryAbsent].
	GetEntryByPath(ctx context.Context, p string) (models.VaultEntry, error)
	// DeleteEntry removes the file or folder (recursively) at p.
	DeleteEntry(ctx context.Context, p string) error
	// CreateFolder creates p and any missing parents. An existing folder is
	// not an error; an existing file anywhere on the chain is.
	CreateFolder(ctx context.Context, p string) error
	// CreateBinaryFile creates a new file. It fails if p already exists or
	// its parent folder is missing.
	CreateBinaryFile(ctx context.Context, p string, data []byte) error
	// ReadBinaryFile returns the contents of the file at p.
	ReadBinaryFile(ctx context.Context, p string) ([]byte, error)
	// WriteBinaryFile creates or truncates the file at p. The parent folder
	// must exist.
	WriteBinaryFile(ctx context.Context, p string, data []byte) error

	// Lstat and Readlink take rooted vault paths ("/notes/a.md") and let the
	// vault serve as a filepath-securejoin VFS.
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
}

// HistoryRepository stores one record per finished sync run.
type HistoryRepository interface {
	SaveRun(ctx context.Context, run models.SyncRun) error
	// ListRuns returns the most recent runs first. limit <= 0 means all.
	ListRuns(ctx context.Context, limit int) ([]models.SyncRun, error)
	// LastSuccessful returns the most recent run whose status counts as
	// success, or [ErrRunNotFound].
	LastSuccessful(ctx context.Context) (models.SyncRun, error)
}
