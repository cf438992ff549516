// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// WriteFailure is an entry that could not be written.
type WriteFailure struct {
	Path string
	Err  error
}

// MaterializeResult lists what a Materialize call did, in entry order.
type MaterializeResult struct {
	// Written holds the vault paths of files created or overwritten.
	Written []string
	// Skipped holds entry paths left out by the include/exclude filter.
	Skipped []string
	// Failed holds the entries that could not be written.
	Failed []WriteFailure
}

// FailedPaths returns the vault paths of all failed entries.
func (r MaterializeResult) FailedPaths() []string {
	if len(r.Failed) == 0 {
		return nil
	}

	paths := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		paths = append(paths, f.Path)
	}
	return paths
}

type materializer struct {
	vault  store.Vault
	logger *logger.Logger
}

// NewMaterializer returns a [Materializer] writing into vault. Entries are
// written sequentially in archive order so a later entry for the same path
// wins.
func NewMaterializer(vault store.Vault, logger *logger.Logger) Materializer {
	return &materializer{vault: vault, logger: logger}
}

func (m *materializer) Materialize(ctx context.Context, entries []models.ArchiveEntry, targetRoot string, opts ...MaterializeOption) MaterializeResult {
	var o materializeOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.FromContext(ctx)
	root := cleanVaultPath(targetRoot)

	var result MaterializeResult
	if root != "" {
		if err := m.vault.CreateFolder(ctx, root); err != nil {
			log.Error().Err(err).Str("target", root).Msg("cannot create target folder")
			for _, entry := range entries {
				result.Failed = append(result.Failed, WriteFailure{Path: path.Join(root, entry.Path), Err: err})
			}
			return result
		}
	}

	for _, entry := range entries {
		if !o.match(entry.Path) {
			result.Skipped = append(result.Skipped, entry.Path)
			continue
		}

		dest, err := m.write(ctx, root, entry)
		if err != nil {
			if dest == "" {
				dest = path.Join(root, entry.Path)
			}
			log.Warn().Err(err).Str("path", dest).Msg("failed to write archive entry")
			result.Failed = append(result.Failed, WriteFailure{Path: dest, Err: err})
			continue
		}

		if !entry.IsDir {
			result.Written = append(result.Written, dest)
		}
	}

	m.logger.Debug().
		Int("written", len(result.Written)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("materialization finished")

	return result
}

func (m *materializer) write(ctx context.Context, root string, entry models.ArchiveEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dest, err := m.resolve(root, entry.Path)
	if err != nil {
		return "", err
	}

	if entry.IsDir {
		return dest, m.vault.CreateFolder(ctx, dest)
	}

	if parent := path.Dir(dest); parent != "." {
		if err = m.vault.CreateFolder(ctx, parent); err != nil {
			return dest, err
		}
	}

	return dest, m.vault.WriteBinaryFile(ctx, dest, entry.Contents)
}

// resolve maps an entry path to its vault path under root, following
// symlinks already in the vault, and rejects destinations outside root.
func (m *materializer) resolve(root, entryPath string) (string, error) {
	clean, err := codec.NormalizeEntryPath(entryPath)
	if err != nil {
		return "", err
	}

	joined, err := securejoin.SecureJoinVFS("/", path.Join(root, clean), m.vault)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", entryPath, err)
	}

	dest := cleanVaultPath(filepath.ToSlash(joined))
	if root != "" && dest != root && !strings.HasPrefix(dest, root+"/") {
		return "", fmt.Errorf("%s: %w", entryPath, ErrEscapesTarget)
	}

	return dest, nil
}

// cleanVaultPath returns p relative to the vault root, slash separated,
// without leading slash; the vault root itself is "".
func cleanVaultPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
}
