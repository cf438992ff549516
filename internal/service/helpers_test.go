// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// denyFs fails writes to one vault path with a permission error.
type denyFs struct {
	afero.Fs
	deny string
}

func (d denyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.ToSlash(name) == "/"+d.deny && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.OpenFile(name, flag, perm)
}

// noRemoveFs refuses to delete anything.
type noRemoveFs struct {
	afero.Fs
}

func (noRemoveFs) Remove(name string) error {
	return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
}

func (noRemoveFs) RemoveAll(name string) error {
	return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
}

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func zipOf(t *testing.T, entries ...models.ArchiveEntry) []byte {
	t.Helper()
	data, err := codec.EncodeZip(entries)
	require.NoError(t, err)
	return data
}

func file(p, contents string) models.ArchiveEntry {
	return models.ArchiveEntry{Path: p, Contents: []byte(contents)}
}

func readVault(t *testing.T, v store.Vault, p string) string {
	t.Helper()
	data, err := v.ReadBinaryFile(context.Background(), p)
	require.NoError(t, err)
	return string(data)
}

func listVault(t *testing.T, v store.Vault) []string {
	t.Helper()
	files, err := v.ListFiles(context.Background())
	require.NoError(t, err)
	return files
}

func vaultTree(t *testing.T, v store.Vault) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	for _, p := range listVault(t, v) {
		tree[p] = readVault(t, v, p)
	}
	return tree
}

var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newMemVault() store.Vault {
	return store.NewVaultFs(afero.NewMemMapFs(), logger.Nop())
}
