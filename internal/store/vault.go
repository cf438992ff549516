// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

const (
	folderPerm = 0o755
	filePerm   = 0o644
)

type aferoVault struct {
	fs     afero.Fs
	logger *logger.Logger
}

// NewVault returns a [Vault] rooted at dir on the local disk.
func NewVault(dir string, logger *logger.Logger) (Vault, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault dir: %w", err)
	}
	if err = os.MkdirAll(abs, folderPerm); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}

	return NewVaultFs(afero.NewBasePathFs(afero.NewOsFs(), abs), logger), nil
}

// NewVaultFs returns a [Vault] over an arbitrary afero filesystem whose root
// is the vault root.
func NewVaultFs(fsys afero.Fs, logger *logger.Logger) Vault {
	return &aferoVault{fs: fsys, logger: logger}
}

// fsPath maps a vault path to a rooted, cleaned filesystem path.
func fsPath(p string) string {
	return filepath.FromSlash(path.Clean("/" + filepath.ToSlash(p)))
}

// vaultPath maps a filesystem path back to the vault-relative form.
func vaultPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "/")
}

func (v *aferoVault) ListFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var files []string
	err := afero.Walk(v.fs, fsPath(""), func(name string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, vaultPath(name))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list vault files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

func (v *aferoVault) GetEntryByPath(ctx context.Context, p string) (models.VaultEntry, error) {
	if err := ctx.Err(); err != nil {
		return models.VaultEntry{}, err
	}

	entry := models.VaultEntry{Path: vaultPath(fsPath(p)), Kind: models.EntryAbsent}
	info, err := v.fs.Stat(fsPath(p))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return entry, nil
	case err != nil:
		return entry, fmt.Errorf("stat %s: %w", p, err)
	case info.IsDir():
		entry.Kind = models.EntryFolder
	default:
		entry.Kind = models.EntryFile
	}

	return entry, nil
}

func (v *aferoVault) DeleteEntry(ctx context.Context, p string) error {
	entry, err := v.GetEntryByPath(ctx, p)
	if err != nil {
		return err
	}

	switch entry.Kind {
	case models.EntryAbsent:
		return fmt.Errorf("delete %s: %w", p, ErrEntryNotFound)
	case models.EntryFolder:
		err = v.fs.RemoveAll(fsPath(p))
	default:
		err = v.fs.Remove(fsPath(p))
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", p, err)
	}

	v.logger.Debug().Str("path", entry.Path).Stringer("kind", entry.Kind).Msg("vault entry deleted")
	return nil
}

func (v *aferoVault) CreateFolder(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// afero.MemMapFs.MkdirAll succeeds over an existing file, so walk the
	// chain first.
	name := fsPath(p)
	for _, ancestor := range ancestors(name) {
		info, err := v.fs.Stat(ancestor)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return fmt.Errorf("create folder %s: %w", p, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("create folder %s: %s: %w", p, vaultPath(ancestor), ErrNotAFolder)
		}
	}

	if err := v.fs.MkdirAll(name, folderPerm); err != nil {
		return fmt.Errorf("create folder %s: %w", p, err)
	}

	return nil
}

// ancestors returns name and its parents, root first, excluding the root.
func ancestors(name string) []string {
	var chain []string
	for current := name; current != filepath.Dir(current); current = filepath.Dir(current) {
		chain = append([]string{current}, chain...)
	}
	return chain
}

func (v *aferoVault) checkParent(name string) error {
	parent := filepath.Dir(name)
	info, err := v.fs.Stat(parent)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", vaultPath(parent), ErrParentMissing)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", vaultPath(parent), ErrNotAFolder)
	}
	return nil
}

func (v *aferoVault) CreateBinaryFile(ctx context.Context, p string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := fsPath(p)
	if err := v.checkParent(name); err != nil {
		return fmt.Errorf("create %s: %w", p, err)
	}
	if _, err := v.fs.Stat(name); err == nil {
		return fmt.Errorf("create %s: %w", p, ErrEntryExists)
	}

	f, err := v.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("create %s: %w", p, ErrEntryExists)
		}
		return fmt.Errorf("create %s: %w", p, err)
	}

	if err = writeAndClose(f, data); err != nil {
		return fmt.Errorf("create %s: %w", p, err)
	}
	return nil
}

func (v *aferoVault) ReadBinaryFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(v.fs, fsPath(p))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", p, ErrEntryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	return data, nil
}

func (v *aferoVault) WriteBinaryFile(ctx context.Context, p string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := fsPath(p)
	if err := v.checkParent(name); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	if info, err := v.fs.Stat(name); err == nil && info.IsDir() {
		return fmt.Errorf("write %s: %w", p, ErrNotAFile)
	}

	f, err := v.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}

	if err = writeAndClose(f, data); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}

func writeAndClose(f afero.File, data []byte) error {
	_, err := f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (v *aferoVault) Lstat(name string) (os.FileInfo, error) {
	if lstater, ok := v.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(fsPath(name))
		return info, err
	}
	return v.fs.Stat(fsPath(name))
}

func (v *aferoVault) Readlink(name string) (string, error) {
	if reader, ok := v.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(fsPath(name))
	}
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}
