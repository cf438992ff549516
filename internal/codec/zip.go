// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type zipCodec struct {
	opts   options
	logger *logger.Logger
}

// NewZipCodec returns the deflate-based zip codec.
func NewZipCodec(logger *logger.Logger, opts ...Option) ArchiveCodec {
	return &zipCodec{opts: newOptions(opts), logger: logger}
}

func (z *zipCodec) Extension() string {
	return ".zip"
}

func (z *zipCodec) Decode(data []byte) ([]models.ArchiveEntry, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	// insecure names are handled by NormalizeEntryPath below
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("%w: %w", ErrArchiveCorrupt, err)
	}

	budget := &sizeBudget{remaining: z.opts.maxDecodedSize}
	entries := make([]models.ArchiveEntry, 0, len(reader.File))
	for _, file := range reader.File {
		entryPath, err := NormalizeEntryPath(file.Name)
		if err != nil {
			z.logger.Warn().Err(err).Str("entry", file.Name).Msg("skipping archive entry")
			continue
		}

		if file.FileInfo().IsDir() || strings.HasSuffix(file.Name, "/") {
			entries = append(entries, models.ArchiveEntry{Path: entryPath, IsDir: true})
			continue
		}

		if !file.Mode().IsRegular() {
			z.logger.Warn().Str("entry", file.Name).Msg("skipping non-regular archive entry")
			continue
		}

		contents, err := readZipFile(file, budget)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %w", ErrArchiveCorrupt, file.Name, err)
		}

		entries = append(entries, models.ArchiveEntry{Path: entryPath, Contents: contents})
	}

	return entries, nil
}

func readZipFile(file *zip.File, budget *sizeBudget) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return budget.read(rc)
}

// EncodeZip packs entries into a deflate zip archive in the given order.
// Directory entries become "name/" members.
func EncodeZip(entries []models.ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range entries {
		if entry.IsDir {
			if _, err := zw.Create(strings.TrimSuffix(entry.Path, "/") + "/"); err != nil {
				return nil, fmt.Errorf("add folder %s: %w", entry.Path, err)
			}
			continue
		}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: entry.Path, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("add file %s: %w", entry.Path, err)
		}
		if _, err = w.Write(entry.Contents); err != nil {
			return nil, fmt.Errorf("write file %s: %w", entry.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}

	return buf.Bytes(), nil
}
