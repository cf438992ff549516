// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type tarGzCodec struct {
	opts   options
	logger *logger.Logger
}

// NewTarGzCodec returns the gzip-compressed tar codec.
func NewTarGzCodec(logger *logger.Logger, opts ...Option) ArchiveCodec {
	return &tarGzCodec{opts: newOptions(opts), logger: logger}
}

func (t *tarGzCodec) Extension() string {
	return ".tar.gz"
}

func (t *tarGzCodec) Decode(data []byte) ([]models.ArchiveEntry, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveCorrupt, err)
	}
	defer gz.Close()

	budget := &sizeBudget{remaining: t.opts.maxDecodedSize}
	var entries []models.ArchiveEntry
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, tar.ErrInsecurePath) {
			return nil, fmt.Errorf("%w: %w", ErrArchiveCorrupt, err)
		}

		entryPath, err := NormalizeEntryPath(header.Name)
		if err != nil {
			t.logger.Warn().Err(err).Str("entry", header.Name).Msg("skipping archive entry")
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			entries = append(entries, models.ArchiveEntry{Path: entryPath, IsDir: true})
		case tar.TypeReg:
			contents, err := budget.read(tr)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %s: %w", ErrArchiveCorrupt, header.Name, err)
			}
			entries = append(entries, models.ArchiveEntry{Path: entryPath, Contents: contents})
		default:
			t.logger.Warn().Str("entry", header.Name).Msg("skipping non-regular archive entry")
		}
	}

	// a gzip stream cut inside its trailer only fails once fully read
	if err = budget.discard(gz); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveCorrupt, err)
	}

	return entries, nil
}
