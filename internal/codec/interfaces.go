// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec decodes downloaded note archives into ordered entry lists.
//
// Two containers are supported: zip ([NewZipCodec]) and gzip-compressed tar
// ([NewTarGzCodec]). [New] selects one by its configured name. Every entry
// path goes through [NormalizeEntryPath]; entries that would escape the
// target directory are dropped and logged.
package codec

import (
	"github.com/MKhiriev/notesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// ArchiveCodec turns raw archive bytes into entries.
type ArchiveCodec interface {
	// Decode returns the archive entries in archive order. Truncated or
	// malformed input yields an error wrapping [ErrArchiveCorrupt]; Decode
	// never panics.
	Decode(data []byte) ([]models.ArchiveEntry, error)

	// Extension returns the file extension of the container, including the
	// leading dot (".zip", ".tar.gz").
	Extension() string
}
