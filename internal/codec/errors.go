// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrArchiveCorrupt is returned when the archive cannot be decoded.
	ErrArchiveCorrupt = errors.New("archive is corrupt")
	// ErrUnsafePath is returned for entry paths that would escape the
	// target directory.
	ErrUnsafePath = errors.New("unsafe archive entry path")
	// ErrArchiveTooLarge is returned, wrapped in [ErrArchiveCorrupt], when
	// decoding would exceed the decoded size limit.
	ErrArchiveTooLarge = errors.New("archive exceeds the decoded size limit")
	// ErrUnknownCodec is returned by [New] for an unsupported format name.
	ErrUnknownCodec = errors.New("unknown archive codec")
)
