// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/notesync/internal/logger"
)

// New returns the codec registered under name ("zip" or "tar.gz").
func New(name string, logger *logger.Logger, opts ...Option) (ArchiveCodec, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "zip":
		return NewZipCodec(logger, opts...), nil
	case "tar.gz", "tgz":
		return NewTarGzCodec(logger, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}
