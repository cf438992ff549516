// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
)

// NewRemote returns the remote selected by remoteCfg.Kind.
func NewRemote(ctx context.Context, remoteCfg config.ClientRemote, logger *logger.Logger) (RemoteSyncClient, error) {
	switch remoteCfg.Kind {
	case config.RemoteHTTP, "":
		return NewHTTPRemote(remoteCfg, logger), nil
	case config.RemoteS3:
		return NewS3Remote(ctx, remoteCfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRemote, remoteCfg.Kind)
	}
}
