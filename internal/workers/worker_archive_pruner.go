// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/service"
)

type archivePruner struct {
	archives service.ArchiveService
	ttl      time.Duration
	logger   *logger.Logger
}

// NewArchivePruner drops prepared archives that were not downloaded within
// ttl. It checks every ttl/2.
func NewArchivePruner(archives service.ArchiveService, ttl time.Duration, logger *logger.Logger) Worker {
	return &archivePruner{archives: archives, ttl: ttl, logger: logger}
}

func (p *archivePruner) Run(ctx context.Context) {
	ctx = p.logger.WithContext(ctx)

	t := time.NewTicker(max(p.ttl/2, time.Millisecond))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("archive pruner stopped")
			return
		case <-t.C:
			p.archives.PrunePending(ctx, p.ttl)
		}
	}
}
