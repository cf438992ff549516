// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/notesync/models"
)

// Client is what the commands need from a wired application.
type Client interface {
	// Sync runs one sync and prints its notice.
	Sync(ctx context.Context) models.SyncOutcome
	// Watch syncs periodically until ctx is canceled. With dashboard set it
	// shows the interactive dashboard instead of printing notices.
	Watch(ctx context.Context, dashboard bool) error
	// History prints up to limit recorded runs.
	History(ctx context.Context, limit int) error
	// Close releases the history database.
	Close() error
}
