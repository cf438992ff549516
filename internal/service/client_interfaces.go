package service

import (
	"context"
	"time"

	"github.com/MKhiriev/notesync/models"
)

// ClientSyncService runs the sync pipeline: resolve, fetch, stage, decode,
// materialize and clean up.
type ClientSyncService interface {
	// Sync performs one complete run for cfg and reports how it ended. It
	// never panics and never returns a partially classified outcome. A call
	// made while another run is in flight returns a busy outcome at once.
	Sync(ctx context.Context, cfg models.SyncConfiguration) models.SyncOutcome

	// State returns the stage the current run is in, or [StateIdle].
	State() SyncState
}

// ClientSyncJob runs Sync in the background on a fixed interval.
type ClientSyncJob interface {
	// Start syncs once immediately and then every interval, defaulting to
	// 5 minutes if interval is zero or negative. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context, cfg models.SyncConfiguration, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// Materializer writes decoded archive entries into the vault.
type Materializer interface {
	// Materialize writes entries under targetRoot. Each entry is attempted
	// independently; failures are collected in the result instead of
	// aborting the batch.
	Materialize(ctx context.Context, entries []models.ArchiveEntry, targetRoot string, opts ...MaterializeOption) MaterializeResult
}
