package service

import "errors"

var (
	// ErrConfigurationInvalid is the cause of a run refused before any
	// network call because the sync key is missing or still the placeholder.
	ErrConfigurationInvalid = errors.New("sync key is not configured")
	// ErrSyncInProgress is the cause of a busy outcome.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrStaging wraps failures writing the fetched archive into the vault.
	ErrStaging = errors.New("could not stage archive")
	// ErrEscapesTarget is recorded for entries whose destination resolves
	// outside the target folder.
	ErrEscapesTarget = errors.New("entry resolves outside the target folder")

	ErrNoNewFiles      = errors.New("no new files to download")
	ErrArchiveNotFound = errors.New("archive not found")
	ErrUnknownSyncKey  = errors.New("unknown sync key")
)
