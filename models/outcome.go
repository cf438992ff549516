package models

import (
	"errors"
	"fmt"
	"strings"
)

// SyncStatus is the terminal tag of a sync run.
type SyncStatus string

const (
	StatusSuccess               SyncStatus = "success"
	StatusDegraded              SyncStatus = "degraded"
	StatusNoNewContent          SyncStatus = "no_new_content"
	StatusConfigurationInvalid  SyncStatus = "configuration_invalid"
	StatusAuthenticationFailure SyncStatus = "authentication_failure"
	StatusNetworkFailure        SyncStatus = "network_failure"
	StatusArchiveCorrupt        SyncStatus = "archive_corrupt"
	StatusBusy                  SyncStatus = "busy"
)

// SyncOutcome is what a sync run reports to its caller. Exactly one status
// is set; Written and FailedPaths are only populated once materialization
// started.
type SyncOutcome struct {
	Status SyncStatus
	// Archive is the name of the archive the run resolved, if any.
	Archive string
	// Written lists vault paths that were created or overwritten.
	Written []string
	// FailedPaths lists vault paths that could not be written.
	FailedPaths []string
	// Cause is the underlying error for failure statuses.
	Cause error
	// CleanupWarning is set when the staged archive could not be removed.
	// It never changes Status.
	CleanupWarning error
}

// IsSuccess reports whether the run ended without aborting. Degraded runs
// and runs with nothing new count as success.
func (o SyncOutcome) IsSuccess() bool {
	switch o.Status {
	case StatusSuccess, StatusDegraded, StatusNoNewContent:
		return true
	default:
		return false
	}
}

// Err returns nil for successful outcomes and an error describing the
// failure otherwise. Degraded runs return an error naming the failed paths.
func (o SyncOutcome) Err() error {
	switch o.Status {
	case StatusSuccess, StatusNoNewContent:
		return nil
	case StatusDegraded:
		return fmt.Errorf("%d entries failed to sync: %s", len(o.FailedPaths), strings.Join(o.FailedPaths, ", "))
	}

	if o.Cause != nil {
		return fmt.Errorf("%s: %w", o.Status, o.Cause)
	}
	return errors.New(string(o.Status))
}

// Message is the short user-facing notification for the outcome.
func (o SyncOutcome) Message() string {
	switch o.Status {
	case StatusSuccess:
		return "Sync complete"
	case StatusDegraded:
		return fmt.Sprintf("Sync complete with errors: %d note(s) could not be written (%s)",
			len(o.FailedPaths), strings.Join(o.FailedPaths, ", "))
	case StatusNoNewContent:
		return "There are no new notes to download"
	case StatusConfigurationInvalid:
		return "Sync failed! Please add the sync key in the settings"
	case StatusAuthenticationFailure:
		return "Sync failed! Please add the correct sync key"
	case StatusNetworkFailure:
		return "Sync failed! Could not download the notes archive"
	case StatusArchiveCorrupt:
		return "Sync failed! The downloaded notes archive is corrupt"
	case StatusBusy:
		return "A sync is already running"
	default:
		return "Sync failed"
	}
}
