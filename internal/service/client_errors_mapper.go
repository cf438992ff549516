package service

import (
	"errors"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/models"
)

// outcomeFromError maps a pipeline error to the terminal outcome it
// represents.
func outcomeFromError(err error) models.SyncOutcome {
	switch {
	case err == nil:
		return models.SyncOutcome{Status: models.StatusSuccess}
	case errors.Is(err, ErrSyncInProgress):
		return models.SyncOutcome{Status: models.StatusBusy, Cause: err}
	case errors.Is(err, ErrConfigurationInvalid):
		return models.SyncOutcome{Status: models.StatusConfigurationInvalid, Cause: err}
	case errors.Is(err, adapter.ErrNoNewContent):
		return models.SyncOutcome{Status: models.StatusNoNewContent}
	case errors.Is(err, adapter.ErrAuthentication):
		return models.SyncOutcome{Status: models.StatusAuthenticationFailure, Cause: err}
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, ErrStaging):
		return models.SyncOutcome{Status: models.StatusNetworkFailure, Cause: err}
	case errors.Is(err, codec.ErrArchiveCorrupt):
		return models.SyncOutcome{Status: models.StatusArchiveCorrupt, Cause: err}
	default:
		return models.SyncOutcome{Status: models.StatusNetworkFailure, Cause: err}
	}
}
