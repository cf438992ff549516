package service

import (
	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

// NewClientServices wires the client services. report receives the outcome
// of every background sync.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteSyncClient,
	archiveCodec codec.ArchiveCodec,
	report func(models.SyncOutcome),
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(remote, archiveCodec, storages.Vault, storages.History, logger)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, report),
	}
}
