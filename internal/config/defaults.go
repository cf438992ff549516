// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/notesync/models"
)

// Remote kinds accepted in [Adapter.Remote].
const (
	RemoteHTTP = "http"
	RemoteS3   = "s3"
)

// Archive codecs accepted in [Sync.Codec].
const (
	CodecZip   = "zip"
	CodecTarGz = "tar.gz"
)

// DefaultStagingDir is the vault-relative folder fetched archives are staged
// in, next to the history database.
const DefaultStagingDir = ".notesync/staging"

const (
	defaultRequestTimeout       = 30 * time.Second
	defaultSyncInterval         = 5 * time.Minute
	defaultServerAddress        = "localhost:8080"
	defaultServerRequestTimeout = time.Minute
	defaultNotesDir             = "notes"
	defaultArchiveTTL           = 10 * time.Minute
	defaultVaultDir             = "."
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Sync: Sync{
			SyncKey:         models.DefaultSyncKey,
			BaseURL:         DefaultBaseURL,
			LocalFolderPath: DefaultLocalFolderPath,
			OnlyNew:         DefaultOnlyNew,
			Codec:           CodecZip,
			StagingDir:      DefaultStagingDir,
		},
		Adapter: Adapter{
			Remote:         RemoteHTTP,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			VaultDir: defaultVaultDir,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerRequestTimeout,
			NotesDir:       defaultNotesDir,
			ArchiveTTL:     defaultArchiveTTL,
		},
		Workers: Workers{SyncInterval: defaultSyncInterval},
	}
}
