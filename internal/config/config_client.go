// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/notesync/models"
)

// ClientRemote holds the remote selection and transport settings.
type ClientRemote struct {
	// Kind is [RemoteHTTP] or [RemoteS3].
	Kind string
	// RequestTimeout bounds each remote call.
	RequestTimeout time.Duration
	// S3 holds AWS settings used by the s3 remote.
	S3 S3
}

// ClientStorage holds local storage settings.
type ClientStorage struct {
	// VaultDir is the vault root on disk.
	VaultDir string
	// HistoryDSN is the SQLite file of the sync history.
	HistoryDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the watch job syncs.
	SyncInterval time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Sync is the per-run input of the orchestrator.
	Sync models.SyncConfiguration
	// Codec names the archive format.
	Codec string
	// Remote selects and tunes the remote sync client.
	Remote ClientRemote
	// Storage contains vault and history settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// LogFile is the client log file path.
	LogFile string
	// SettingsFilePath is the settings file the config was read from.
	SettingsFilePath string
}

// GetStructuredConfig loads and merges flags, environment, the settings file
// and defaults, in that priority order.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withSettingsFile().
		withDefaults().
		build()
}

// GetClientConfig builds and validates the client view of the merged
// configuration. flags is the value returned by [RegisterClientFlags] after
// parsing; nil means no flags.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps an already merged [StructuredConfig] to the client
// view and validates it.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	onlyNew, err := strconv.ParseBool(strings.TrimSpace(cfg.Sync.OnlyNew))
	if err != nil {
		return nil, fmt.Errorf("%w: only-new must be true or false, got %q", ErrInvalidSyncConfigs, cfg.Sync.OnlyNew)
	}

	historyDSN := cfg.Storage.HistoryDSN
	if historyDSN == "" && cfg.Storage.VaultDir != "" {
		historyDSN = filepath.Join(cfg.Storage.VaultDir, ".notesync", "history.db")
	}

	clientCfg := &ClientConfig{
		Sync: models.SyncConfiguration{
			Credential:      strings.TrimSpace(cfg.Sync.SyncKey),
			BaseURL:         strings.TrimSpace(cfg.Sync.BaseURL),
			LocalTargetPath: cfg.Sync.LocalFolderPath,
			OnlyNew:         onlyNew,
			KeepArchive:     cfg.Sync.KeepArchive,
			StagingDir:      cfg.Sync.StagingDir,
			Include:         cfg.Sync.Include,
			Exclude:         cfg.Sync.Exclude,
		},
		Codec: strings.ToLower(cfg.Sync.Codec),
		Remote: ClientRemote{
			Kind:           strings.ToLower(cfg.Adapter.Remote),
			RequestTimeout: cfg.Adapter.RequestTimeout,
			S3:             cfg.Adapter.S3,
		},
		Storage: ClientStorage{
			VaultDir:   cfg.Storage.VaultDir,
			HistoryDSN: historyDSN,
		},
		Workers:          ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		LogFile:          cfg.Log.File,
		SettingsFilePath: cfg.SettingsFilePath,
	}

	return clientCfg, clientCfg.validate()
}
