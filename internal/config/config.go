// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging flags, environment
// variables, the settings file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with NOTESYNC_.
type StructuredConfig struct {
	// Sync holds the per-run sync settings (credential, endpoint, target).
	Sync Sync `envPrefix:"SYNC_"`

	// Adapter selects and tunes the remote the archive is fetched from.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the vault location and the history database DSN.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the reference sync server settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the periodic sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// SettingsFilePath is the path of the JSON settings file.
	// Env: NOTESYNC_CONFIG, flag: -c / --config.
	SettingsFilePath string `env:"CONFIG"`
}

// Sync holds the settings that end up in a [models.SyncConfiguration].
type Sync struct {
	// SyncKey is the credential sent as the Authorization header.
	// Env: NOTESYNC_SYNC_KEY
	SyncKey string `env:"KEY"`

	// BaseURL is the remote endpoint root.
	// Env: NOTESYNC_SYNC_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// LocalFolderPath is the vault-relative folder notes are written to.
	// Env: NOTESYNC_SYNC_LOCAL_FOLDER
	LocalFolderPath string `env:"LOCAL_FOLDER"`

	// OnlyNew is kept as the "true"/"false" string of the settings record
	// and parsed when the client view is built.
	// Env: NOTESYNC_SYNC_ONLY_NEW
	OnlyNew string `env:"ONLY_NEW"`

	// Codec names the archive format: "zip" or "tar.gz".
	// Env: NOTESYNC_SYNC_CODEC
	Codec string `env:"CODEC"`

	// KeepArchive retains the staged archive after a run.
	// Env: NOTESYNC_SYNC_KEEP_ARCHIVE
	KeepArchive bool `env:"KEEP_ARCHIVE"`

	// StagingDir is the vault-relative directory archives are staged in.
	// Env: NOTESYNC_SYNC_STAGING_DIR
	StagingDir string `env:"STAGING_DIR"`

	// Include and Exclude are doublestar patterns over archive entry paths.
	// Env: NOTESYNC_SYNC_INCLUDE, NOTESYNC_SYNC_EXCLUDE (comma separated)
	Include []string `env:"INCLUDE" envSeparator:","`
	Exclude []string `env:"EXCLUDE" envSeparator:","`
}

// Adapter configures the remote sync client.
type Adapter struct {
	// Remote is "http" (default) or "s3".
	// Env: NOTESYNC_ADAPTER_REMOTE
	Remote string `env:"REMOTE"`

	// RequestTimeout bounds each remote call (e.g. "30s").
	// Env: NOTESYNC_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// S3 holds settings used when Remote is "s3".
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds AWS settings for the S3 remote. Credentials come from the
// default AWS provider chain.
type S3 struct {
	// Region overrides the AWS region. Env: NOTESYNC_ADAPTER_S3_REGION
	Region string `env:"REGION"`
	// Profile selects a shared config profile. Env: NOTESYNC_ADAPTER_S3_PROFILE
	Profile string `env:"PROFILE"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// VaultDir is the root directory of the local vault.
	// Env: NOTESYNC_STORAGE_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`

	// HistoryDSN is the SQLite database file the sync history is kept in.
	// Env: NOTESYNC_STORAGE_HISTORY_DSN
	HistoryDSN string `env:"HISTORY_DSN"`
}

// Server holds the reference sync server settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: NOTESYNC_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: NOTESYNC_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SyncKeys lists the accepted Authorization values.
	// Env: NOTESYNC_SERVER_SYNC_KEYS (comma separated)
	SyncKeys []string `env:"SYNC_KEYS" envSeparator:","`

	// NotesDir is the directory whose files are served as archives.
	// Env: NOTESYNC_SERVER_NOTES_DIR
	NotesDir string `env:"NOTES_DIR"`

	// ArchiveTTL is how long a prepared archive waits for its download.
	// Env: NOTESYNC_SERVER_ARCHIVE_TTL
	ArchiveTTL time.Duration `env:"ARCHIVE_TTL"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is how often the watch job syncs.
	// Env: NOTESYNC_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// File is the client log file path. Env: NOTESYNC_LOG_FILE
	File string `env:"FILE"`
}
