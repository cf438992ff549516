// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// RegisterClientFlags binds the client configuration flags to fs and returns
// the config they populate. The returned value is filled in once fs is
// parsed (by cobra or by the caller).
//
// Flags:
//
//	-c/--config       settings file path
//	--vault           vault root directory
//	--sync-key        sync key sent as Authorization header
//	--base-url        remote endpoint root
//	--local-folder    vault-relative target folder
//	--only-new        "true"/"false", download only new notes
//	--codec           archive format: zip or tar.gz
//	--remote          remote kind: http or s3
//	--keep-archive    keep the staged archive after the run
//	--staging-dir     vault-relative staging directory
//	--include         include pattern (repeatable)
//	--exclude         exclude pattern (repeatable)
//	--request-timeout remote request timeout (e.g. "30s")
//	--history-db      sync history SQLite file
//	--interval        watch sync interval (e.g. "5m")
//	--s3-region       AWS region for the s3 remote
//	--s3-profile      AWS shared config profile for the s3 remote
//	--log-file        client log file
func RegisterClientFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.SettingsFilePath, "config", "c", "", "Settings file path")
	fs.StringVar(&cfg.Storage.VaultDir, "vault", "", "Vault root directory")
	fs.StringVar(&cfg.Sync.SyncKey, "sync-key", "", "Sync key")
	fs.StringVar(&cfg.Sync.BaseURL, "base-url", "", "Remote endpoint root")
	fs.StringVar(&cfg.Sync.LocalFolderPath, "local-folder", "", "Vault-relative folder notes are written to")
	fs.StringVar(&cfg.Sync.OnlyNew, "only-new", "", "Download only new notes (true/false)")
	fs.StringVar(&cfg.Sync.Codec, "codec", "", "Archive format (zip, tar.gz)")
	fs.StringVar(&cfg.Adapter.Remote, "remote", "", "Remote kind (http, s3)")
	fs.BoolVar(&cfg.Sync.KeepArchive, "keep-archive", false, "Keep the staged archive after sync")
	fs.StringVar(&cfg.Sync.StagingDir, "staging-dir", "", "Vault-relative staging directory")
	fs.StringSliceVar(&cfg.Sync.Include, "include", nil, "Include patterns (multiple allowed)")
	fs.StringSliceVar(&cfg.Sync.Exclude, "exclude", nil, "Exclude patterns (multiple allowed)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s)")
	fs.StringVar(&cfg.Storage.HistoryDSN, "history-db", "", "Sync history database file")
	fs.DurationVar(&cfg.Workers.SyncInterval, "interval", 0, "Watch sync interval (e.g., 5m)")
	fs.StringVar(&cfg.Adapter.S3.Region, "s3-region", "", "AWS region for the s3 remote")
	fs.StringVar(&cfg.Adapter.S3.Profile, "s3-profile", "", "AWS profile for the s3 remote")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Client log file")

	return cfg
}

// RegisterServerFlags binds the reference server flags to fs.
//
// Flags:
//
//	-a/--address        listen address host:port
//	--notes-dir         directory served as archives
//	--sync-keys         accepted sync keys (repeatable)
//	--request-timeout   request timeout (e.g. "30s")
//	--archive-ttl       how long a prepared archive is kept (e.g. "10m")
//	-c/--config         settings file path
func RegisterServerFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Server.HTTPAddress, "address", "a", "", "Net address host:port")
	fs.StringVar(&cfg.Server.NotesDir, "notes-dir", "", "Directory served as archives")
	fs.StringSliceVar(&cfg.Server.SyncKeys, "sync-keys", nil, "Accepted sync keys")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&cfg.Server.ArchiveTTL, "archive-ttl", 0, "How long a prepared archive is kept (e.g., 10m)")
	fs.StringVarP(&cfg.SettingsFilePath, "config", "c", "", "Settings file path")

	return cfg
}
