// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// validate checks the client view. The sync key itself is not checked here:
// a missing key is reported by the orchestrator as a configuration-invalid
// outcome, before any network call.
func (cfg *ClientConfig) validate() error {
	if !slices.Contains([]string{CodecZip, CodecTarGz}, cfg.Codec) {
		return fmt.Errorf("%w: unknown codec %q", ErrInvalidSyncConfigs, cfg.Codec)
	}

	if cfg.Sync.LocalTargetPath == "" {
		return fmt.Errorf("%w: empty local folder path", ErrInvalidSyncConfigs)
	}

	for _, pattern := range slices.Concat(cfg.Sync.Include, cfg.Sync.Exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: bad glob pattern %q", ErrInvalidSyncConfigs, pattern)
		}
	}

	if !slices.Contains([]string{RemoteHTTP, RemoteS3}, cfg.Remote.Kind) {
		return fmt.Errorf("%w: unknown remote %q", ErrInvalidAdapterConfigs, cfg.Remote.Kind)
	}

	if cfg.Remote.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.VaultDir == "" {
		return fmt.Errorf("%w: empty vault dir", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if len(cfg.SyncKeys) == 0 {
		return fmt.Errorf("%w: no sync keys configured", ErrInvalidServerConfigs)
	}

	if cfg.NotesDir == "" {
		return fmt.Errorf("%w: empty notes dir", ErrInvalidServerConfigs)
	}

	if cfg.ArchiveTTL <= 0 {
		return fmt.Errorf("%w: archive ttl must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
