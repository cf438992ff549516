// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ServerConfig is the reference sync server view of [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	// SyncKeys lists the accepted Authorization values.
	SyncKeys []string
	// NotesDir is the directory served as archives.
	NotesDir string
	// ArchiveTTL is how long a prepared archive waits for its download.
	ArchiveTTL time.Duration
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(flags *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	keys := make([]string, 0, len(cfg.Server.SyncKeys))
	for _, k := range cfg.Server.SyncKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		SyncKeys:       keys,
		NotesDir:       cfg.Server.NotesDir,
		ArchiveTTL:     cfg.Server.ArchiveTTL,
	}

	return serverCfg, serverCfg.validate()
}
