// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
)

// ClientStorages groups the client-side storage collaborators.
type ClientStorages struct {
	// Vault is the local note tree.
	Vault Vault
	// History records finished sync runs. It is nil when the history
	// database could not be opened.
	History HistoryRepository

	db *DB
}

// NewClientStorages opens the vault at cfg.VaultDir and the history database
// at cfg.HistoryDSN, applying pending migrations.
//
// A history database that cannot be opened or migrated is logged and left
// out: syncing works without it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("vault", cfg.VaultDir).Msg("creating new storages...")

	vault, err := NewVault(cfg.VaultDir, logger)
	if err != nil {
		return nil, fmt.Errorf("vault error: %w", err)
	}

	storages := &ClientStorages{Vault: vault}
	if cfg.HistoryDSN == "" {
		return storages, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.HistoryDSN, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("sync history disabled")
		return storages, nil
	}
	if err = db.Migrate(); err != nil {
		logger.Warn().Err(err).Msg("sync history disabled: migration failed")
		_ = db.Close()
		return storages, nil
	}

	storages.db = db
	storages.History = NewHistoryRepository(db, logger)
	return storages, nil
}

// Close releases the history database, if open.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
