// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type preparedArchive struct {
	name    string
	data    []byte
	builtAt time.Time
}

type archiveService struct {
	notes    afero.Fs
	syncKeys []string
	now      func() time.Time
	logger   *logger.Logger

	mu           sync.Mutex
	lastDownload map[string]time.Time
	pending      map[string]preparedArchive
}

// NewArchiveService serves the notes under cfg.NotesDir.
func NewArchiveService(cfg config.ServerConfig, logger *logger.Logger) ArchiveService {
	return newArchiveService(afero.NewBasePathFs(afero.NewOsFs(), cfg.NotesDir), cfg.SyncKeys, logger)
}

func newArchiveService(notes afero.Fs, syncKeys []string, logger *logger.Logger) *archiveService {
	return &archiveService{
		notes:        notes,
		syncKeys:     syncKeys,
		now:          time.Now,
		logger:       logger,
		lastDownload: make(map[string]time.Time),
		pending:      make(map[string]preparedArchive),
	}
}

// KnownSyncKey reports whether key is configured, in constant time per key.
func KnownSyncKey(keys []string, key string) bool {
	found := false
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			found = true
		}
	}
	return found && key != ""
}

func (s *archiveService) Authorize(_ context.Context, syncKey string) error {
	if !KnownSyncKey(s.syncKeys, syncKey) {
		return ErrUnknownSyncKey
	}
	return nil
}

func (s *archiveService) PrepareArchive(ctx context.Context, syncKey string, onlyNew bool) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.Authorize(ctx, syncKey); err != nil {
		return "", err
	}

	s.mu.Lock()
	since := s.lastDownload[syncKey]
	s.mu.Unlock()
	if !onlyNew {
		since = time.Time{}
	}

	builtAt := s.now()
	entries, err := s.collect(since)
	if err != nil {
		log.Err(err).Str("func", "*archiveService.PrepareArchive").Msg("error reading notes")
		return "", fmt.Errorf("collect notes: %w", err)
	}
	if len(entries) == 0 {
		return "", ErrNoNewFiles
	}

	data, err := codec.EncodeZip(entries)
	if err != nil {
		return "", fmt.Errorf("pack notes: %w", err)
	}

	name := fmt.Sprintf("notes-%s.zip", builtAt.UTC().Format("20060102T150405Z"))

	s.mu.Lock()
	s.pending[syncKey] = preparedArchive{name: name, data: data, builtAt: builtAt}
	s.mu.Unlock()

	log.Info().Str("archive", name).Int("files", len(entries)).Bool("only_new", onlyNew).Msg("archive prepared")
	return name, nil
}

// collect returns the regular files modified after since (all files for a
// zero since), sorted by path.
func (s *archiveService) collect(since time.Time) ([]models.ArchiveEntry, error) {
	var entries []models.ArchiveEntry

	err := afero.Walk(s.notes, string(filepath.Separator), func(name string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !since.IsZero() && !info.ModTime().After(since) {
			return nil
		}

		contents, err := afero.ReadFile(s.notes, name)
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(filepath.ToSlash(name), "/")
		entries = append(entries, models.ArchiveEntry{Path: rel, Contents: contents})
		return nil
	})

	return entries, err
}

func (s *archiveService) DownloadArchive(ctx context.Context, syncKey, name string) (string, []byte, error) {
	if err := s.Authorize(ctx, syncKey); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	archive, ok := s.pending[syncKey]
	if !ok || (name != "" && name != archive.name) {
		return "", nil, fmt.Errorf("%w: %q", ErrArchiveNotFound, name)
	}

	delete(s.pending, syncKey)
	s.lastDownload[syncKey] = archive.builtAt

	logger.FromContext(ctx).Info().Str("archive", archive.name).Int("bytes", len(archive.data)).Msg("archive downloaded")
	return archive.name, archive.data, nil
}

func (s *archiveService) PrunePending(ctx context.Context, maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for key, archive := range s.pending {
		if archive.builtAt.Before(cutoff) {
			delete(s.pending, key)
			pruned++
		}
	}

	if pruned > 0 {
		logger.FromContext(ctx).Info().Int("pruned", pruned).Msg("dropped stale prepared archives")
	}
	return pruned
}
