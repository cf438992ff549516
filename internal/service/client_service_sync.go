// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

// stagedArchiveFallback is the staged file name used when the archive handle
// has no usable base name.
const stagedArchiveFallback = "archive"

type clientSyncService struct {
	remote       adapter.RemoteSyncClient
	codec        codec.ArchiveCodec
	vault        store.Vault
	history      store.HistoryRepository
	materializer Materializer
	ids          utils.IDGenerator
	now          func() time.Time
	logger       *logger.Logger

	running atomic.Bool

	mu    sync.RWMutex
	state SyncState
}

// NewClientSyncService wires the sync orchestrator. history may be nil, in
// which case runs are not recorded.
func NewClientSyncService(
	remote adapter.RemoteSyncClient,
	archiveCodec codec.ArchiveCodec,
	vault store.Vault,
	history store.HistoryRepository,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		remote:       remote,
		codec:        archiveCodec,
		vault:        vault,
		history:      history,
		materializer: NewMaterializer(vault, logger),
		ids:          utils.NewUUIDGenerator(),
		now:          time.Now,
		logger:       logger,
		state:        StateIdle,
	}
}

func (s *clientSyncService) State() SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *clientSyncService) setState(state SyncState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *clientSyncService) Sync(ctx context.Context, cfg models.SyncConfiguration) models.SyncOutcome {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn().Msg("sync requested while another run is in flight")
		return outcomeFromError(ErrSyncInProgress)
	}
	defer s.running.Store(false)
	defer s.setState(StateIdle)

	runID := s.ids.Generate()
	runLogger := &logger.Logger{Logger: s.logger.With().Str("run_id", runID).Logger()}
	ctx = runLogger.WithContext(ctx)

	startedAt := s.now()
	runLogger.Info().Str("target", cfg.LocalTargetPath).Bool("only_new", cfg.OnlyNew).Msg("sync started")

	outcome := s.run(ctx, cfg)
	s.record(ctx, models.NewSyncRun(runID, startedAt, s.now(), outcome))

	event := runLogger.Info()
	if !outcome.IsSuccess() {
		event = runLogger.Error().Err(outcome.Cause)
	}
	event.
		Str("status", string(outcome.Status)).
		Str("archive", outcome.Archive).
		Int("written", len(outcome.Written)).
		Strs("failed", outcome.FailedPaths).
		Dur("took", s.now().Sub(startedAt)).
		Msg("sync finished")

	return outcome
}

func (s *clientSyncService) run(ctx context.Context, cfg models.SyncConfiguration) models.SyncOutcome {
	log := logger.FromContext(ctx)

	if !cfg.HasCredential() {
		return outcomeFromError(ErrConfigurationInvalid)
	}

	s.setState(StateResolving)
	req := cfg.ResolveRequest(s.lastSuccessfulStart(ctx, cfg))

	handle, err := s.remote.ResolveArchive(ctx, req)
	if err != nil {
		if !errors.Is(err, adapter.ErrNoNewContent) && !errors.Is(err, adapter.ErrAuthentication) {
			err = fmt.Errorf("%w: %w", adapter.ErrAuthentication, err)
		}
		return outcomeFromError(err)
	}
	log.Debug().Str("archive", handle.Name).Msg("archive resolved")

	s.setState(StateFetching)
	data, err := s.remote.FetchArchive(ctx, req, handle)
	if err != nil {
		if !errors.Is(err, adapter.ErrNetwork) {
			err = fmt.Errorf("%w: %w", adapter.ErrNetwork, err)
		}
		return withArchive(outcomeFromError(err), handle)
	}

	s.setState(StateStaging)
	staged := stagedArchivePath(cfg.StagingDir, handle, s.codec.Extension())
	if err = s.stage(ctx, cfg.StagingDir, staged, data); err != nil {
		return withArchive(outcomeFromError(fmt.Errorf("%w: %w", ErrStaging, err)), handle)
	}

	outcome := withArchive(s.decodeAndMaterialize(ctx, cfg, staged), handle)

	s.setState(StateCleaningUp)
	if !cfg.KeepArchive {
		// removed even if ctx is already canceled
		if err = s.vault.DeleteEntry(context.WithoutCancel(ctx), staged); err != nil {
			log.Warn().Err(err).Str("path", staged).Msg("could not delete staged archive")
			outcome.CleanupWarning = err
		}
	}

	s.setState(StateDone)
	return outcome
}

func (s *clientSyncService) decodeAndMaterialize(ctx context.Context, cfg models.SyncConfiguration, staged string) models.SyncOutcome {
	s.setState(StateDecoding)

	raw, err := s.vault.ReadBinaryFile(ctx, staged)
	if err != nil {
		return outcomeFromError(fmt.Errorf("%w: read staged archive: %w", codec.ErrArchiveCorrupt, err))
	}

	entries, err := s.codec.Decode(raw)
	if err != nil {
		if !errors.Is(err, codec.ErrArchiveCorrupt) {
			err = fmt.Errorf("%w: %w", codec.ErrArchiveCorrupt, err)
		}
		return outcomeFromError(err)
	}

	s.setState(StateMaterializing)
	result := s.materializer.Materialize(ctx, entries, cfg.LocalTargetPath, WithFilter(cfg.Include, cfg.Exclude))

	outcome := models.SyncOutcome{
		Status:      models.StatusSuccess,
		Written:     result.Written,
		FailedPaths: result.FailedPaths(),
	}
	if len(result.Failed) > 0 {
		outcome.Status = models.StatusDegraded
		outcome.Cause = result.Failed[0].Err
	}

	return outcome
}

// stage writes data to staged, replacing a stale file left by an earlier
// run. A folder at that path is never removed.
func (s *clientSyncService) stage(ctx context.Context, stagingDir, staged string, data []byte) error {
	if stagingDir != "" {
		if err := s.vault.CreateFolder(ctx, stagingDir); err != nil {
			return err
		}
	}

	entry, err := s.vault.GetEntryByPath(ctx, staged)
	if err != nil {
		return err
	}

	switch entry.Kind {
	case models.EntryFolder:
		return fmt.Errorf("%s: %w", staged, store.ErrNotAFile)
	case models.EntryFile:
		logger.FromContext(ctx).Debug().Str("path", staged).Msg("removing stale staged archive")
		if err = s.vault.DeleteEntry(ctx, staged); err != nil {
			return err
		}
	}

	return s.vault.CreateBinaryFile(ctx, staged, data)
}

// lastSuccessfulStart returns the start time of the last run that
// materialized an archive, for remotes that implement only-new themselves.
func (s *clientSyncService) lastSuccessfulStart(ctx context.Context, cfg models.SyncConfiguration) *time.Time {
	if !cfg.OnlyNew || s.history == nil {
		return nil
	}

	run, err := s.history.LastSuccessful(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrRunNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Msg("could not read sync history")
		}
		return nil
	}

	return &run.StartedAt
}

func (s *clientSyncService) record(ctx context.Context, run models.SyncRun) {
	if s.history == nil {
		return
	}

	if err := s.history.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("could not record sync run")
	}
}

// stagedArchivePath derives the vault path of the staged archive from the
// base name of the handle.
func stagedArchivePath(stagingDir string, handle models.ArchiveHandle, ext string) string {
	base := path.Base(strings.ReplaceAll(handle.Name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || strings.ContainsRune(base, 0) {
		base = stagedArchiveFallback + ext
	}

	return cleanVaultPath(path.Join(stagingDir, base))
}

func withArchive(outcome models.SyncOutcome, handle models.ArchiveHandle) models.SyncOutcome {
	outcome.Archive = handle.Name
	return outcome
}
