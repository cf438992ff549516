package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/internal/tui"
	"github.com/MKhiriev/notesync/models"
)

var errHistoryDisabled = errors.New("sync history is disabled")

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	notifier *tui.Notifier
	out      io.Writer

	logger *logger.Logger
}

// NewApp opens the storages and builds the remote, the codec and the sync
// services for cfg. Notices are written to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewRemote(ctx, cfg.Remote, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote: %w", err)
	}

	archiveCodec, err := codec.New(cfg.Codec, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create codec: %w", err)
	}

	notifier := tui.NewNotifier(out)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: service.NewClientServices(storages, remote, archiveCodec, notifier.Report, logger),
		notifier: notifier,
		out:      out,
		logger:   logger,
	}, nil
}

func (a *App) Sync(ctx context.Context) models.SyncOutcome {
	outcome := a.services.SyncService.Sync(ctx, a.cfg.Sync)
	a.notifier.Report(outcome)
	return outcome
}

func (a *App) Watch(ctx context.Context, dashboard bool) error {
	a.logger.Info().Dur("interval", a.cfg.Workers.SyncInterval).Bool("dashboard", dashboard).Msg("watch started")

	if dashboard {
		return tui.RunWatch(ctx, a.services.SyncService, a.cfg.Sync, a.cfg.Workers.SyncInterval)
	}

	a.services.SyncJob.Start(ctx, a.cfg.Sync, a.cfg.Workers.SyncInterval)
	<-ctx.Done()
	a.services.SyncJob.Stop()

	a.logger.Info().Msg("watch stopped")
	return nil
}

func (a *App) History(ctx context.Context, limit int) error {
	if a.storages.History == nil {
		return errHistoryDisabled
	}

	runs, err := a.storages.History.ListRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("list sync runs: %w", err)
	}

	fmt.Fprintln(a.out, tui.RenderHistory(runs))
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
