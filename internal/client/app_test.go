package client

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

func newTestClientConfig(t *testing.T, credential string) *config.ClientConfig {
	t.Helper()

	return &config.ClientConfig{
		Sync: models.SyncConfiguration{
			Credential:      credential,
			BaseURL:         "http://127.0.0.1:1",
			LocalTargetPath: "WiscO",
			OnlyNew:         true,
		},
		Codec: config.CodecZip,
		Remote: config.ClientRemote{
			Kind:           config.RemoteHTTP,
			RequestTimeout: time.Second,
		},
		Storage: config.ClientStorage{VaultDir: t.TempDir()},
		Workers: config.ClientWorkers{SyncInterval: time.Hour},
	}
}

func TestApp_SyncReportsNotice(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), newTestClientConfig(t, models.DefaultSyncKey), &out, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	outcome := app.Sync(context.Background())

	assert.Equal(t, models.StatusConfigurationInvalid, outcome.Status)
	assert.Contains(t, out.String(), "Please add the sync key")
}

func TestApp_WatchStopsOnCancel(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), newTestClientConfig(t, ""), &out, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx, false) }()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestApp_HistoryDisabled(t *testing.T) {
	app, err := NewApp(context.Background(), newTestClientConfig(t, "k1"), &bytes.Buffer{}, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	assert.ErrorIs(t, app.History(context.Background(), 10), errHistoryDisabled)
}

func TestNewApp_UnknownCodec(t *testing.T) {
	cfg := newTestClientConfig(t, "k1")
	cfg.Codec = "rar"

	_, err := NewApp(context.Background(), cfg, &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)
}
