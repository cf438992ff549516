package http

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/models"
)

// newTestHandler serves notes written into a temp dir, with sync keys k1
// and k2. All notes are dated an hour back.
func newTestHandler(t *testing.T, notes map[string]string) *Handler {
	t.Helper()
	return newTestHandlerWithLogger(t, notes, logger.Nop())
}

func newTestHandlerWithLogger(t *testing.T, notes map[string]string, log *logger.Logger) *Handler {
	t.Helper()

	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)
	for name, contents := range notes {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
		require.NoError(t, os.Chtimes(p, old, old))
	}

	cfg := config.ServerConfig{
		HTTPAddress:    "localhost:0",
		RequestTimeout: time.Second,
		SyncKeys:       []string{"k1", "k2"},
		NotesDir:       dir,
		ArchiveTTL:     time.Minute,
	}
	return NewHandler(service.NewServices(cfg, models.NewBuildInfo("v0.1.0", "2026-06-01", "abc123"), log), log)
}

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}
