// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/models"
)

type stubSync struct {
	calls   int
	outcome models.SyncOutcome
}

func (s *stubSync) Sync(context.Context, models.SyncConfiguration) models.SyncOutcome {
	s.calls++
	return s.outcome
}

func (s *stubSync) State() service.SyncState { return service.StateFetching }

var watchNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestWatch(svc *stubSync) watchModel {
	m := newWatchModel(context.Background(), svc, models.SyncConfiguration{BaseURL: "https://example.test", LocalTargetPath: "T"}, time.Minute)
	m.now = func() time.Time { return watchNow }
	return m
}

func update(t *testing.T, m watchModel, msg tea.Msg) (watchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(watchModel)
	require.True(t, ok)
	return wm, cmd
}

func TestWatchModel_FirstSyncAndSchedule(t *testing.T) {
	svc := &stubSync{outcome: models.SyncOutcome{Status: models.StatusSuccess}}
	m := newTestWatch(svc)

	assert.True(t, m.running)
	assert.Contains(t, m.View(), "Syncing (fetching)")

	done := m.syncCmd()()
	assert.Equal(t, 1, svc.calls)

	m, cmd := update(t, m, done)
	assert.False(t, m.running)
	assert.Equal(t, 1, m.runs)
	assert.NotNil(t, cmd, "next sync is scheduled")
	assert.Equal(t, watchNow.Add(time.Minute), m.nextAt)
	assert.Contains(t, m.View(), "Sync complete")
	assert.Contains(t, m.View(), "Next sync at")
}

func TestWatchModel_StaleTickIgnored(t *testing.T) {
	svc := &stubSync{outcome: models.SyncOutcome{Status: models.StatusNoNewContent}}
	m := newTestWatch(svc)

	m, _ = update(t, m, syncDoneMsg{outcome: svc.outcome, at: watchNow})
	stale := tickMsg{schedule: m.schedule}
	m, _ = update(t, m, syncDoneMsg{outcome: svc.outcome, at: watchNow})

	m, cmd := update(t, m, stale)
	assert.Nil(t, cmd)
	assert.False(t, m.running)

	m, cmd = update(t, m, tickMsg{schedule: m.schedule})
	assert.NotNil(t, cmd)
	assert.True(t, m.running)
}

func TestWatchModel_Keys(t *testing.T) {
	svc := &stubSync{}
	m := newTestWatch(svc)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Nil(t, cmd, "no manual sync while one is running")

	m, _ = update(t, m, syncDoneMsg{at: watchNow})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)
	assert.True(t, m.running)

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
