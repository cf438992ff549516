package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/models"
)

type spySyncService struct {
	mu    sync.Mutex
	calls int
	cfgs  []models.SyncConfiguration
}

func (s *spySyncService) Sync(_ context.Context, cfg models.SyncConfiguration) models.SyncOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.cfgs = append(s.cfgs, cfg)
	return models.SyncOutcome{Status: models.StatusNoNewContent}
}

func (s *spySyncService) State() SyncState { return StateIdle }

func (s *spySyncService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestClientSyncJob_SyncsImmediatelyAndOnTicker(t *testing.T) {
	spy := &spySyncService{}

	var mu sync.Mutex
	var reported []models.SyncOutcome
	job := NewClientSyncJob(spy, func(o models.SyncOutcome) {
		mu.Lock()
		reported = append(reported, o)
		mu.Unlock()
	})

	cfg := models.SyncConfiguration{Credential: "k1", LocalTargetPath: "T"}
	job.Start(context.Background(), cfg, 10*time.Millisecond)
	require.Eventually(t, func() bool { return spy.count() >= 3 }, 2*time.Second, 5*time.Millisecond)
	job.Stop()

	after := spy.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.count(), "no syncs after Stop")

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, reported, after)
	assert.Equal(t, models.StatusNoNewContent, reported[0].Status)
	assert.Equal(t, cfg, spy.cfgs[0])
}

func TestClientSyncJob_StopWithoutStart(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, nil)
	assert.NotPanics(t, job.Stop)
}

func TestClientSyncJob_StopsWhenContextCanceled(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, nil)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, models.SyncConfiguration{}, time.Hour)
	require.Eventually(t, func() bool { return spy.count() == 1 }, time.Second, time.Millisecond)

	cancel()
	job.Stop()
	assert.Equal(t, 1, spy.count())
}

func TestClientSyncJob_RestartReplacesRunningLoop(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, nil)

	job.Start(context.Background(), models.SyncConfiguration{}, time.Hour)
	job.Start(context.Background(), models.SyncConfiguration{}, time.Hour)
	require.Eventually(t, func() bool { return spy.count() == 2 }, time.Second, time.Millisecond)
	job.Stop()

	assert.Equal(t, 2, spy.count())
}
