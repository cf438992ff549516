package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/notesync/models"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	report      func(models.SyncOutcome)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync on a
// ticker and hands every outcome to report (which may be nil). The job is
// idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, report func(models.SyncOutcome)) ClientSyncJob {
	if report == nil {
		report = func(models.SyncOutcome) {}
	}
	return &clientSyncJob{syncService: syncService, report: report}
}

// Start implements ClientSyncJob.
func (j *clientSyncJob) Start(ctx context.Context, cfg models.SyncConfiguration, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.report(j.syncService.Sync(jobCtx, cfg))
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.report(j.syncService.Sync(jobCtx, cfg))
			}
		}
	}()
}

// Stop implements ClientSyncJob. It is a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
