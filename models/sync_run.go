package models

import "time"

// SyncRun is the persisted history record of one finished sync run.
type SyncRun struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  time.Time  `json:"finished_at"`
	Status      SyncStatus `json:"status"`
	Archive     string     `json:"archive,omitempty"`
	Written     int        `json:"written"`
	FailedPaths []string   `json:"failed_paths,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// NewSyncRun builds a history record from a finished outcome.
func NewSyncRun(id string, startedAt, finishedAt time.Time, outcome SyncOutcome) SyncRun {
	run := SyncRun{
		ID:          id,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
		Status:      outcome.Status,
		Archive:     outcome.Archive,
		Written:     len(outcome.Written),
		FailedPaths: outcome.FailedPaths,
	}
	if err := outcome.Err(); err != nil {
		run.Message = err.Error()
	}
	return run
}
