package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncConfiguration_HasCredential(t *testing.T) {
	assert.False(t, SyncConfiguration{}.HasCredential())
	assert.False(t, SyncConfiguration{Credential: DefaultSyncKey}.HasCredential())
	assert.True(t, SyncConfiguration{Credential: "abc"}.HasCredential())
}

func TestSyncOutcome_Err(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name    string
		outcome SyncOutcome
		wantErr bool
		success bool
	}{
		{name: "success", outcome: SyncOutcome{Status: StatusSuccess}, success: true},
		{name: "no new content", outcome: SyncOutcome{Status: StatusNoNewContent}, success: true},
		{name: "degraded", outcome: SyncOutcome{Status: StatusDegraded, FailedPaths: []string{"a.md"}}, wantErr: true, success: true},
		{name: "network", outcome: SyncOutcome{Status: StatusNetworkFailure, Cause: cause}, wantErr: true},
		{name: "busy without cause", outcome: SyncOutcome{Status: StatusBusy}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Err()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.success, tt.outcome.IsSuccess())
			assert.NotEmpty(t, tt.outcome.Message())
		})
	}
}

func TestSyncOutcome_ErrWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := SyncOutcome{Status: StatusArchiveCorrupt, Cause: cause}.Err()
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), string(StatusArchiveCorrupt))
}

func TestSyncOutcome_DegradedMessageNamesPaths(t *testing.T) {
	o := SyncOutcome{Status: StatusDegraded, FailedPaths: []string{"WiscO/locked.md"}}
	assert.Contains(t, o.Message(), "WiscO/locked.md")
	assert.Contains(t, o.Err().Error(), "WiscO/locked.md")
}

func TestNewSyncRun(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	end := start.Add(time.Second)
	outcome := SyncOutcome{
		Status:      StatusDegraded,
		Archive:     "notes.zip",
		Written:     []string{"WiscO/a.md", "WiscO/b.md"},
		FailedPaths: []string{"WiscO/c.md"},
	}

	run := NewSyncRun("id-1", start, end, outcome)

	assert.Equal(t, "id-1", run.ID)
	assert.Equal(t, StatusDegraded, run.Status)
	assert.Equal(t, "notes.zip", run.Archive)
	assert.Equal(t, 2, run.Written)
	assert.Equal(t, []string{"WiscO/c.md"}, run.FailedPaths)
	assert.NotEmpty(t, run.Message)
}
