package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/models"
)

func TestBuildInsertRunQuery(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	run := models.SyncRun{
		ID:          "run-1",
		StartedAt:   start,
		FinishedAt:  start.Add(time.Second),
		Status:      models.StatusDegraded,
		Archive:     "notes.zip",
		Written:     2,
		FailedPaths: []string{"WiscO/b.md"},
		Message:     "1 entries failed",
	}

	query, args, err := buildInsertRunQuery(run)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into sync_runs")
	require.Equal(t, 8, strings.Count(query, "?"))
	require.NotContains(t, query, "$1")

	require.Len(t, args, 8)
	require.Equal(t, "run-1", args[0])
	require.Equal(t, start.UnixMilli(), args[1])
	require.Equal(t, start.Add(time.Second).UnixMilli(), args[2])
	require.Equal(t, "degraded", args[3])
	require.Equal(t, `["WiscO/b.md"]`, args[6])
}

func TestBuildInsertRunQuery_NoFailedPaths(t *testing.T) {
	_, args, err := buildInsertRunQuery(models.SyncRun{ID: "run-2", Status: models.StatusSuccess})
	require.NoError(t, err)
	require.Equal(t, "[]", args[6])
}

func TestBuildListRunsQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit bool
	}{
		{name: "limited", limit: 10, wantLimit: true},
		{name: "all", limit: 0},
		{name: "negative means all", limit: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRunsQuery(tt.limit)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "from sync_runs")
			require.Contains(t, q, "order by finished_at desc")
			require.Equal(t, tt.wantLimit, strings.Contains(q, "limit 10"))
			require.Empty(t, args)
		})
	}
}

func TestBuildLastSuccessfulQuery(t *testing.T) {
	query, args, err := buildLastSuccessfulQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "where status in (?,?)")
	require.Contains(t, q, "limit 1")
	require.Equal(t, []any{"success", "degraded"}, args)
}
