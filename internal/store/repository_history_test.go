// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &historyRepository{db: &DB{DB: db, logger: l}, logger: l}
	return repo, mock, db
}

var runColumns = []string{"id", "started_at", "finished_at", "status", "archive", "written", "failed_paths", "message"}

func TestSaveRun_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	run := models.SyncRun{
		ID:         "0190f0c4-0000-7000-8000-000000000001",
		StartedAt:  start,
		FinishedAt: start.Add(2 * time.Second),
		Status:     models.StatusSuccess,
		Archive:    "notes.zip",
		Written:    3,
	}

	mock.ExpectExec("INSERT INTO sync_runs").
		WithArgs(run.ID, start.UnixMilli(), start.Add(2*time.Second).UnixMilli(), "success", "notes.zip", 3, "[]", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveRun(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_ExecError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveRun(context.Background(), models.SyncRun{ID: "x", Status: models.StatusSuccess})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(runColumns).
		AddRow("r2", start.Add(time.Hour).UnixMilli(), start.Add(time.Hour+time.Second).UnixMilli(), "degraded", "b.zip", 1, `["WiscO/x.md"]`, "1 entries failed").
		AddRow("r1", start.UnixMilli(), start.Add(time.Second).UnixMilli(), "success", "a.zip", 4, "[]", "")

	mock.ExpectQuery("SELECT (.+) FROM sync_runs ORDER BY finished_at DESC, id DESC LIMIT 5").WillReturnRows(rows)

	runs, err := repo.ListRuns(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "r2", runs[0].ID)
	assert.Equal(t, models.StatusDegraded, runs[0].Status)
	assert.Equal(t, []string{"WiscO/x.md"}, runs[0].FailedPaths)
	assert.Equal(t, start.Add(time.Hour), runs[0].StartedAt)

	assert.Equal(t, "r1", runs[1].ID)
	assert.Equal(t, 4, runs[1].Written)
	assert.Nil(t, runs[1].FailedPaths)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_Empty(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_runs").WillReturnRows(sqlmock.NewRows(runColumns))

	runs, err := repo.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestListRuns_QueryError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_runs").WillReturnError(errors.New("no such table"))

	_, err := repo.ListRuns(context.Background(), 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRuns_BadFailedPaths(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(runColumns).AddRow("r1", 0, 0, "degraded", "", 0, "{broken", "")
	mock.ExpectQuery("SELECT (.+) FROM sync_runs").WillReturnRows(rows)

	_, err := repo.ListRuns(context.Background(), 0)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestLastSuccessful(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	finished := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(runColumns).AddRow("r9", finished.UnixMilli(), finished.UnixMilli(), "success", "c.zip", 2, "[]", "")

	mock.ExpectQuery("SELECT (.+) FROM sync_runs WHERE status IN").
		WithArgs("success", "degraded").
		WillReturnRows(rows)

	run, err := repo.LastSuccessful(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r9", run.ID)
	assert.Equal(t, finished, run.FinishedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastSuccessful_NotFound(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_runs WHERE status IN").WillReturnRows(sqlmock.NewRows(runColumns))

	_, err := repo.LastSuccessful(context.Background())
	assert.ErrorIs(t, err, ErrRunNotFound)
}
