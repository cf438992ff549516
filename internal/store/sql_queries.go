package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notesync/models"
)

const syncRunsTable = "sync_runs"

var (
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	syncRunColumns = []string{
		"id", "started_at", "finished_at", "status", "archive", "written", "failed_paths", "message",
	}

	// statuses of runs that materialized an archive
	materializedStatuses = []string{string(models.StatusSuccess), string(models.StatusDegraded)}
)

func buildInsertRunQuery(run models.SyncRun) (string, []any, error) {
	failed := run.FailedPaths
	if failed == nil {
		failed = []string{}
	}
	failedJSON, err := json.Marshal(failed)
	if err != nil {
		return "", nil, fmt.Errorf("%w: encode failed paths: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sqlite.
		Insert(syncRunsTable).
		Columns(syncRunColumns...).
		Values(
			run.ID,
			run.StartedAt.UTC().UnixMilli(),
			run.FinishedAt.UTC().UnixMilli(),
			string(run.Status),
			run.Archive,
			run.Written,
			string(failedJSON),
			run.Message,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListRunsQuery(limit int) (string, []any, error) {
	builder := sqlite.
		Select(syncRunColumns...).
		From(syncRunsTable).
		OrderBy("finished_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildLastSuccessfulQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select(syncRunColumns...).
		From(syncRunsTable).
		Where(sq.Eq{"status": materializedStatuses}).
		OrderBy("finished_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
