// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

// historyRepository is the SQLite implementation of [HistoryRepository].
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository returns a [HistoryRepository] over a migrated db.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating sync history repository")
	return &historyRepository{db: db, logger: logger}
}

func (r *historyRepository) SaveRun(ctx context.Context, run models.SyncRun) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRunQuery(run)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*historyRepository.SaveRun").Msg("error inserting sync run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *historyRepository) ListRuns(ctx context.Context, limit int) ([]models.SyncRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRunsQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListRuns").Msg("error querying sync runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.SyncRun, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			log.Err(err).Str("func", "*historyRepository.ListRuns").Msg("error scanning sync run")
			return nil, err
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

func (r *historyRepository) LastSuccessful(ctx context.Context) (models.SyncRun, error) {
	query, args, err := buildLastSuccessfulQuery()
	if err != nil {
		return models.SyncRun{}, err
	}

	run, err := scanRun(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.SyncRun{}, err
	}

	return run, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (models.SyncRun, error) {
	var (
		run                   models.SyncRun
		startedAt, finishedAt int64
		status, failedJSON    string
	)

	err := row.Scan(&run.ID, &startedAt, &finishedAt, &status, &run.Archive, &run.Written, &failedJSON, &run.Message)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncRun{}, ErrRunNotFound
	}
	if err != nil {
		return models.SyncRun{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if failedJSON != "" {
		if err = json.Unmarshal([]byte(failedJSON), &run.FailedPaths); err != nil {
			return models.SyncRun{}, fmt.Errorf("%w: decode failed paths: %w", ErrScanningRows, err)
		}
	}
	if len(run.FailedPaths) == 0 {
		run.FailedPaths = nil
	}

	run.StartedAt = time.UnixMilli(startedAt).UTC()
	run.FinishedAt = time.UnixMilli(finishedAt).UTC()
	run.Status = models.SyncStatus(status)

	return run, nil
}
