package store

import (
	"database/sql"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
