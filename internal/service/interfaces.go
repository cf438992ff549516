package service

import (
	"context"
	"time"
)

// ArchiveService is the server side of the sync protocol: it packs the notes
// directory for a sync key and hands the archive out once.
type ArchiveService interface {
	// Authorize returns [ErrUnknownSyncKey] unless syncKey is configured.
	Authorize(ctx context.Context, syncKey string) error

	// PrepareArchive packs the notes for syncKey and returns the archive
	// name. With onlyNew only files modified since the key's last completed
	// download are packed; [ErrNoNewFiles] is returned when there are none.
	PrepareArchive(ctx context.Context, syncKey string, onlyNew bool) (string, error)

	// DownloadArchive returns the archive prepared for syncKey and marks the
	// download complete. An empty name selects the pending archive whatever
	// its name.
	DownloadArchive(ctx context.Context, syncKey, name string) (fileName string, data []byte, err error)

	// PrunePending drops prepared archives older than maxAge that were never
	// downloaded and returns how many were dropped.
	PrunePending(ctx context.Context, maxAge time.Duration) int
}

// AppInfoService reports the running server build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
