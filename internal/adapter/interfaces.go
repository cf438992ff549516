// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote side of a sync: it resolves which
// archive is available for a credential and downloads it.
//
// Two remotes exist. The HTTP remote speaks the two-endpoint WiscO protocol
// (getZipFileName, dlZip). The S3 remote reads archives from a bucket prefix
// per credential. Both report failures through the sentinels in errors.go so
// the orchestrator can classify them without knowing the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/notesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteSyncClient resolves and fetches sync archives.
type RemoteSyncClient interface {
	// ResolveArchive asks the remote which archive to download.
	// It returns [ErrNoNewContent] when the remote reports nothing new, and
	// an error wrapping [ErrAuthentication] for every other failure.
	ResolveArchive(ctx context.Context, req models.ResolveRequest) (models.ArchiveHandle, error)

	// FetchArchive downloads the archive named by handle and returns the
	// complete body. Failures, including an empty body, wrap [ErrNetwork].
	FetchArchive(ctx context.Context, req models.ResolveRequest, handle models.ArchiveHandle) ([]byte, error)
}
