package models

import "time"

// DefaultSyncKey is the placeholder credential written into a fresh settings
// record. A configuration still carrying it has never been set up.
const DefaultSyncKey = "default"

// SyncConfiguration is the read-only input of a single sync run. It is built
// once at invocation time from the merged client configuration and passed by
// value into the orchestrator.
type SyncConfiguration struct {
	// Credential is the opaque sync key sent as the Authorization header.
	Credential string
	// BaseURL is the endpoint root of the remote service
	// (for example "https://wisco.tunnelto.dev" or "s3://bucket/prefix").
	BaseURL string
	// LocalTargetPath is the vault-relative directory the archive is
	// expanded into.
	LocalTargetPath string
	// OnlyNew asks the remote to return only content added since the last
	// successful download.
	OnlyNew bool

	// KeepArchive retains the staged archive after the run instead of
	// deleting it.
	KeepArchive bool
	// StagingDir is the vault-relative directory the fetched archive is
	// staged in. Empty means the vault root.
	StagingDir string
	// Include and Exclude are doublestar patterns matched against archive
	// entry paths. An empty Include matches everything.
	Include []string
	Exclude []string
}

// HasCredential reports whether the credential is present and is not the
// unconfigured placeholder.
func (c SyncConfiguration) HasCredential() bool {
	return c.Credential != "" && c.Credential != DefaultSyncKey
}

// ResolveRequest is what the remote needs to resolve and fetch an archive.
type ResolveRequest struct {
	BaseURL    string
	Credential string
	OnlyNew    bool

	// Since is the start time of the last successful run, if known. Remotes
	// without server-side bookkeeping use it to implement OnlyNew.
	Since *time.Time
}

// ResolveRequest builds the remote request for this configuration.
func (c SyncConfiguration) ResolveRequest(since *time.Time) ResolveRequest {
	return ResolveRequest{
		BaseURL:    c.BaseURL,
		Credential: c.Credential,
		OnlyNew:    c.OnlyNew,
		Since:      since,
	}
}
