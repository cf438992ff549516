package models

// MsgNoNewFiles is the status message the remote returns when there is
// nothing new to download for the caller.
const MsgNoNewFiles = "No new files to download"

// ZipFileNameResponse is the JSON body of POST /v1/getZipFileName.
type ZipFileNameResponse struct {
	// ZipFileName is the archive identifier to pass to /v1/dlZip.
	ZipFileName string `json:"zip_file_name,omitempty"`
	// Message carries an informational status, e.g. [MsgNoNewFiles].
	Message string `json:"message,omitempty"`
}

// DownloadSettings is JSON-encoded into the "settings" form field of
// POST /v1/getZipFileName.
type DownloadSettings struct {
	DlOnlyNew bool `json:"dlOnlyNew"`
}

// ArchiveDigestHeader carries the hex SHA-256 of the /v1/dlZip body. Clients
// verify it when present.
const ArchiveDigestHeader = "X-Archive-SHA256"
