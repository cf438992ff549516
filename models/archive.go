package models

// ArchiveHandle identifies a retrievable remote archive. The name is opaque:
// it is returned by the resolve step and passed back verbatim on fetch.
type ArchiveHandle struct {
	Name string
}

// ArchiveEntry is a single decoded archive member.
type ArchiveEntry struct {
	// Path is relative, forward-slash separated and free of ".." segments.
	Path string
	// IsDir marks a directory entry. Directory entries carry no Contents.
	IsDir bool
	// Contents holds the uncompressed file bytes.
	Contents []byte
}
