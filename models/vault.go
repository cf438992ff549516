package models

// EntryKind tells what, if anything, lives at a vault path.
type EntryKind int

const (
	EntryAbsent EntryKind = iota
	EntryFile
	EntryFolder
)

// String implements fmt.Stringer.
func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryFolder:
		return "folder"
	default:
		return "absent"
	}
}

// VaultEntry describes a vault path and its kind.
type VaultEntry struct {
	Path string
	Kind EntryKind
}
