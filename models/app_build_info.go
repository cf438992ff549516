package models

import "fmt"

const buildInfoUnset = "N/A"

// BuildInfo is the linker-injected version metadata of a notesync binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns build metadata with empty values replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnset(version),
		Date:    orUnset(date),
		Commit:  orUnset(commit),
	}
}

// String renders the metadata on one line, as printed by `notesync --version`.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", b.Version, b.Date, b.Commit)
}

func orUnset(v string) string {
	if v == "" {
		return buildInfoUnset
	}
	return v
}
