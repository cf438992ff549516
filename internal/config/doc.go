// Package config provides configuration loading, merging, and validation
// facilities for notesync.
//
// Configuration is assembled from several sources. Sources are merged with
// mergo so that the first source providing a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (NOTESYNC_ prefix)
//  3. The JSON settings file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the sync CLI and
// [GetServerConfig] for the reference sync server. The settings file itself is
// read and written as a whole record with [LoadSettings] and [SaveSettings].
package config
