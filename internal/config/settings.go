// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/notesync/models"
)

// Defaults of the persisted settings record.
const (
	DefaultLocalFolderPath = "WiscO"
	DefaultBaseURL         = "https://wisco.tunnelto.dev"
	DefaultOnlyNew         = "true"
)

// Settings is the persisted key-value settings record. It is always loaded
// and saved as a whole. The first four keys are the ones every installation
// carries; the rest are optional.
type Settings struct {
	SyncKey         string `json:"syncKey"`
	LocalFolderPath string `json:"localFolderPath"`
	BaseURL         string `json:"baseUrl"`
	OnlyNew         string `json:"onlyNew"`

	Remote         string   `json:"remote,omitempty"`
	Codec          string   `json:"codec,omitempty"`
	KeepArchive    bool     `json:"keepArchive,omitempty"`
	StagingDir     string   `json:"stagingDir,omitempty"`
	Include        []string `json:"include,omitempty"`
	Exclude        []string `json:"exclude,omitempty"`
	VaultDir       string   `json:"vaultDir,omitempty"`
	HistoryDSN     string   `json:"historyDsn,omitempty"`
	RequestTimeout Duration `json:"requestTimeout,omitempty"`
	SyncInterval   Duration `json:"syncInterval,omitempty"`
	LogFile        string   `json:"logFile,omitempty"`
}

// DefaultSettings returns the record a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		SyncKey:         models.DefaultSyncKey,
		LocalFolderPath: DefaultLocalFolderPath,
		BaseURL:         DefaultBaseURL,
		OnlyNew:         DefaultOnlyNew,
	}
}

// DefaultSettingsPath returns <user config dir>/notesync/settings.json, or
// "settings.json" in the working directory when the user config dir is
// unknown.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "settings.json"
	}
	return filepath.Join(dir, "notesync", "settings.json")
}

// LoadSettings reads the settings record at path and fills every missing key
// with its default. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings, err := readSettings(path)
	if err != nil {
		return Settings{}, err
	}

	if err = mergo.Merge(&settings, DefaultSettings()); err != nil {
		return Settings{}, fmt.Errorf("error merging default settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes the whole settings record to path, creating parent
// directories as needed.
func SaveSettings(path string, settings Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating settings dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}
	return nil
}

// SettingsFromConfig extracts the persisted record from a merged config.
func SettingsFromConfig(cfg *StructuredConfig) Settings {
	return Settings{
		SyncKey:         cfg.Sync.SyncKey,
		LocalFolderPath: cfg.Sync.LocalFolderPath,
		BaseURL:         cfg.Sync.BaseURL,
		OnlyNew:         cfg.Sync.OnlyNew,
		Remote:          cfg.Adapter.Remote,
		Codec:           cfg.Sync.Codec,
		KeepArchive:     cfg.Sync.KeepArchive,
		StagingDir:      cfg.Sync.StagingDir,
		Include:         cfg.Sync.Include,
		Exclude:         cfg.Sync.Exclude,
		VaultDir:        cfg.Storage.VaultDir,
		HistoryDSN:      cfg.Storage.HistoryDSN,
		RequestTimeout:  Duration(cfg.Adapter.RequestTimeout),
		SyncInterval:    Duration(cfg.Workers.SyncInterval),
		LogFile:         cfg.Log.File,
	}
}

func readSettings(path string) (Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("error reading settings file: %w", err)
	}
	defer file.Close()

	var settings Settings
	if err = json.NewDecoder(file).Decode(&settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings file: %w", err)
	}
	return settings, nil
}

func (s Settings) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Sync: Sync{
			SyncKey:         s.SyncKey,
			BaseURL:         s.BaseURL,
			LocalFolderPath: s.LocalFolderPath,
			OnlyNew:         s.OnlyNew,
			Codec:           s.Codec,
			KeepArchive:     s.KeepArchive,
			StagingDir:      s.StagingDir,
			Include:         s.Include,
			Exclude:         s.Exclude,
		},
		Adapter: Adapter{
			Remote:         s.Remote,
			RequestTimeout: time.Duration(s.RequestTimeout),
		},
		Storage: Storage{
			VaultDir:   s.VaultDir,
			HistoryDSN: s.HistoryDSN,
		},
		Workers: Workers{SyncInterval: time.Duration(s.SyncInterval)},
		Log:     Log{File: s.LogFile},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
