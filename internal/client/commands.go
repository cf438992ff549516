// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/tui"
	"github.com/MKhiriev/notesync/models"
)

const defaultHistoryLimit = 20

// ErrSyncFailed is returned by the sync command when the run did not succeed.
// The notice has already been printed.
var ErrSyncFailed = errors.New("sync failed")

// NewRootCommand builds the notesync command tree.
func NewRootCommand(info models.BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "notesync",
		Short: "Download notes from a WiscO sync remote into a local vault",
		Long: `notesync fetches the notes archive published for your sync key and
expands it into a folder of your vault, overwriting earlier copies.`,
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := config.RegisterClientFlags(root.PersistentFlags())

	root.AddCommand(
		newSyncCommand(flags),
		newWatchCommand(flags),
		newHistoryCommand(flags),
		newSettingsCommand(flags),
		newVersionCommand(info),
	)
	return root
}

// withApp builds the client config and the app, runs fn and closes the app.
func withApp(cmd *cobra.Command, flags *config.StructuredConfig, fn func(ctx context.Context, app Client) error) error {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("notesync", cfg.LogFile)
	ctx := log.WithContext(cmd.Context())

	app, err := NewApp(ctx, cfg, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("error closing storages")
		}
	}()

	return fn(ctx, app)
}

func newSyncCommand(flags *config.StructuredConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app Client) error {
				if outcome := app.Sync(ctx); !outcome.IsSuccess() {
					return fmt.Errorf("%w: %s", ErrSyncFailed, outcome.Status)
				}
				return nil
			})
		},
	}
}

func newWatchCommand(flags *config.StructuredConfig) *cobra.Command {
	var dashboard bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return withApp(cmd, flags, func(ctx context.Context, app Client) error {
				return app.Watch(ctx, dashboard)
			})
		},
	}

	cmd.Flags().BoolVar(&dashboard, "dashboard", false, "Show the interactive dashboard")
	return cmd
}

func newHistoryCommand(flags *config.StructuredConfig) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sync runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app Client) error {
				return app.History(ctx, limit)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of runs to show")
	return cmd
}

func newSettingsCommand(flags *config.StructuredConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or save the persisted settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the settings file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := settingsPath(flags)
				settings, err := config.LoadSettings(path)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSettings(path, settingsRows(settings)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Write the effective settings (flags, environment, file, defaults) to the settings file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.GetStructuredConfig(flags)
				if err != nil {
					return err
				}

				if err = config.SaveSettings(cfg.SettingsFilePath, config.SettingsFromConfig(cfg)); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Settings saved to %s\n", cfg.SettingsFilePath)
				return nil
			},
		},
	)
	return cmd
}

func newVersionCommand(info models.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBuildInfo(info))
		},
	}
}

func settingsPath(flags *config.StructuredConfig) string {
	if flags != nil && flags.SettingsFilePath != "" {
		return flags.SettingsFilePath
	}
	if path := os.Getenv(config.EnvPrefix + "CONFIG"); path != "" {
		return path
	}
	return config.DefaultSettingsPath()
}

func settingsRows(s config.Settings) [][2]string {
	return [][2]string{
		{"syncKey", tui.MaskKey(s.SyncKey)},
		{"localFolderPath", s.LocalFolderPath},
		{"baseUrl", s.BaseURL},
		{"onlyNew", s.OnlyNew},
		{"remote", s.Remote},
		{"codec", s.Codec},
		{"keepArchive", strconv.FormatBool(s.KeepArchive)},
		{"stagingDir", s.StagingDir},
		{"include", strings.Join(s.Include, ", ")},
		{"exclude", strings.Join(s.Exclude, ", ")},
		{"vaultDir", s.VaultDir},
		{"historyDsn", s.HistoryDSN},
	}
}
