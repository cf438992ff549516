// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/notesync/models"
)

// Notice renders the one-line user notification for a finished sync.
func Notice(outcome models.SyncOutcome) string {
	msg := outcome.Message()

	switch outcome.Status {
	case models.StatusSuccess:
		if outcome.CleanupWarning != nil {
			return successStyle.Render(msg) + " " + warnStyle.Render("(staged archive was not removed)")
		}
		return successStyle.Render(msg)
	case models.StatusNoNewContent, models.StatusBusy:
		return infoStyle.Render(msg)
	case models.StatusDegraded:
		return warnStyle.Render(msg)
	default:
		return errorStyle.Render(msg)
	}
}

// Notifier writes one notice per sync outcome to out.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Report implements the outcome callback of the sync job.
func (n *Notifier) Report(outcome models.SyncOutcome) {
	fmt.Fprintln(n.out, Notice(outcome))
}

// RenderHistory renders recorded runs newest first as an aligned table.
func RenderHistory(runs []models.SyncRun) string {
	if len(runs) == 0 {
		return helpStyle.Render("No sync runs recorded yet")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%-20s  %-22s  %7s  %s", "STARTED", "STATUS", "WRITTEN", "ARCHIVE")))
	for _, run := range runs {
		b.WriteString("\n")
		status := fmt.Sprintf("%-22s", run.Status)
		b.WriteString(fmt.Sprintf("%-20s  %s  %7d  %s",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			statusStyle(run.Status).Render(status),
			run.Written,
			valueOrDash(run.Archive),
		))
		if len(run.FailedPaths) > 0 {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render("  failed: " + strings.Join(run.FailedPaths, ", ")))
		}
	}
	return b.String()
}

// RenderSettings renders the persisted settings record. The sync key is
// masked unless it is still the placeholder.
func RenderSettings(path string, rows [][2]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render("Settings")+" "+helpStyle.Render(path))
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(row[0])+valueOrDash(row[1]))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// MaskKey hides all but the last four characters of a sync key.
func MaskKey(key string) string {
	if key == "" || key == models.DefaultSyncKey {
		return key
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// RenderBuildInfo renders the version banner.
func RenderBuildInfo(info models.BuildInfo) string {
	return titleStyle.Render("notesync") + " " + info.String()
}

func statusStyle(status models.SyncStatus) lipgloss.Style {
	switch status {
	case models.StatusSuccess:
		return successStyle
	case models.StatusNoNewContent, models.StatusBusy:
		return infoStyle
	case models.StatusDegraded:
		return warnStyle
	default:
		return errorStyle
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
