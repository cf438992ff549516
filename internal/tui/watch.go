// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/models"
)

type syncDoneMsg struct {
	outcome models.SyncOutcome
	at      time.Time
}

// tickMsg fires the next scheduled sync. Ticks from an older schedule are
// ignored.
type tickMsg struct {
	schedule int
}

type watchModel struct {
	ctx      context.Context
	svc      service.ClientSyncService
	cfg      models.SyncConfiguration
	interval time.Duration
	now      func() time.Time

	spinner  spinner.Model
	running  bool
	schedule int
	runs     int
	last     *syncDoneMsg
	nextAt   time.Time
}

func newWatchModel(ctx context.Context, svc service.ClientSyncService, cfg models.SyncConfiguration, interval time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return watchModel{
		ctx:      ctx,
		svc:      svc,
		cfg:      cfg,
		interval: interval,
		now:      time.Now,
		spinner:  s,
		running:  true,
	}
}

// Init starts the spinner and the first sync.
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.syncCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.sync):
			if m.running {
				return m, nil
			}
			m.running = true
			return m, m.syncCmd()
		}

	case syncDoneMsg:
		m.running = false
		m.runs++
		m.last = &msg
		m.schedule++
		m.nextAt = msg.at.Add(m.interval)
		schedule := m.schedule
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{schedule: schedule} })

	case tickMsg:
		if m.running || msg.schedule != m.schedule {
			return m, nil
		}
		m.running = true
		return m, m.syncCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) syncCmd() tea.Cmd {
	svc, ctx, cfg, now := m.svc, m.ctx, m.cfg, m.now
	return func() tea.Msg {
		outcome := svc.Sync(ctx, cfg)
		return syncDoneMsg{outcome: outcome, at: now()}
	}
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("notesync watch"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s -> %s", m.cfg.BaseURL, valueOrDash(m.cfg.LocalTargetPath))))
	b.WriteString("\n\n")

	if m.running {
		b.WriteString(m.spinner.View())
		b.WriteString(" Syncing (")
		b.WriteString(string(m.svc.State()))
		b.WriteString(")...")
	} else {
		b.WriteString("Next sync at ")
		b.WriteString(m.nextAt.Local().Format("15:04:05"))
	}
	b.WriteString("\n")

	if m.last != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Last run"))
		b.WriteString(m.last.at.Local().Format("15:04:05"))
		b.WriteString("\n")
		b.WriteString(Notice(m.last.outcome))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d run(s)  %s: %s  %s: %s",
		m.runs,
		keys.sync.Help().Key, keys.sync.Help().Desc,
		keys.quit.Help().Key, keys.quit.Help().Desc,
	)))

	return appStyle.Render(b.String())
}

// RunWatch shows the watch dashboard until the user quits or ctx is
// canceled. A sync runs at start, every interval after the previous one
// finished, and on demand.
func RunWatch(ctx context.Context, svc service.ClientSyncService, cfg models.SyncConfiguration, interval time.Duration) error {
	_, err := tea.NewProgram(newWatchModel(ctx, svc, cfg, interval), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("watch dashboard: %w", err)
	}
	return nil
}
