package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sleepdto "sleeptrack/internal/modules/sleep/dto"
	apperrors "sleeptrack/internal/platform/errors"
	"sleeptrack/internal/ui/format"
	"sleeptrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type sleepPort interface {
	Load(ctx context.Context) (sleepdto.SnapshotOutput, error)
	Start(ctx context.Context) (sleepdto.StartOutput, error)
	Stop(ctx context.Context) (sleepdto.StopOutput, error)
	Snapshot(ctx context.Context) sleepdto.SnapshotOutput
}

// ─── async messages ──────────────────────────────────────────────────────────

type historyLoadedMsg struct {
	snap sleepdto.SnapshotOutput
	err  error
}

type trackingStartedMsg struct {
	out  sleepdto.StartOutput
	snap sleepdto.SnapshotOutput
	err  error
}

type trackingStoppedMsg struct {
	out  sleepdto.StopOutput
	snap sleepdto.SnapshotOutput
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Start   key.Binding
	Stop    key.Binding
	Toggle  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start tracking")),
		Stop:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wake up")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start/stop")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Stop, k.Toggle}, {k.Dismiss, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the tracker state and turns key presses into Start/Stop
// calls. It keeps the latest snapshot from the port and never edits it.
type Model struct {
	sleep        sleepPort
	historyLimit int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	snap    sleepdto.SnapshotOutput
	notice  *sleepdto.Notice
	loading bool
	busy    bool
	status  string
	width   int
	height  int
}

func NewModel(sleep sleepPort, historyLimit int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Dawn)

	m := Model{
		sleep:        sleep,
		historyLimit: historyLimit,
		keys:         defaultKeys(),
		help:         help.New(),
		spinner:      sp,
		loading:      true,
	}
	m.syncKeys()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistoryCmd(), m.spinner.Tick)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "history unavailable: " + msg.err.Error()
		}
		m.snap = msg.snap

	case trackingStartedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = describe(msg.err)
		} else {
			m.status = ""
			m.notice = &msg.out.Notice
		}
		m.snap = msg.snap

	case trackingStoppedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = describe(msg.err)
		} else {
			m.status = ""
			if !msg.out.Persisted {
				m.status = "session kept for now, but it could not be saved"
			}
			m.notice = &msg.out.Notice
		}
		m.snap = msg.snap

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.notice != nil {
			// Any key closes the confirmation box.
			m.notice = nil
			break
		}
		if m.loading || m.busy {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Start):
			return m.dispatchStart()
		case key.Matches(msg, m.keys.Stop):
			return m.dispatchStop()
		case key.Matches(msg, m.keys.Toggle):
			if m.snap.Tracking {
				return m.dispatchStop()
			}
			return m.dispatchStart()
		}
	}

	m.syncKeys()
	return m, nil
}

func (m Model) dispatchStart() (tea.Model, tea.Cmd) {
	m.busy = true
	m.syncKeys()
	return m, m.startCmd()
}

func (m Model) dispatchStop() (tea.Model, tea.Cmd) {
	m.busy = true
	m.syncKeys()
	return m, m.stopCmd()
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sleep history…")
	}
	if m.notice != nil {
		box := theme.Notice.Render(
			theme.Accent.Render(m.notice.Title) + "\n\n" + m.notice.Message + "\n\n" +
				theme.Muted.Render("press any key"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	w := m.contentWidth()
	sections := []string{
		m.renderHeader(w),
		m.renderTracking(w),
		m.renderHistory(w),
	}
	if m.status != "" {
		sections = append(sections, theme.Muted.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader(w int) string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Sleep Tracker"),
		theme.Subtitle.Render("Track your sleep patterns"),
	)
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Padding(1, 0).Render(header)
}

func (m Model) renderTracking(w int) string {
	if !m.snap.Tracking {
		return theme.StartButton.Width(w).Render("Start Sleep Tracking\n🌙 press s to begin")
	}
	stop := theme.StopButton.Width(w - 8).Render("Wake Up\n☀️ press w to end sleep session")
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Accent.Render("Sleep tracking active"),
		theme.Muted.Render("Started at "+format.Time(m.snap.Current.StartTime)),
		"",
		stop,
	)
	return theme.ActiveCard.Width(w - 2).Render(body)
}

func (m Model) renderHistory(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Section.Render("Sleep History"))
	sb.WriteString("\n")

	visible := VisibleHistory(m.snap.History, m.historyLimit)
	if len(visible) == 0 {
		sb.WriteString(theme.Empty.Width(w).Align(lipgloss.Center).Render("No sleep sessions recorded yet"))
		return lipgloss.NewStyle().MarginTop(1).Render(sb.String())
	}
	rows := make([]string, len(visible))
	for i, s := range visible {
		rows[i] = renderHistoryItem(s, w)
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.NewStyle().MarginTop(1).Render(sb.String())
}

func renderHistoryItem(s sleepdto.SessionOutput, w int) string {
	date := theme.Title.Render(format.Date(s.StartTime))
	duration := ""
	if !s.InProgress {
		duration = theme.Accent.Render(format.Duration(s.DurationMin))
	}
	gap := w - 2 - lipgloss.Width(date) - lipgloss.Width(duration)
	if gap < 1 {
		gap = 1
	}
	head := date + strings.Repeat(" ", gap) + duration
	end := s.EndTime
	if s.InProgress {
		end = time.Time{}
	}
	span := theme.Muted.Render(format.Range(s.StartTime, end))
	return theme.HistoryItem.Width(w).Render(head + "\n" + span)
}

// VisibleHistory caps the rendered history to the limit most recent entries.
// The store keeps everything; only rendering is capped.
func VisibleHistory(history []sleepdto.SessionOutput, limit int) []sleepdto.SessionOutput {
	if limit <= 0 || len(history) <= limit {
		return history
	}
	return history[:limit]
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) syncKeys() {
	idle := !m.loading && !m.busy && m.notice == nil
	m.keys.Start.SetEnabled(idle && !m.snap.Tracking)
	m.keys.Stop.SetEnabled(idle && m.snap.Tracking)
	m.keys.Toggle.SetEnabled(idle)
	m.keys.Dismiss.SetEnabled(m.notice != nil)
}

func (m Model) contentWidth() int {
	const maxWidth = 60
	if m.width <= 0 {
		return maxWidth
	}
	w := m.width - theme.App.GetHorizontalFrameSize()
	if w > maxWidth {
		w = maxWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyTracking):
		return "already tracking a sleep session"
	case errors.Is(err, apperrors.ErrNotTracking):
		return "no sleep session to stop"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.sleep.Load(context.Background())
		return historyLoadedMsg{snap: snap, err: err}
	}
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.sleep.Start(ctx)
		return trackingStartedMsg{out: out, snap: m.sleep.Snapshot(ctx), err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.sleep.Stop(ctx)
		return trackingStoppedMsg{out: out, snap: m.sleep.Snapshot(ctx), err: err}
	}
}
