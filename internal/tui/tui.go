// Package tui provides a Bubble Tea terminal user interface for sekai-dl.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayutaki/sekai-dl/internal/config"
	"github.com/ayutaki/sekai-dl/internal/download"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateOptions State = iota
	StateLoading
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// logBuffer collects progress events from the manager's worker
// goroutines. The Bubble Tea model is copied by value on every
// update, so the buffer lives behind a shared pointer and the model
// copies the tail out on each tick.
type logBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (b *logBuffer) append(entry LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entry)
	if len(b.entries) > 200 {
		b.entries = b.entries[len(b.entries)-200:]
	}
}

func (b *logBuffer) tail(n int, verbose bool) []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]LogEntry, 0, n)
	for i := len(b.entries) - 1; i >= 0 && len(out) < n; i-- {
		if b.entries[i].Level == download.LevelVerbose && !verbose {
			continue
		}
		out = append(out, b.entries[i])
	}
	// Reverse back into chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state         State
	spinner       spinner.Model
	trackProgress progress.Model
	vocalProgress progress.Model
	settings      *config.Settings
	buffer        *logBuffer
	logs          []LogEntry
	err           error

	// Download context
	ctx    context.Context
	cancel context.CancelFunc

	// Download manager reference
	manager *download.Manager

	// Download progress
	tracksDone  int32
	tracksTotal int32
	vocalsDone  int32
	vocalsTotal int32

	// Options
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model on top of the given settings.
func NewModel(settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	trackProg := progress.New(progress.WithDefaultGradient())
	trackProg.Width = 50
	vocalProg := progress.New(progress.WithDefaultGradient())
	vocalProg.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:         StateOptions,
		spinner:       sp,
		trackProgress: trackProg,
		vocalProgress: vocalProg,
		settings:      settings,
		buffer:        &logBuffer{},
		ctx:           ctx,
		cancel:        cancel,
		playlist:      settings.CreatePlaylist,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// InitDoneMsg is sent when the catalog load completes.
	InitDoneMsg struct {
		Manager *download.Manager
		Err     error
	}

	// DownloadDoneMsg is sent when all downloads complete.
	DownloadDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		width := msg.Width - 20
		if width > 80 {
			width = 80
		}
		if width < 20 {
			width = 20
		}
		m.trackProgress.Width = width
		m.vocalProgress.Width = width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateOptions {
				return m, tea.Quit
			}
			if m.state == StateLoading || m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateOptions {
				m.state = StateLoading
				m.settings.CreatePlaylist = m.playlist
				return m, tea.Batch(m.loadCatalog(), m.spinner.Tick, m.tickProgress())
			}

		case "p":
			if m.state == StateOptions {
				m.playlist = !m.playlist
			}

		case "v":
			if m.state == StateOptions {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateOptions
				m.logs = nil
				m.err = nil
				m.manager = nil
				m.buffer = &logBuffer{}
				m.tracksDone, m.tracksTotal = 0, 0
				m.vocalsDone, m.vocalsTotal = 0, 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.state = StateDownloading
			cmds = append(cmds, m.startDownload(), m.tickProgress())
		}

	case DownloadDoneMsg:
		m.pullProgress()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.state == StateLoading || m.state == StateDownloading {
			m.pullProgress()

			var trackPercent, vocalPercent float64
			if m.tracksTotal > 0 {
				trackPercent = float64(m.tracksDone) / float64(m.tracksTotal)
			}
			if m.vocalsTotal > 0 {
				vocalPercent = float64(m.vocalsDone) / float64(m.vocalsTotal)
			}
			cmds = append(cmds,
				m.trackProgress.SetPercent(trackPercent),
				m.vocalProgress.SetPercent(vocalPercent),
				m.tickProgress())
		}

	case progress.FrameMsg:
		trackModel, trackCmd := m.trackProgress.Update(msg)
		m.trackProgress = trackModel.(progress.Model)
		vocalModel, vocalCmd := m.vocalProgress.Update(msg)
		m.vocalProgress = vocalModel.(progress.Model)
		cmds = append(cmds, trackCmd, vocalCmd)
	}

	return m, tea.Batch(cmds...)
}

// pullProgress copies the manager's counters and the log tail into
// the model.
func (m *Model) pullProgress() {
	if m.manager != nil {
		m.tracksDone, m.tracksTotal, m.vocalsDone, m.vocalsTotal = m.manager.GetProgress()
	}
	m.logs = m.buffer.tail(10, m.verbose)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Sekai Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download Project Sekai music"))
	b.WriteString("\n\n")

	switch m.state {
	case StateOptions:
		b.WriteString(m.viewOptions())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewOptions() string {
	var b strings.Builder

	playlistCheck := "[ ]"
	if m.playlist {
		playlistCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Create playlists (p)\n", playlistCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Download path: %s", m.settings.DownloadsPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching track catalog..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	var trackPercent, vocalPercent float64
	if m.tracksTotal > 0 {
		trackPercent = float64(m.tracksDone) / float64(m.tracksTotal)
	}
	if m.vocalsTotal > 0 {
		vocalPercent = float64(m.vocalsDone) / float64(m.vocalsTotal)
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("Tracks: %d/%d", m.tracksDone, m.tracksTotal)))
	b.WriteString("\n")
	b.WriteString(m.trackProgress.ViewAs(trackPercent))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Vocals: %d/%d", m.vocalsDone, m.vocalsTotal)))
	b.WriteString("\n")
	b.WriteString(m.vocalProgress.ViewAs(vocalPercent))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Download Complete!\n\n"+
			"Tracks: %d\n"+
			"Vocals: %d",
		m.tracksDone,
		m.vocalsDone,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateOptions:
		return "enter: start • p: playlists • v: verbose • esc: quit"
	case StateLoading, StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// loadCatalog fetches the master data and creates the manager.
func (m *Model) loadCatalog() tea.Cmd {
	buffer := m.buffer
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		// Progress events land in the shared buffer; the TUI polls
		// the tail via TickMsg.
		manager := download.NewManager(settings, func(event download.ProgressEvent) {
			buffer.append(LogEntry{Message: event.Message, Level: event.Level})
		})

		if err := manager.Initialize(ctx); err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{Manager: manager}
	}
}

// startDownload starts the actual download in background.
func (m *Model) startDownload() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		if manager == nil {
			return DownloadDoneMsg{Err: fmt.Errorf("no manager")}
		}
		return DownloadDoneMsg{Err: manager.StartDownloads(ctx)}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
