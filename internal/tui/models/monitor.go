package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/internal/tui/components"
	"github.com/allbin/rtcsync/internal/tui/keys"
	"github.com/allbin/rtcsync/internal/tui/styles"
)

// TimeLayout is how clock values are shown to the user.
const TimeLayout = "01-02-2006 15:04:05"

// Device is the part of rtcsync.Client the monitor drives.
type Device interface {
	GetTime(ctx context.Context) (rtcsync.GetResult, error)
	SyncTime(ctx context.Context) (rtcsync.SetResult, error)
}

// MonitorConfig configures a Monitor.
type MonitorConfig struct {
	PortPath string
	BaudRate int
	Driver   string
	Interval time.Duration // between reads
	Timeout  time.Duration // per exchange
}

type tickMsg time.Time

// ReadingMsg carries the result of a get-time exchange.
type ReadingMsg struct {
	Result rtcsync.GetResult
	Err    error
}

// SyncedMsg carries the result of a set-time exchange.
type SyncedMsg struct {
	Result rtcsync.SetResult
	Err    error
}

// Monitor polls the device clock and shows it next to the host clock.
// Only one exchange is in flight at a time since the client is not
// safe for concurrent use.
type Monitor struct {
	ctx    context.Context
	device Device
	config MonitorConfig

	statusBar *components.StatusBar
	help      help.Model
	keys      keys.MonitorKeys

	activity components.Activity
	reading  *rtcsync.GetResult
	lastSync *rtcsync.SetResult
	err      error
	width    int
}

func NewMonitor(ctx context.Context, device Device, config MonitorConfig) *Monitor {
	if config.Interval <= 0 {
		config.Interval = 2 * time.Second
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	return &Monitor{
		ctx:    ctx,
		device: device,
		config: config,
		statusBar: components.NewStatusBar(config.PortPath, components.ConnectionInfo{
			BaudRate: config.BaudRate,
			Driver:   config.Driver,
		}),
		help: help.New(),
		keys: keys.NewMonitorKeys(),
	}
}

func (m *Monitor) Init() tea.Cmd {
	return tea.Batch(m.startRead(), m.tick())
}

func (m *Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width

	case tickMsg:
		return m, tea.Batch(m.startRead(), m.tick())

	case ReadingMsg:
		m.finish(msg.Err)
		if msg.Err == nil {
			res := msg.Result
			m.reading = &res
		}

	case SyncedMsg:
		m.finish(msg.Err)
		if msg.Err == nil {
			res := msg.Result
			m.lastSync = &res
			return m, m.startRead()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Sync):
			return m, m.startSync()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.startRead()
		}
	}

	return m, nil
}

func (m *Monitor) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("RTC monitor"))
	b.WriteString("\n\n")

	if m.reading != nil {
		r := m.reading
		b.WriteString(row("Device time", styles.ValueStyle.Render(r.Time.Format(TimeLayout))))
		b.WriteString(row("Unix epoch", styles.ValueStyle.Render(fmt.Sprint(r.Unix()))))
		b.WriteString(row("Host time", styles.ValueStyle.Render(r.Host.Format(TimeLayout))))
		b.WriteString(row("Drift", styles.DriftStyle(r.Drift).Render(r.Drift.String())))
	} else {
		b.WriteString(styles.MutedStyle.Render("Waiting for the first reading..."))
		b.WriteString("\n")
	}

	if m.lastSync != nil {
		b.WriteString(row("Last sync", styles.SuccessStyle.Render(m.lastSync.Time.Format(TimeLayout))))
	} else {
		b.WriteString(row("Last sync", styles.MutedStyle.Render("never")))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	helpView := m.help.View(m.keys)
	if m.help.ShowAll {
		helpView = styles.HelpBoxStyle.Render(helpView)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		b.String(),
		helpView,
		m.statusBar.View(time.Now().Format("15:04:05")),
	)
}

func row(label, value string) string {
	return styles.LabelStyle.Render(label) + value + "\n"
}

// Busy reports whether an exchange is in flight.
func (m *Monitor) Busy() bool {
	return m.activity != components.ActivityIdle
}

// Err returns the error from the last exchange, if it failed.
func (m *Monitor) Err() error {
	return m.err
}

func (m *Monitor) tick() tea.Cmd {
	return tea.Tick(m.config.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Monitor) startRead() tea.Cmd {
	if m.Busy() {
		return nil
	}
	m.setActivity(components.ActivityReading)

	ctx, device, timeout := m.ctx, m.device, m.config.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		res, err := device.GetTime(ctx)
		return ReadingMsg{Result: res, Err: err}
	}
}

func (m *Monitor) startSync() tea.Cmd {
	if m.Busy() {
		return nil
	}
	m.setActivity(components.ActivitySyncing)

	ctx, device, timeout := m.ctx, m.device, m.config.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		res, err := device.SyncTime(ctx)
		return SyncedMsg{Result: res, Err: err}
	}
}

func (m *Monitor) finish(err error) {
	m.setActivity(components.ActivityIdle)
	m.err = err
	m.statusBar.SetError(err)
}

func (m *Monitor) setActivity(a components.Activity) {
	m.activity = a
	m.statusBar.SetActivity(a)
}
