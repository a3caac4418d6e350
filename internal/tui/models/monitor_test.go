package models

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allbin/rtcsync"
)

type fakeDevice struct {
	get    rtcsync.GetResult
	getErr error
	set    rtcsync.SetResult
	setErr error

	gets, syncs int
}

func (d *fakeDevice) GetTime(ctx context.Context) (rtcsync.GetResult, error) {
	d.gets++
	return d.get, d.getErr
}

func (d *fakeDevice) SyncTime(ctx context.Context) (rtcsync.SetResult, error) {
	d.syncs++
	return d.set, d.setErr
}

func newTestMonitor(d *fakeDevice) *Monitor {
	return NewMonitor(context.Background(), d, MonitorConfig{
		PortPath: "/dev/ttyUSB0",
		BaudRate: 115200,
		Driver:   "native",
		Interval: time.Hour,
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sampleReading() rtcsync.GetResult {
	device := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return rtcsync.GetResult{
		Epoch: uint32(device.Unix()),
		Time:  device,
		Host:  device.Add(3 * time.Second),
		Drift: 3 * time.Second,
	}
}

func TestMonitorReadCycle(t *testing.T) {
	d := &fakeDevice{get: sampleReading()}
	m := newTestMonitor(d)

	cmd := m.startRead()
	require.NotNil(t, cmd)
	assert.True(t, m.Busy())

	// A second read while one is in flight is dropped.
	assert.Nil(t, m.startRead())

	msg := cmd()
	require.IsType(t, ReadingMsg{}, msg)
	assert.Equal(t, 1, d.gets)

	m.Update(msg)
	assert.False(t, m.Busy())
	require.NoError(t, m.Err())

	view := m.View()
	assert.Contains(t, view, "05-01-2024 10:00:00")
	assert.Contains(t, view, "05-01-2024 10:00:03")
	assert.Contains(t, view, "3s")
	assert.Contains(t, view, "never")
}

func TestMonitorReadErrorIsShown(t *testing.T) {
	d := &fakeDevice{getErr: rtcsync.ErrTimeout}
	m := newTestMonitor(d)

	m.Update(m.startRead()())
	assert.False(t, m.Busy())
	assert.ErrorIs(t, m.Err(), rtcsync.ErrTimeout)
	assert.Contains(t, m.View(), rtcsync.ErrTimeout.Error())

	// The next successful read clears it.
	d.getErr = nil
	d.get = sampleReading()
	m.Update(m.startRead()())
	assert.NoError(t, m.Err())
}

func TestMonitorSyncKey(t *testing.T) {
	d := &fakeDevice{
		get: sampleReading(),
		set: rtcsync.SetResult{Time: time.Date(2024, 5, 1, 10, 0, 3, 0, time.UTC), Written: 5},
	}
	m := newTestMonitor(d)

	_, cmd := m.Update(runeKey('s'))
	require.NotNil(t, cmd)
	assert.True(t, m.Busy())

	msg := cmd()
	require.IsType(t, SyncedMsg{}, msg)
	assert.Equal(t, 1, d.syncs)

	// A successful sync is followed by an immediate read.
	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, d.gets)
	assert.Contains(t, m.View(), "05-01-2024 10:00:03")
}

func TestMonitorSyncFailure(t *testing.T) {
	d := &fakeDevice{setErr: rtcsync.ErrProtocolMismatch}
	m := newTestMonitor(d)

	_, cmd := m.Update(runeKey('s'))
	_, next := m.Update(cmd())
	assert.Nil(t, next)
	assert.ErrorIs(t, m.Err(), rtcsync.ErrProtocolMismatch)
}

func TestMonitorSyncWhileBusy(t *testing.T) {
	m := newTestMonitor(&fakeDevice{})
	m.startRead()

	_, cmd := m.Update(runeKey('s'))
	assert.Nil(t, cmd)
}

func TestMonitorQuit(t *testing.T) {
	m := newTestMonitor(&fakeDevice{})

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestMonitorHelpToggle(t *testing.T) {
	m := newTestMonitor(&fakeDevice{})
	short := m.View()

	m.Update(runeKey('?'))
	full := m.View()
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, full, "read now")
	assert.False(t, strings.Contains(short, "read now"))
}

func TestMonitorDefaults(t *testing.T) {
	m := NewMonitor(context.Background(), &fakeDevice{}, MonitorConfig{})
	assert.Equal(t, 2*time.Second, m.config.Interval)
	assert.Equal(t, 5*time.Second, m.config.Timeout)
}

func TestMonitorWindowSize(t *testing.T) {
	m := newTestMonitor(&fakeDevice{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
}
