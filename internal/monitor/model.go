// Package monitor is a terminal view of decoded commands. A Source drives a
// Receiver from its own goroutine while the Bubble Tea tick loop polls the
// Detector, the same producer/consumer split as on the device.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jangala-dev/tinygo-irdetect/internal/ui"
	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

const (
	pollInterval = 50 * time.Millisecond
	historyLen   = 64
)

// TickMsg triggers a poll of the detector.
type TickMsg time.Time

// SourceDoneMsg reports that the source goroutine returned.
type SourceDoneMsg struct {
	Err error
}

type entry struct {
	at  time.Time
	cmd irdetect.Command
}

// shared holds state that every copy of the value-receiver Model must see.
type shared struct {
	det    *irdetect.Detector
	labels irdetect.Labels
	counts map[irdetect.Command]int
}

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	source  string
	paused  bool
	done    bool
	doneErr error
	total   int
	history []entry

	shared *shared
}

// New returns a model polling det.
func New(det *irdetect.Detector, labels irdetect.Labels, source string) Model {
	return Model{
		source: source,
		shared: &shared{
			det:    det,
			labels: labels,
			counts: make(map[irdetect.Command]int),
		},
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m = m.poll(time.Time(msg))
		return m, tickCmd()

	case SourceDoneMsg:
		m.done = true
		m.doneErr = msg.Err
		return m, nil
	}
	return m, nil
}

// poll drains the detector. While paused, words stay queued and the ring
// buffer's overwrite policy decides what survives.
func (m Model) poll(now time.Time) Model {
	if m.paused {
		return m
	}
	det := m.shared.det
	for det.Available() {
		cmd := det.Pop()
		m.total++
		m.shared.counts[cmd]++
		m.history = append(m.history, entry{at: now, cmd: cmd})
	}
	if n := len(m.history); n > historyLen {
		m.history = append([]entry(nil), m.history[n-historyLen:]...)
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit
	case "p", "P", " ":
		m.paused = !m.paused
	case "c", "C":
		m.history = nil
		m.total = 0
		m.shared.counts = make(map[irdetect.Command]int)
	}
	return m, nil
}

func (m Model) View() string {
	title := ui.StyleTitleBar.Render(fmt.Sprintf("IR MONITOR  source: %s", m.source))

	rows := m.height - 6
	if rows < 5 {
		rows = 10
	}
	start := len(m.history) - rows
	if start < 0 {
		start = 0
	}
	var lines []string
	for i := len(m.history) - 1; i >= start; i-- {
		e := m.history[i]
		line := e.at.Format("15:04:05.000") + "  " + ui.CommandLine(m.shared.labels, e.cmd, false)
		if i == len(m.history)-1 {
			line = ui.StyleLatest.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, ui.StyleUnknown.Render("waiting for a button press..."))
	}
	panel := ui.StylePanel.Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, panel, m.countsLine(), m.statusLine())
}

func (m Model) countsLine() string {
	var parts []string
	for _, cmd := range m.shared.labels.Commands() {
		name, _ := m.shared.labels.Lookup(cmd)
		parts = append(parts, fmt.Sprintf("%s:%d", name, m.shared.counts[cmd]))
	}
	return strings.Join(parts, "  ")
}

func (m Model) statusLine() string {
	state := "[LIVE]"
	switch {
	case m.done && m.doneErr != nil:
		state = "[ERROR: " + m.doneErr.Error() + "]"
	case m.done:
		state = "[DONE]"
	case m.paused:
		state = "[PAUSED]"
	}
	info := fmt.Sprintf(" decoded: %d  queued: %d/%d  q quit  p pause  c clear",
		m.total, m.shared.det.Buffered(), irdetect.BufferSize)
	content := state + info
	if m.width > 0 {
		return ui.StyleStatusBar.Width(m.width).Render(content)
	}
	return ui.StyleStatusBar.Render(content)
}

// Run starts src against a fresh detector and blocks in the Bubble Tea
// program until the user quits.
func Run(ctx context.Context, src Source, labels irdetect.Labels, opts ...tea.ProgramOption) error {
	det := irdetect.NewDetector()
	defer det.Close()

	rx := irdetect.NewReceiver(det)
	if err := rx.Configure(irdetect.ReceiverConfig{}); err != nil {
		return fmt.Errorf("monitor: configure receiver: %w", err)
	}
	defer rx.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(det, labels, src.Name()), opts...)
	go func() {
		err := src.Run(ctx, rx)
		if err != nil && ctx.Err() == nil {
			slog.Warn("monitor: source stopped", "source", src.Name(), "err", err)
		}
		p.Send(SourceDoneMsg{Err: err})
	}()

	_, err := p.Run()
	return err
}
