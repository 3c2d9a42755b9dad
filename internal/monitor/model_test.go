package monitor

import (
	"context"
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	qt "github.com/frankban/quicktest"

	"github.com/jangala-dev/tinygo-irdetect/internal/capture"
	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func feed(det *irdetect.Detector, cmds ...irdetect.Command) {
	for _, t := range capture.Encode(cmds, 0, capture.DefaultTiming) {
		det.OnFallingEdge(t)
	}
}

func TestModel_TickDrainsDetector(t *testing.T) {
	c := qt.New(t)
	det := irdetect.NewDetector()
	var m tea.Model = New(det, irdetect.DefaultLabels, "test")

	feed(det, irdetect.Up, irdetect.Down, 7)
	m, cmd := m.Update(TickMsg(time.Now()))
	c.Assert(cmd, qt.IsNotNil)
	c.Assert(det.Available(), qt.IsFalse)

	mm := m.(Model)
	c.Assert(mm.total, qt.Equals, 3)
	c.Assert(mm.history, qt.HasLen, 3)
	c.Assert(mm.history[2].cmd, qt.Equals, irdetect.Command(7))

	view := mm.View()
	c.Assert(view, qt.Contains, "UP")
	c.Assert(view, qt.Contains, "DOWN")
	c.Assert(view, qt.Contains, "UP:1")
	c.Assert(view, qt.Contains, "decoded: 3")
}

func TestModel_PauseLeavesWordsQueued(t *testing.T) {
	c := qt.New(t)
	det := irdetect.NewDetector()
	var m tea.Model = New(det, irdetect.DefaultLabels, "test")

	m, _ = m.Update(key('p'))
	feed(det, irdetect.A)
	m, _ = m.Update(TickMsg(time.Now()))
	c.Assert(m.(Model).total, qt.Equals, 0)
	c.Assert(det.Buffered(), qt.Equals, 1)
	c.Assert(m.View(), qt.Contains, "[PAUSED]")

	m, _ = m.Update(key('p'))
	m, _ = m.Update(TickMsg(time.Now()))
	c.Assert(m.(Model).total, qt.Equals, 1)

	m, _ = m.Update(key('c'))
	c.Assert(m.(Model).total, qt.Equals, 0)
	c.Assert(m.(Model).history, qt.HasLen, 0)
}

func TestModel_HistoryBounded(t *testing.T) {
	c := qt.New(t)
	det := irdetect.NewDetector()
	var m tea.Model = New(det, irdetect.DefaultLabels, "test")

	for i := 0; i < historyLen+20; i++ {
		feed(det, irdetect.Command(i))
		m, _ = m.Update(TickMsg(time.Now()))
	}
	mm := m.(Model)
	c.Assert(mm.history, qt.HasLen, historyLen)
	c.Assert(mm.history[historyLen-1].cmd, qt.Equals, irdetect.Command(historyLen+19))
}

func TestModel_QuitAndSourceDone(t *testing.T) {
	c := qt.New(t)
	var m tea.Model = New(irdetect.NewDetector(), irdetect.DefaultLabels, "replay")

	m, _ = m.Update(SourceDoneMsg{})
	c.Assert(m.View(), qt.Contains, "[DONE]")

	_, cmd := m.Update(key('q'))
	c.Assert(cmd, qt.IsNotNil)
	c.Assert(cmd(), qt.Equals, tea.Quit())
}

func TestReplaySource_FeedsReceiver(t *testing.T) {
	c := qt.New(t)
	det := irdetect.NewDetector()
	rx := irdetect.NewReceiver(det)
	c.Assert(rx.Configure(irdetect.ReceiverConfig{}), qt.IsNil)

	want := []irdetect.Command{irdetect.OnOff, irdetect.Center}
	src := ReplaySource{
		Label:      "mem",
		Timestamps: capture.Encode(want, 0, capture.DefaultTiming),
		Speed:      1000,
	}
	c.Assert(src.Run(context.Background(), rx), qt.IsNil)

	var got []irdetect.Command
	for det.Available() {
		got = append(got, det.Pop())
	}
	c.Assert(got, qt.DeepEquals, want)
}

func TestDemoSource_ProducesKnownWords(t *testing.T) {
	c := qt.New(t)
	det := irdetect.NewDetector()
	rx := irdetect.NewReceiver(det)
	c.Assert(rx.Configure(irdetect.ReceiverConfig{}), qt.IsNil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- DemoSource{
			Labels:   irdetect.DefaultLabels,
			Interval: time.Millisecond,
			Rand:     rand.New(rand.NewSource(3)),
		}.Run(ctx, rx)
	}()

	got, err := det.PopWithTimeout(time.Second)
	cancel()
	c.Assert(err, qt.IsNil)
	_, known := irdetect.DefaultLabels.Lookup(got)
	c.Assert(known, qt.IsTrue)

	select {
	case err := <-done:
		c.Assert(err, qt.IsNil)
	case <-time.After(time.Second):
		c.Fatal("demo source did not stop")
	}
}
