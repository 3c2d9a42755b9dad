//go:build irdebug

package irdetect

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDebugStats_CountsSymbolsAndOverwrites(t *testing.T) {
	c := qt.New(t)
	d := NewDetector()

	var now uint32
	for i := 0; i < int(BufferSize)+2; i++ {
		now = sendWord(d, now, Down) // 0x00ff: eight zeros, eight ones
	}
	s := d.DebugStats()
	words := uint32(BufferSize) + 2
	c.Assert(s.Edges, qt.Equals, words*17)
	c.Assert(s.FrameResets, qt.Equals, words)
	c.Assert(s.Zeros, qt.Equals, words*8)
	c.Assert(s.Ones, qt.Equals, words*8)
	c.Assert(s.Words, qt.Equals, words)
	c.Assert(s.Overwrites, qt.Equals, uint32(2))
	c.Assert(s.MaxBuffered, qt.Equals, uint32(BufferSize))
	c.Assert(s.NotifySent+s.NotifyDropped, qt.Equals, words)

	d.DebugReset()
	c.Assert(d.DebugStats(), qt.Equals, Stats{})
}
