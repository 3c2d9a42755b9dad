// Package capture converts between command words, falling-edge timestamps
// and the plain-text capture files read and written by irtool.
//
// A capture file holds one unsigned decimal number of microseconds per
// token, separated by whitespace or newlines. Lines starting with '#' are
// comments, except a "# mode: intervals" or "# mode: timestamps" header,
// which selects how the numbers are read. Timestamps are the default.
package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

var (
	ErrSyntax = errors.New("capture: syntax error")
	ErrTiming = errors.New("capture: timing outside decoder thresholds")
)

// Mode says whether capture values are absolute edge times or gaps between
// consecutive edges.
type Mode string

const (
	ModeTimestamps Mode = "timestamps"
	ModeIntervals  Mode = "intervals"
)

// Capture is a parsed capture file.
type Capture struct {
	Mode   Mode
	Values []uint32
}

// Timestamps returns the capture as falling-edge timestamps. Interval
// captures start from zero, which is where a freshly set up detector
// measures its first gap from.
func (c Capture) Timestamps() []uint32 {
	if c.Mode == ModeIntervals {
		return Timestamps(0, c.Values)
	}
	return c.Values
}

// Timing holds the gap lengths, in microseconds, used to synthesise edges.
type Timing struct {
	Zero uint32 // gap for a zero bit
	One  uint32 // gap for a one bit
	Gap  uint32 // gap that starts a frame
}

// DefaultTiming matches the remote: 1.125 ms and 2.25 ms bit periods and a
// 9 ms leader.
var DefaultTiming = Timing{Zero: 1125, One: 2250, Gap: 9000}

func (t Timing) withDefaults() Timing {
	if t.Zero == 0 {
		t.Zero = DefaultTiming.Zero
	}
	if t.One == 0 {
		t.One = DefaultTiming.One
	}
	if t.Gap == 0 {
		t.Gap = DefaultTiming.Gap
	}
	return t
}

// Validate reports whether each gap lands in the symbol it is meant to
// produce. Zero fields are replaced by defaults first.
func (t Timing) Validate() error {
	t = t.withDefaults()
	switch {
	case irdetect.Classify(t.Zero) != irdetect.SymbolZero:
		return fmt.Errorf("%w: zero gap %dµs", ErrTiming, t.Zero)
	case irdetect.Classify(t.One) != irdetect.SymbolOne:
		return fmt.Errorf("%w: one gap %dµs", ErrTiming, t.One)
	case irdetect.Classify(t.Gap) != irdetect.SymbolFrameReset:
		return fmt.Errorf("%w: frame gap %dµs", ErrTiming, t.Gap)
	}
	return nil
}

// Encode returns the falling-edge timestamps for cmds sent one after the
// other, the first frame beginning a frame gap after start. Each frame is
// one leader edge followed by 16 bit edges, most significant bit first.
func Encode(cmds []irdetect.Command, start uint32, t Timing) []uint32 {
	t = t.withDefaults()
	out := make([]uint32, 0, len(cmds)*(irdetect.WordBits+1))
	now := start
	for _, cmd := range cmds {
		now += t.Gap
		out = append(out, now)
		for i := irdetect.WordBits - 1; i >= 0; i-- {
			if cmd&(1<<uint(i)) != 0 {
				now += t.One
			} else {
				now += t.Zero
			}
			out = append(out, now)
		}
	}
	return out
}

// Intervals converts timestamps to the gaps a detector would measure,
// starting from zero.
func Intervals(ts []uint32) []uint32 {
	out := make([]uint32, len(ts))
	var prev uint32
	for i, v := range ts {
		out[i] = v - prev
		prev = v
	}
	return out
}

// Timestamps is the inverse of Intervals for a given start time.
func Timestamps(start uint32, intervals []uint32) []uint32 {
	out := make([]uint32, len(intervals))
	now := start
	for i, iv := range intervals {
		now += iv
		out[i] = now
	}
	return out
}

// Replay feeds ts to d as falling edges and returns every word decoded,
// draining after each edge so long captures cannot overflow the queue.
func Replay(d *irdetect.Detector, ts []uint32) []irdetect.Command {
	var out []irdetect.Command
	for _, t := range ts {
		d.OnFallingEdge(t)
		for d.Available() {
			out = append(out, d.Pop())
		}
	}
	return out
}

// Read parses a capture file. Lines may be of any length, so a capture
// written as a single line of values is accepted.
func Read(r io.Reader) (Capture, error) {
	c := Capture{Mode: ModeTimestamps}
	br := bufio.NewReader(r)
	line := 0
	for {
		text, err := br.ReadString('\n')
		if text != "" {
			line++
			if perr := c.parseLine(line, text); perr != nil {
				return Capture{}, perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Capture{}, fmt.Errorf("capture: read: %w", err)
		}
	}
	return c, nil
}

func (c *Capture) parseLine(line int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, "#") {
		if m, ok := parseMode(text); ok {
			if m != ModeTimestamps && m != ModeIntervals {
				return fmt.Errorf("%w: line %d: unknown mode %q", ErrSyntax, line, m)
			}
			c.Mode = m
		}
		return nil
	}
	for _, tok := range strings.Fields(text) {
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: line %d: %q is not a microsecond value", ErrSyntax, line, tok)
		}
		c.Values = append(c.Values, uint32(v))
	}
	return nil
}

func parseMode(comment string) (Mode, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(comment, "#"))
	key, val, ok := strings.Cut(body, ":")
	if !ok || !strings.EqualFold(strings.TrimSpace(key), "mode") {
		return "", false
	}
	return Mode(strings.ToLower(strings.TrimSpace(val))), true
}

// Write emits c in the format accepted by Read, one value per line.
func Write(w io.Writer, c Capture) error {
	mode := c.Mode
	if mode == "" {
		mode = ModeTimestamps
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# mode: %s\n", mode)
	for _, v := range c.Values {
		bw.WriteString(strconv.FormatUint(uint64(v), 10))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("capture: write: %w", err)
	}
	return nil
}
