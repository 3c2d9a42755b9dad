package monitor

import (
	"context"
	"math/rand"
	"time"

	"github.com/jangala-dev/tinygo-irdetect/internal/capture"
	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

// markMicros is how long the line stays low after each falling edge.
const markMicros = 560

// Source produces pin edges into a Receiver from its own goroutine, standing
// in for the pin interrupt.
type Source interface {
	Name() string
	Run(ctx context.Context, r *irdetect.Receiver) error
}

// DemoSource simulates button presses on the remote.
type DemoSource struct {
	Labels   irdetect.Labels
	Interval time.Duration // pause between presses
	Noise    float64       // probability of a word outside Labels
	Rand     *rand.Rand
}

func (s DemoSource) Name() string { return "demo" }

func (s DemoSource) Run(ctx context.Context, r *irdetect.Receiver) error {
	if s.Interval <= 0 {
		s.Interval = 700 * time.Millisecond
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	known := s.Labels.Commands()

	var now uint32
	for {
		var cmd irdetect.Command
		if len(known) == 0 || s.Rand.Float64() < s.Noise {
			cmd = irdetect.Command(s.Rand.Intn(1 << irdetect.WordBits))
		} else {
			cmd = known[s.Rand.Intn(len(known))]
		}
		for _, t := range capture.Encode([]irdetect.Command{cmd}, now, capture.DefaultTiming) {
			r.Edge(false, t)
			r.Edge(true, t+markMicros)
			now = t
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.Interval):
		}
	}
}

// ReplaySource plays recorded falling-edge timestamps back, sleeping through
// frame gaps so presses appear at roughly their recorded pace.
type ReplaySource struct {
	Label      string
	Timestamps []uint32
	Speed      float64 // 0 means real time
}

func (s ReplaySource) Name() string { return s.Label }

// maxReplaySleep caps idle periods in a recording.
const maxReplaySleep = 2 * time.Second

func (s ReplaySource) Run(ctx context.Context, r *irdetect.Receiver) error {
	speed := s.Speed
	if speed <= 0 {
		speed = 1
	}
	var prev uint32
	for i, t := range s.Timestamps {
		if gap := t - prev; i > 0 && irdetect.Classify(gap) == irdetect.SymbolFrameReset {
			d := time.Duration(float64(gap)/speed) * time.Microsecond
			if d > maxReplaySleep {
				d = maxReplaySleep
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d):
			}
		}
		r.Edge(false, t)
		prev = t
	}
	return nil
}
