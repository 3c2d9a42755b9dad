// Package irdetect decodes the pulse-distance protocol of the SparkFun IR
// remote. An edge handler, normally run from a pin interrupt, classifies the
// time between falling edges into bits and queues every complete 16-bit word;
// the application drains the queue from its main loop.
//
// The Detector is an ordinary value with no package-level state, so it can be
// driven by synthetic timestamps in tests. Receiver binds it to a pin.
package irdetect

import (
	"context"
	"time"
)

// Detector turns falling-edge timestamps into command words.
//
// Invariants:
//   - lastEdge, bits and word are written only by OnFallingEdge (and Setup).
//   - A word is queued exactly when bits reaches WordBits, after which bits is 0.
//   - A frame reset zeroes bits. word keeps its stale value; the next
//     WordBits shifts overwrite all of it before it is queued.
//
// Signalling:
//   - notify is coalesced; a send is attempted after each queued word and
//     dropped if a wake-up is already pending. Waiters must re-check state.
type Detector struct {
	lastEdge uint32  // timestamp of the previous falling edge, µs
	bits     uint8   // bits shifted into word since the last reset or emission
	word     Command // in-progress accumulator

	buf RingBuffer
	cs  critical

	notify chan struct{}
	closed chan struct{}

	stats Stats
}

// NewDetector returns a detector ready to receive edges.
func NewDetector() *Detector {
	d := &Detector{
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
	d.Setup()
	return d
}

// Setup returns the decoder and its queue to their initial state. It must run
// before edge events are enabled; calling it again discards any partial word
// and every queued word.
func (d *Detector) Setup() {
	d.cs.enter()
	d.lastEdge = 0
	d.bits = 0
	d.word = 0
	d.buf.Clear()
	d.cs.exit()

	select {
	case <-d.notify:
	default:
	}
}

// OnFallingEdge is the edge handler. now is a free-running microsecond
// counter; the subtraction is done in uint32 so a counter wrap between two
// edges is harmless. It never blocks or allocates.
func (d *Detector) OnFallingEdge(now uint32) {
	d.cs.isrEnter()
	elapsed := now - d.lastEdge
	d.lastEdge = now

	sym := Classify(elapsed)
	switch sym {
	case SymbolZero:
		d.word <<= 1
		d.bits++
	case SymbolOne:
		d.word = d.word<<1 | 1
		d.bits++
	default:
		d.bits = 0
	}
	d.dbgSymbol(sym)

	emitted := false
	if d.bits == WordBits {
		overwrote := d.buf.Push(d.word)
		d.bits = 0
		emitted = true
		d.dbgEmit(overwrote, d.buf.Used())
	}
	d.cs.isrExit()

	if emitted {
		// edge-triggered notify
		select {
		case d.notify <- struct{}{}:
			d.dbgNotify(true)
		default:
			d.dbgNotify(false)
		}
	}
}

// Available reports whether a decoded word is waiting.
func (d *Detector) Available() bool {
	d.cs.enter()
	ok := d.buf.Available()
	d.cs.exit()
	return ok
}

// Buffered returns the number of queued words.
func (d *Detector) Buffered() int {
	d.cs.enter()
	n := int(d.buf.Used())
	d.cs.exit()
	return n
}

// Pop returns the oldest queued word. Call it only after Available returned
// true; on an empty queue the result is undefined.
func (d *Detector) Pop() Command {
	d.cs.enter()
	v := d.buf.Pop()
	d.cs.exit()
	return v
}

// TryPop returns the oldest queued word, or (0, false) if there is none.
func (d *Detector) TryPop() (Command, bool) {
	d.cs.enter()
	v, ok := d.buf.TryPop()
	d.cs.exit()
	return v, ok
}

// Readable returns a coalesced notification sent after a word is queued.
func (d *Detector) Readable() <-chan struct{} { return d.notify }

// WaitAvailable blocks until a word is queued, ctx is done or the detector
// is closed.
func (d *Detector) WaitAvailable(ctx context.Context) error {
	for {
		if d.Available() {
			return nil
		}
		d.dbgReadWait()
		select {
		case <-d.notify:
			// re-check; if empty, it was a spurious wake (coalesced notify)
			if !d.Available() {
				d.dbgSpuriousWake()
			}
		case <-d.closed:
			return context.Canceled
		case <-ctx.Done():
			d.dbgTimeout()
			return ctx.Err()
		}
	}
}

// PopBlocking waits for a word and returns it.
func (d *Detector) PopBlocking(ctx context.Context) (Command, error) {
	for {
		if v, ok := d.TryPop(); ok {
			return v, nil
		}
		if err := d.WaitAvailable(ctx); err != nil {
			return 0, err
		}
	}
}

// PopWithTimeout is PopBlocking bounded by timeout.
func (d *Detector) PopWithTimeout(timeout time.Duration) (Command, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return d.PopBlocking(ctx)
}

// Close unblocks current and future waiters. Edges are still decoded and
// queued; stop the Receiver to stop decoding.
func (d *Detector) Close() error {
	select {
	case <-d.closed:
	default:
		close(d.closed)
	}
	return nil
}
