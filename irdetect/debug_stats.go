//go:build irdebug

package irdetect

import "sync/atomic"

// Stats holds counters since the last reset.
type Stats struct {
	// Edge handler
	Edges       uint32 // falling edges handled
	Zeros       uint32 // gaps classified as zero bits
	Ones        uint32 // gaps classified as one bits
	FrameResets uint32 // gaps classified as frame resets

	// Queue
	Words       uint32 // words pushed
	Overwrites  uint32 // pushes that evicted an unread word
	MaxBuffered uint32 // high-water mark of queue occupancy

	// Notification and blocking API
	NotifySent    uint32 // notify channel sends that succeeded
	NotifyDropped uint32 // notify sends coalesced into a pending wake-up
	ReadWaits     uint32 // times a blocking pop had to wait
	SpuriousWakes uint32 // notify received but queue empty
	Timeouts      uint32 // context expiries in blocking pops
}

func (d *Detector) dbgSymbol(sym Symbol) {
	atomic.AddUint32(&d.stats.Edges, 1)
	switch sym {
	case SymbolZero:
		atomic.AddUint32(&d.stats.Zeros, 1)
	case SymbolOne:
		atomic.AddUint32(&d.stats.Ones, 1)
	default:
		atomic.AddUint32(&d.stats.FrameResets, 1)
	}
}

func (d *Detector) dbgEmit(overwrote bool, used uint8) {
	atomic.AddUint32(&d.stats.Words, 1)
	if overwrote {
		atomic.AddUint32(&d.stats.Overwrites, 1)
	}
	for {
		max := atomic.LoadUint32(&d.stats.MaxBuffered)
		if uint32(used) <= max {
			break
		}
		if atomic.CompareAndSwapUint32(&d.stats.MaxBuffered, max, uint32(used)) {
			break
		}
	}
}

func (d *Detector) dbgNotify(sent bool) {
	if sent {
		atomic.AddUint32(&d.stats.NotifySent, 1)
	} else {
		atomic.AddUint32(&d.stats.NotifyDropped, 1)
	}
}

func (d *Detector) dbgReadWait()     { atomic.AddUint32(&d.stats.ReadWaits, 1) }
func (d *Detector) dbgSpuriousWake() { atomic.AddUint32(&d.stats.SpuriousWakes, 1) }
func (d *Detector) dbgTimeout()      { atomic.AddUint32(&d.stats.Timeouts, 1) }

// DebugReset zeroes all counters.
func (d *Detector) DebugReset() {
	for _, p := range []*uint32{
		&d.stats.Edges, &d.stats.Zeros, &d.stats.Ones, &d.stats.FrameResets,
		&d.stats.Words, &d.stats.Overwrites, &d.stats.MaxBuffered,
		&d.stats.NotifySent, &d.stats.NotifyDropped,
		&d.stats.ReadWaits, &d.stats.SpuriousWakes, &d.stats.Timeouts,
	} {
		atomic.StoreUint32(p, 0)
	}
}

// DebugStats returns a snapshot of the counters.
func (d *Detector) DebugStats() Stats {
	return Stats{
		Edges:       atomic.LoadUint32(&d.stats.Edges),
		Zeros:       atomic.LoadUint32(&d.stats.Zeros),
		Ones:        atomic.LoadUint32(&d.stats.Ones),
		FrameResets: atomic.LoadUint32(&d.stats.FrameResets),

		Words:       atomic.LoadUint32(&d.stats.Words),
		Overwrites:  atomic.LoadUint32(&d.stats.Overwrites),
		MaxBuffered: atomic.LoadUint32(&d.stats.MaxBuffered),

		NotifySent:    atomic.LoadUint32(&d.stats.NotifySent),
		NotifyDropped: atomic.LoadUint32(&d.stats.NotifyDropped),
		ReadWaits:     atomic.LoadUint32(&d.stats.ReadWaits),
		SpuriousWakes: atomic.LoadUint32(&d.stats.SpuriousWakes),
		Timeouts:      atomic.LoadUint32(&d.stats.Timeouts),
	}
}
