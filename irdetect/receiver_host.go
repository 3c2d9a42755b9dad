//go:build !rp2040 && !rp2350 && !nrf && !sam

package irdetect

import "sync/atomic"

// Host shim: a Receiver with no pin. Tests and simulators drive it through
// Edge with the level read after the change and a microsecond timestamp.

// ReceiverConfig mirrors the device build; the host ignores PullUp.
type ReceiverConfig struct {
	PullUp bool
}

// Receiver routes simulated pin changes into a Detector.
type Receiver struct {
	det     *Detector
	enabled atomic.Bool
}

// NewReceiver returns a receiver feeding det. It is idle until Configure.
func NewReceiver(det *Detector) *Receiver {
	return &Receiver{det: det}
}

// Detector returns the detector fed by r.
func (r *Receiver) Detector() *Detector { return r.det }

// Configure resets the detector and then enables Edge, so no edge is seen by
// a half-initialised decoder.
func (r *Receiver) Configure(ReceiverConfig) error {
	r.det.Setup()
	r.enabled.Store(true)
	return nil
}

// Stop disables Edge. Queued words stay readable.
func (r *Receiver) Stop() error {
	r.enabled.Store(false)
	return nil
}

// Edge simulates one pin-change interrupt. Rising edges (high == true) and
// edges while stopped are ignored.
func (r *Receiver) Edge(high bool, now uint32) {
	if !r.enabled.Load() || high {
		return
	}
	r.det.OnFallingEdge(now)
}
