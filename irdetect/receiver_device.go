//go:build rp2040 || rp2350 || nrf || sam

package irdetect

import (
	"errors"
	"machine"
	"time"
)

var ErrNoPin = errors.New("irdetect: no receiver pin configured")

type Pin = machine.Pin

// ReceiverConfig selects the input pin of a demodulating IR receiver module.
type ReceiverConfig struct {
	Pin Pin
	// PullUp enables the internal pull-up for modules without one. Most
	// 38 kHz receivers idle high with a built-in pull-up.
	PullUp bool
}

// Receiver routes pin-change interrupts into a Detector. Only one Receiver
// may own a given pin.
type Receiver struct {
	det   *Detector
	pin   Pin
	epoch time.Time
}

// NewReceiver returns a receiver feeding det. It is idle until Configure.
func NewReceiver(det *Detector) *Receiver {
	return &Receiver{det: det, pin: machine.NoPin}
}

// Detector returns the detector fed by r.
func (r *Receiver) Detector() *Detector { return r.det }

// Configure sets up the pin, resets the detector and then enables the
// interrupt, in that order, so no edge is seen by a half-initialised decoder.
func (r *Receiver) Configure(cfg ReceiverConfig) error {
	if cfg.Pin == machine.NoPin {
		return ErrNoPin
	}
	mode := machine.PinInput
	if cfg.PullUp {
		mode = machine.PinInputPullup
	}
	cfg.Pin.Configure(machine.PinConfig{Mode: mode})

	r.pin = cfg.Pin
	r.epoch = time.Now()
	r.det.Setup()

	return r.pin.SetInterrupt(machine.PinFalling, r.handleInterrupt)
}

// Stop disables the pin interrupt. Queued words stay readable.
func (r *Receiver) Stop() error {
	if r.pin == machine.NoPin {
		return nil
	}
	return r.pin.SetInterrupt(machine.PinFalling, nil)
}

func (r *Receiver) handleInterrupt(p machine.Pin) {
	// Only consider falling edges.
	if p.Get() {
		return
	}
	r.det.OnFallingEdge(uint32(time.Since(r.epoch) / time.Microsecond))
}
