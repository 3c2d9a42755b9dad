//go:build rp2040 || rp2350 || nrf || sam

package irdetect

import "runtime/interrupt"

// critical masks interrupts while the main loop touches the queue. The edge
// handler runs with its own interrupt masked, so its guard is empty.
type critical struct {
	state interrupt.State
}

func (c *critical) enter() { c.state = interrupt.Disable() }
func (c *critical) exit()  { interrupt.Restore(c.state) }

func (c *critical) isrEnter() {}
func (c *critical) isrExit()  {}
