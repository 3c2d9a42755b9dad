//go:build !rp2040 && !rp2350 && !nrf && !sam

package irdetect

import "sync"

// Host shim: the "interrupt" is whatever goroutine calls OnFallingEdge, so
// both sides take the same mutex.
type critical struct {
	mu sync.Mutex
}

func (c *critical) enter() { c.mu.Lock() }
func (c *critical) exit()  { c.mu.Unlock() }

func (c *critical) isrEnter() { c.mu.Lock() }
func (c *critical) isrExit()  { c.mu.Unlock() }
