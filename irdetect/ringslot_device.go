//go:build rp2040 || rp2350 || nrf || sam

package irdetect

import "runtime/volatile"

// The edge interrupt and the main loop share the ring buffer, so its counters
// and slots go through volatile registers on device builds.

type counter = volatile.Register8

type slot = volatile.Register16
