//go:build !rp2040 && !rp2350 && !nrf && !sam

package irdetect

// Host stand-ins for runtime/volatile. The host critical section is a mutex,
// which already orders every access.

type counter struct{ Reg uint8 }

func (r *counter) Get() uint8  { return r.Reg }
func (r *counter) Set(v uint8) { r.Reg = v }

type slot struct{ Reg uint16 }

func (r *slot) Get() uint16  { return r.Reg }
func (r *slot) Set(v uint16) { r.Reg = v }
