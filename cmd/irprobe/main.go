//go:build (rp2040 || rp2350) && irdebug

package main

import (
	"time"

	"machine"

	"github.com/jangala-dev/tinygo-irdetect/internal/capture"
	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

const irPin = machine.GP2

func printStats(d *irdetect.Detector, label string) {
	s := d.DebugStats()
	println("==", label)
	println("Edges:  total=", s.Edges, " zeros=", s.Zeros, " ones=", s.Ones, " resets=", s.FrameResets)
	println("Queue:  words=", s.Words, " overwrites=", s.Overwrites, " maxBuffered=", s.MaxBuffered)
	println("Notify: sent=", s.NotifySent, " dropped=", s.NotifyDropped)
	println("Waits:  waits=", s.ReadWaits, " spurious=", s.SpuriousWakes, " timeouts=", s.Timeouts)
}

func drain(d *irdetect.Detector) int {
	n := 0
	for d.Available() {
		d.Pop()
		n++
	}
	return n
}

func main() {
	delay := 5
	for i := 0; i < delay; i++ {
		println("probe starting in ", delay-i, " seconds")
		time.Sleep(time.Second)
	}
	println("irdetect probe (diagnostic)")

	d := irdetect.NewDetector()

	// Phase 1: decode every known button from synthetic edges.
	println("\n[phase] synthetic-decode")
	d.DebugReset()
	want := irdetect.DefaultLabels.Commands()
	for _, t := range capture.Encode(want, 0, capture.DefaultTiming) {
		d.OnFallingEdge(t)
	}
	ok := true
	for _, w := range want {
		v, got := d.TryPop()
		if !got || v != w {
			ok = false
		}
	}
	if ok && !d.Available() {
		println(" result: OK (", len(want), "words)")
	} else {
		println(" result: MISMATCH")
	}
	printStats(d, "after synthetic-decode")

	// Phase 2: overflow keeps the newest BufferSize words.
	println("\n[phase] overflow")
	d.Setup()
	d.DebugReset()
	burst := make([]irdetect.Command, int(irdetect.BufferSize)+8)
	for i := range burst {
		burst[i] = irdetect.Command(i)
	}
	for _, t := range capture.Encode(burst, 0, capture.DefaultTiming) {
		d.OnFallingEdge(t)
	}
	first, _ := d.TryPop()
	println(" result: first=", uint16(first), " remaining=", drain(d))
	printStats(d, "after overflow")

	// Phase 3: live capture from the pin.
	println("\n[phase] live (press buttons)")
	rx := irdetect.NewReceiver(d)
	if err := rx.Configure(irdetect.ReceiverConfig{Pin: irPin}); err != nil {
		println("fatal:", err.Error())
		for {
			time.Sleep(time.Hour)
		}
	}
	d.DebugReset()
	for {
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			for d.Available() {
				println(" cmd", d.Pop().String())
			}
			time.Sleep(10 * time.Millisecond)
		}
		printStats(d, "live")
	}
}
