// irdetect/ringbuffer.go

package irdetect

// Choose a power-of-two size for efficient masking.
const BufferSize uint8 = 128

const bufferMask = BufferSize - 1

// RingBuffer is a fixed-capacity queue of command words. A push into a full
// buffer discards the oldest unread word; Push never fails, blocks or
// allocates.
//
// head and tail are free-running counters that wrap at 256 (twice the
// capacity), so head == tail means empty and head-tail == BufferSize means
// full. Slots are addressed with counter & bufferMask.
//
// RingBuffer does no locking of its own. It is safe for one producer and one
// consumer only when the caller serialises an overwriting Push against Pop;
// Detector does this with a critical section. On device builds the counters
// and slots are volatile registers, so the compiler cannot cache them across
// a polling loop or reorder the slot write after the head update.
type RingBuffer struct {
	buf  [BufferSize]slot
	head counter
	tail counter
}

// NewRingBuffer returns a new, empty ring buffer.
func NewRingBuffer() *RingBuffer {
	return &RingBuffer{}
}

// Size returns the capacity of the buffer in words.
func (rb *RingBuffer) Size() uint8 {
	return BufferSize
}

// Used returns how many words are waiting to be read.
func (rb *RingBuffer) Used() uint8 {
	return rb.head.Get() - rb.tail.Get()
}

// Available reports whether at least one word can be popped.
func (rb *RingBuffer) Available() bool {
	return rb.head.Get() != rb.tail.Get()
}

// Push stores a word. If the buffer is full the oldest word is dropped and
// Push reports true.
func (rb *RingBuffer) Push(val Command) (overwrote bool) {
	if rb.Used() == BufferSize {
		rb.tail.Set(rb.tail.Get() + 1)
		overwrote = true
	}
	h := rb.head.Get()
	rb.buf[h&bufferMask].Set(uint16(val)) // 1) write data
	rb.head.Set(h + 1)                    // 2) publish
	return overwrote
}

// Pop returns the oldest word. The caller must have seen Available return
// true; popping an empty buffer returns a stale slot and corrupts the
// counters. Use TryPop when that cannot be guaranteed.
func (rb *RingBuffer) Pop() Command {
	t := rb.tail.Get()
	v := rb.buf[t&bufferMask].Get() // 1) read current element
	rb.tail.Set(t + 1)              // 2) publish consumption
	return Command(v)
}

// TryPop returns the oldest word, or (0, false) if the buffer is empty.
func (rb *RingBuffer) TryPop() (Command, bool) {
	if !rb.Available() {
		return 0, false
	}
	return rb.Pop(), true
}

// Clear resets the head and tail counters to zero.
func (rb *RingBuffer) Clear() {
	rb.head.Set(0)
	rb.tail.Set(0)
}
