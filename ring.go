package forme

// InputRing is a byte-granular circular buffer feeding the decoder. One
// producer (the platform reader) appends bytes via Write; one consumer
// (the Decoder) peeks and advances via At/Advance. Bytes are only
// removed once a full event has been recognized or a malformed byte is
// explicitly dropped — the decoder never discards data it hasn't decided
// about yet, since an escape sequence split across two reads must survive
// until the rest arrives.
type InputRing struct {
	buf        []byte
	start, end int // start is the next byte to read; end is the next write position
	size       int // number of valid bytes currently buffered
}

// defaultRingCapacity matches spec.md §3's "capacity ≥ 64" floor.
const defaultRingCapacity = 256

// NewInputRing creates a ring buffer. capacity is rounded up to at least 64.
func NewInputRing(capacity int) *InputRing {
	if capacity < 64 {
		capacity = defaultRingCapacity
	}
	return &InputRing{buf: make([]byte, capacity)}
}

// Len returns the number of unconsumed bytes currently buffered.
func (r *InputRing) Len() int {
	return r.size
}

// Cap returns the ring's total byte capacity.
func (r *InputRing) Cap() int {
	return len(r.buf)
}

// Free returns how many bytes can still be written before the ring is full.
func (r *InputRing) Free() int {
	return len(r.buf) - r.size
}

// Write appends bytes produced by the platform reader, growing the ring if
// there isn't room (the non-blocking platform read may hand over more
// bytes than a conservative capacity anticipated).
func (r *InputRing) Write(p []byte) {
	if len(p) > r.Free() {
		r.grow(r.size + len(p))
	}
	for _, b := range p {
		r.buf[r.end] = b
		r.end = (r.end + 1) % len(r.buf)
		r.size++
	}
}

// grow reallocates the ring to at least newCap bytes, preserving order.
func (r *InputRing) grow(newCap int) {
	cap2 := len(r.buf) * 2
	if cap2 < newCap {
		cap2 = newCap
	}
	fresh := make([]byte, cap2)
	n := r.drainInto(fresh)
	r.buf = fresh
	r.start = 0
	r.end = n % len(fresh)
	r.size = n
}

// drainInto copies all currently buffered bytes (without consuming them)
// into dst and returns the count copied.
func (r *InputRing) drainInto(dst []byte) int {
	n := 0
	idx := r.start
	for i := 0; i < r.size; i++ {
		dst[n] = r.buf[idx]
		n++
		idx = (idx + 1) % len(r.buf)
	}
	return n
}

// At returns the i'th unconsumed byte (0 = next to read) and whether it
// exists. The decoder uses this to look ahead without consuming.
func (r *InputRing) At(i int) (byte, bool) {
	if i < 0 || i >= r.size {
		return 0, false
	}
	return r.buf[(r.start+i)%len(r.buf)], true
}

// Advance consumes n bytes from the front of the ring — called once the
// decoder has committed to an event (or to a single dropped malformed byte).
func (r *InputRing) Advance(n int) {
	if n > r.size {
		n = r.size
	}
	r.start = (r.start + n) % len(r.buf)
	r.size -= n
}
