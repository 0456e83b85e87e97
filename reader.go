package forme

import (
	"io"
	"time"
)

// escTimeout bounds how long a lone 0x1B is allowed to sit unconsumed
// before InputLoop resolves it to a bare Esc key press (spec.md §4.4,
// §9 "lone ESC vs. escape-sequence prefix" — see DESIGN.md). Matches the
// ~50ms cadence the teacher's own render loop polls at.
const escTimeout = 50 * time.Millisecond

// InputLoop reads raw bytes from r (typically os.Stdin once the screen is
// in raw mode) and emits decoded Events on the returned channel until r
// returns an error or is closed. It owns an InputRing/Decoder pair
// internally — callers never touch the ring directly. The raw read runs
// on its own goroutine so the decode loop can select between "more bytes
// arrived" and "the pending ESC timed out" the way the teacher's own
// render loop selects between a render request and its periodic ticker
// (see app.go's RunNonInteractive).
func InputLoop(r io.Reader) <-chan Event {
	events := make(chan Event)
	bytesCh := make(chan []byte)

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				bytesCh <- chunk
			}
			if err != nil {
				close(bytesCh)
				return
			}
		}
	}()

	go func() {
		defer close(events)
		ring := NewInputRing(defaultRingCapacity)
		dec := NewDecoder(ring)
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		drain := func() {
			for {
				ev, ok := dec.Decode()
				if !ok {
					return
				}
				if ev.Kind != EventNone {
					events <- ev
				}
			}
		}

		for {
			var timeoutC <-chan time.Time
			if ring.Len() > 0 {
				if timer == nil {
					timer = time.NewTimer(escTimeout)
				} else {
					timer.Reset(escTimeout)
				}
				timeoutC = timer.C
			}

			select {
			case chunk, ok := <-bytesCh:
				if !ok {
					return
				}
				ring.Write(chunk)
				drain()
			case <-timeoutC:
				if ev, ok := dec.ResolvePendingEscape(); ok {
					events <- ev
				}
				drain()
			}
		}
	}()

	return events
}
