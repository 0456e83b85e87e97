package forme

// Decoder is a pull parser over an InputRing: each call to Decode
// consumes as many bytes as are needed to either recognize one complete
// event or determine that more bytes are needed. It never blocks and
// never discards bytes that might be the prefix of a longer sequence —
// the one exception is a single malformed byte, which is dropped so a
// corrupt stream can't wedge the decoder forever.
type Decoder struct {
	ring *InputRing
}

// NewDecoder wraps ring for event decoding.
func NewDecoder(ring *InputRing) *Decoder {
	return &Decoder{ring: ring}
}

// Final bytes of the CSI sequences this decoder recognizes without a
// trailing '~' (the cursor/home/end finals also end SS3 sequences).
const (
	finalCursorUp    = 'A'
	finalCursorDown  = 'B'
	finalCursorRight = 'C'
	finalCursorLeft  = 'D'
	finalHome        = 'H'
	finalEnd         = 'F'
	finalShiftTab    = 'Z'
	finalFocusIn     = 'I'
	finalFocusOut    = 'O'
	finalMousePress  = 'M'
	finalMouseRel    = 'm'
)

// Decode attempts to produce one Event from the front of the ring.
// ok is false when the ring doesn't yet hold a complete sequence — the
// caller should read more bytes from the platform and try again. When
// ok is true but ev.Kind == EventNone, a malformed or unrecognized byte
// was dropped and the caller should call Decode again immediately.
func (d *Decoder) Decode() (ev Event, ok bool) {
	b0, have := d.ring.At(0)
	if !have {
		return Event{}, false
	}

	switch {
	case b0 == 0x1B:
		return d.decodeEscape()
	case b0 == '\r' || b0 == '\n':
		d.ring.Advance(1)
		return Event{Kind: EventKey, Key: KeyEnter}, true
	case b0 == '\t':
		d.ring.Advance(1)
		return Event{Kind: EventKey, Key: KeyTab}, true
	case b0 == 0x7F || b0 == 0x08:
		d.ring.Advance(1)
		return Event{Kind: EventKey, Key: KeyBackspace}, true
	case b0 == 0x00:
		d.ring.Advance(1)
		return Event{Kind: EventChar, Ch: ' ', Ctrl: true}, true
	case b0 >= 1 && b0 <= 26 && b0 != '\t' && b0 != '\r' && b0 != '\n':
		d.ring.Advance(1)
		return Event{Kind: EventChar, Ch: rune('a' + b0 - 1), Ctrl: true}, true
	case b0 < 0x80:
		d.ring.Advance(1)
		return Event{Kind: EventChar, Ch: rune(b0)}, true
	default:
		return d.decodeUTF8()
	}
}

// ResolvePendingEscape is called by the platform reader when a lone 0x1B
// has sat unconsumed past its inter-byte timeout with no follow-up byte
// arriving — the reader layer owns the timing (per SPEC_FULL.md §8), the
// decoder just needs an explicit trigger to stop waiting for a CSI/SS3
// introducer that isn't coming.
func (d *Decoder) ResolvePendingEscape() (ev Event, ok bool) {
	b0, have := d.ring.At(0)
	if !have || b0 != 0x1B {
		return Event{}, false
	}
	if _, haveNext := d.ring.At(1); haveNext {
		return Event{}, false
	}
	d.ring.Advance(1)
	return Event{Kind: EventKey, Key: KeyEsc}, true
}

func (d *Decoder) decodeEscape() (Event, bool) {
	b1, have := d.ring.At(1)
	if !have {
		return Event{}, false
	}
	switch b1 {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		// b1 has arrived and isn't a CSI/SS3 introducer, so per spec.md
		// §4.4 the ESC resolves to the Esc key now; b1 itself is left
		// for the next Decode call to interpret on its own.
		d.ring.Advance(1)
		return Event{Kind: EventKey, Key: KeyEsc}, true
	}
}

func (d *Decoder) decodeSS3() (Event, bool) {
	b2, have := d.ring.At(2)
	if !have {
		return Event{}, false
	}
	var key Key
	switch b2 {
	case finalCursorUp:
		key = KeyUp
	case finalCursorDown:
		key = KeyDown
	case finalCursorRight:
		key = KeyRight
	case finalCursorLeft:
		key = KeyLeft
	case finalHome:
		key = KeyHome
	case finalEnd:
		key = KeyEnd
	case 'P':
		key = KeyF1
	case 'Q':
		key = KeyF2
	case 'R':
		key = KeyF3
	case 'S':
		key = KeyF4
	default:
		d.ring.Advance(2)
		return Event{}, true
	}
	d.ring.Advance(3)
	return Event{Kind: EventKey, Key: key}, true
}

// decodeCSI parses "ESC [" followed by an optional parameter list
// (digits and ';') and a final byte. For SGR mouse sequences the
// parameter list uses a leading '<' and the final byte is 'M' or 'm'.
func (d *Decoder) decodeCSI() (Event, bool) {
	isMouse := false
	start := 2 // index just past "ESC ["
	b2, have := d.ring.At(2)
	if !have {
		return Event{}, false
	}
	if b2 == '<' {
		isMouse = true
		start = 3
	}

	var params []int
	cur := 0
	haveDigit := false
	i := start
	for {
		b, have := d.ring.At(i)
		if !have {
			return Event{}, false // need more bytes
		}
		if b >= '0' && b <= '9' {
			cur = cur*10 + int(b-'0')
			haveDigit = true
			i++
			continue
		}
		if b == ';' {
			params = append(params, cur)
			cur = 0
			haveDigit = false
			i++
			continue
		}
		break
	}
	if haveDigit {
		params = append(params, cur)
	}
	final, have := d.ring.At(i)
	if !have {
		return Event{}, false
	}
	total := i + 1

	if isMouse {
		return d.finishMouse(params, final, total)
	}

	if final == '~' {
		return d.finishTilde(params, total)
	}

	return d.finishSimple(params, final, total)
}

func (d *Decoder) finishSimple(params []int, final byte, total int) (Event, bool) {
	shift, alt, ctrl := false, false, false
	if len(params) >= 2 {
		shift, alt, ctrl = modifierBits(params[1])
	}
	var key Key
	switch final {
	case finalCursorUp:
		key = KeyUp
	case finalCursorDown:
		key = KeyDown
	case finalCursorRight:
		key = KeyRight
	case finalCursorLeft:
		key = KeyLeft
	case finalHome:
		key = KeyHome
	case finalEnd:
		key = KeyEnd
	case finalShiftTab:
		d.ring.Advance(total)
		return Event{Kind: EventKey, Key: KeyTab, Shift: true}, true
	case finalFocusIn:
		d.ring.Advance(total)
		return Event{Kind: EventFocusIn}, true
	case finalFocusOut:
		d.ring.Advance(total)
		return Event{Kind: EventFocusOut}, true
	default:
		d.ring.Advance(total)
		return Event{}, true
	}
	d.ring.Advance(total)
	return Event{Kind: EventKey, Key: key, Shift: shift, Alt: alt, Ctrl: ctrl}, true
}

func (d *Decoder) finishTilde(params []int, total int) (Event, bool) {
	if len(params) == 0 {
		d.ring.Advance(total)
		return Event{}, true
	}
	code := params[0]
	shift, alt, ctrl := false, false, false
	if len(params) >= 2 {
		shift, alt, ctrl = modifierBits(params[1])
	}
	switch code {
	case 200:
		d.ring.Advance(total)
		return Event{Kind: EventPasteStart}, true
	case 201:
		d.ring.Advance(total)
		return Event{Kind: EventPasteEnd}, true
	}
	var key Key
	switch code {
	case 1, 7:
		key = KeyHome
	case 2:
		key = KeyInsert
	case 3:
		key = KeyDelete
	case 4, 8:
		key = KeyEnd
	case 5:
		key = KeyPageUp
	case 6:
		key = KeyPageDown
	case 11:
		key = KeyF1
	case 12:
		key = KeyF2
	case 13:
		key = KeyF3
	case 14:
		key = KeyF4
	case 15:
		key = KeyF5
	case 17:
		key = KeyF6
	case 18:
		key = KeyF7
	case 19:
		key = KeyF8
	case 20:
		key = KeyF9
	case 21:
		key = KeyF10
	case 23:
		key = KeyF11
	case 24:
		key = KeyF12
	default:
		d.ring.Advance(total)
		return Event{}, true
	}
	d.ring.Advance(total)
	return Event{Kind: EventKey, Key: key, Shift: shift, Alt: alt, Ctrl: ctrl}, true
}

// finishMouse decodes an SGR mouse report: params are [btn, x, y], final
// is 'M' (press/motion/wheel) or 'm' (release).
func (d *Decoder) finishMouse(params []int, final byte, total int) (Event, bool) {
	if len(params) < 3 {
		d.ring.Advance(total)
		return Event{}, true
	}
	btn, x, y := params[0], params[1], params[2]
	shift := btn&4 != 0
	alt := btn&8 != 0
	ctrl := btn&16 != 0
	motion := btn&32 != 0
	wheel := btn&64 != 0

	ev := Event{
		Kind:        EventMouse,
		Shift:       shift,
		Alt:         alt,
		Ctrl:        ctrl,
		MouseMotion: motion,
		MouseX:      x - 1,
		MouseY:      y - 1,
	}
	low := btn & 0x03
	switch {
	case wheel:
		if low == 0 {
			ev.MouseButton = MouseWheelUp
		} else {
			ev.MouseButton = MouseWheelDown
		}
	case final == finalMouseRel:
		ev.MouseButton = MouseRelease
	default:
		switch low {
		case 0:
			ev.MouseButton = MouseLeft
		case 1:
			ev.MouseButton = MouseMiddle
		case 2:
			ev.MouseButton = MouseRight
		default:
			ev.MouseButton = MouseRelease
		}
	}
	d.ring.Advance(total)
	return ev, true
}

// decodeUTF8 decodes a multi-byte UTF-8 rune at the front of the ring,
// matching width.go's DecodeRune truncation/invalid-byte contract so a
// split multi-byte read waits for the remaining bytes rather than
// misdecoding.
func (d *Decoder) decodeUTF8() (Event, bool) {
	n := utf8SeqLen(mustByte(d.ring, 0))
	buf := make([]byte, 0, 4)
	for i := 0; i < n; i++ {
		b, have := d.ring.At(i)
		if !have {
			return Event{}, false
		}
		buf = append(buf, b)
	}
	r, size := DecodeRune(buf)
	d.ring.Advance(size)
	if size == 1 && buf[0] >= 0x80 {
		// malformed byte: dropped rather than delivered as a character
		return Event{}, true
	}
	return Event{Kind: EventChar, Ch: r}, true
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

func mustByte(r *InputRing, i int) byte {
	b, _ := r.At(i)
	return b
}
