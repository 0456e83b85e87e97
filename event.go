package forme

// EventKind discriminates the events the input decoder can produce.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKey
	EventChar
	EventMouse
	EventFocusIn
	EventFocusOut
	EventPasteStart
	EventPasteEnd
)

// Key enumerates non-character keys the decoder recognizes.
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// MouseButton enumerates the mouse buttons and wheel directions the SGR
// mouse protocol can report.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseRelease
)

// Event is the decoder's single output type; only the fields relevant to
// Kind are meaningful.
type Event struct {
	Kind EventKind

	Key Key  // EventKey
	Ch  rune // EventChar / EventKey when Key==KeyNone is never produced

	Shift, Alt, Ctrl bool

	MouseButton MouseButton
	MouseX      int
	MouseY      int
	MouseMotion bool

	// Consumed set by the router while dispatching; unused by the decoder.
	consumed  bool
	stopped   bool
	prevented bool
}

// Stop halts further propagation: no later handler in the current
// dispatch (capture, target, or bubble) runs.
func (e *Event) Stop() {
	e.stopped = true
}

// Prevent suppresses the built-in per-widget-type behavior for this
// event without otherwise stopping propagation.
func (e *Event) Prevent() {
	e.prevented = true
}

// Consume is shorthand for Stop and Prevent together, matching the
// router's documented "consume implies both" contract.
func (e *Event) Consume() {
	e.consumed = true
	e.stopped = true
	e.prevented = true
}

// Stopped reports whether Stop or Consume has been called.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Prevented reports whether Prevent or Consume has been called.
func (e *Event) Prevented() bool {
	return e.prevented
}

// Consumed reports whether Consume has been called.
func (e *Event) Consumed() bool {
	return e.consumed
}

// modifierBits decodes the CSI modifier parameter per spec.md §4.4:
// modifier = 1 + shift + 2*alt + 4*ctrl, so bits = param - 1.
func modifierBits(param int) (shift, alt, ctrl bool) {
	bits := param - 1
	return bits&1 != 0, bits&2 != 0, bits&4 != 0
}
