package forme

// The State* types below are the tagged-union arms referenced by Widget's
// Kind field (spec.md §3, §4.8, §9). Fields holding text storage are
// borrowed from the caller — the widget never allocates or frees them.

// ButtonState tracks the one-frame press pulse a drawer consumes then
// clears.
type ButtonState struct {
	Pressed bool
}

// TextboxState is a single-line editable buffer with a cursor and
// horizontal scroll. Buffer is borrowed; Capacity bounds Length strictly
// (spec.md §8: "length < capacity").
type TextboxState struct {
	Buffer   []byte
	Capacity int
	Length   int
	Cursor   int
	Scroll   int
}

// CheckboxState holds the toggle value.
type CheckboxState struct {
	Checked bool
}

// RadioState ties a widget to a shared group value — Group is borrowed
// and mutated in place so every radio in a group observes the same
// selection.
type RadioState struct {
	Value int
	Group *int
}

// ListState is a scrollable single-selection list. Items is borrowed.
type ListState struct {
	Items    []string
	Selected int
	Scroll   int
	Visible  int // number of rows rendered at once
}

// SliderState is a continuous value in [Min,Max] steppable by Step. A
// Step <= 0 defaults to (Max-Min)/20 per spec.md §4.8.
type SliderState struct {
	Min, Max, Value, Step float64
	Dragging              bool
}

// SpinnerState is the integer analogue of SliderState.
type SpinnerState struct {
	Min, Max, Value, Step int
}

// DropdownState is a closed/open combo box.
type DropdownState struct {
	Items    []string
	Selected int
	Open     bool
}

// TabsState is a row of labeled tabs with one active selection.
type TabsState struct {
	Labels   []string
	Selected int
}

// ScrollbarOrientation selects a scrollbar's axis.
type ScrollbarOrientation uint8

const (
	ScrollbarVertical ScrollbarOrientation = iota
	ScrollbarHorizontal
)

// ScrollbarState tracks a proportional scroll position over Content
// units shown through a View-sized window.
type ScrollbarState struct {
	Orientation ScrollbarOrientation
	Content     int
	View        int
	Scroll      int
}

// TextareaState is a multi-line editable buffer. Lines is borrowed — an
// array of borrowed line buffers, each capped at MaxLineLen bytes. A
// split (Enter) or join (Backspace/Delete at a line boundary) mutates
// Lines in place and adjusts LineCount.
type TextareaState struct {
	Lines          [][]byte
	LineCount      int
	MaxLineLen     int
	CursorRow      int
	CursorCol      int
	ScrollRow      int
	VisibleRows    int
	ShowLineNumbers bool
}

// SplitterOrientation selects whether the divider runs vertically
// (splitting left/right panes) or horizontally (top/bottom panes).
type SplitterOrientation uint8

const (
	SplitterVertical SplitterOrientation = iota
	SplitterHorizontal
)

// SplitterState holds the divider's position as a ratio of the
// available extent, clamped to [0.1,0.9] per spec.md §4.8.
type SplitterState struct {
	Orientation SplitterOrientation
	Ratio       float64
	MinSize     int
	Dragging    bool
}
