package forme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Screen manages the terminal display with double buffering and diff-based updates.
type Screen struct {
	front  *Buffer   // What's currently displayed
	back   *Buffer   // What we're drawing to
	writer io.Writer // Output destination (usually os.Stdout)
	fd     int       // File descriptor for terminal operations

	width  int
	height int

	// Terminal state. origTermios holds the platform-specific saved
	// terminal mode (*unix.Termios on POSIX, a console-mode DWORD on
	// Windows — see term_unix.go / term_windows.go) restored on exit.
	origTermios any
	inRawMode   bool
	inlineMode  bool // Inline mode (no alternate buffer)

	// Resize handling
	resizeChan chan Size
	sigChan    chan os.Signal

	// Rendering state
	lastStyle Style        // Last style we emitted (for optimization)
	buf       bytes.Buffer // Reusable buffer for building output

	// cursor tracks the drawing-state cursor position, visibility and
	// shape (spec.md §3) so CursorState() reports what was last written
	// without round-tripping through the terminal.
	cursor Cursor

	// needsRedraw is the redraw latch (spec.md §3 "needs_redraw"): set by
	// RequestRedraw or a detected resize, consumed by the next Flush,
	// which hard-clears the terminal and zeroes the front buffer so the
	// whole back buffer re-emits.
	needsRedraw bool

	// Synchronization - protects buffer access during resize
	mu sync.Mutex

	// Caps holds the terminal capabilities detected at construction.
	Caps Capabilities
}

// Size represents dimensions.
type Size struct {
	Width  int
	Height int
}

// NewScreen creates a new screen writing to the given writer.
// Pass nil to use os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	caps := DetectCapabilities(os.Stdout.Fd())
	if !caps.IsTTY {
		return nil, fmt.Errorf("forme: stdout is not a terminal")
	}

	width, height, err := getTerminalSize(fd)
	if err != nil {
		// Default fallback
		width, height = 80, 24
	}

	s := &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
		cursor:     DefaultCursor(),
		Caps:       caps,
	}

	return s, nil
}

// FlushStats holds statistics from the last flush.
type FlushStats struct {
	DirtyRows   int
	ChangedRows int
}

// lastFlushStats holds stats from the most recent flush.
var lastFlushStats FlushStats

// GetFlushStats returns stats from the last flush.
func GetFlushStats() FlushStats {
	return lastFlushStats
}

// debugFlush enables detailed flush debugging via TUI_DEBUG_FLUSH env var
var debugFlush = os.Getenv("TUI_DEBUG_FLUSH") != ""

// RequestRedraw sets the needs_redraw latch: the next Flush hard-clears
// the terminal and zeroes the front buffer before diffing, so every
// non-empty back-buffer cell re-emits even though nothing changed since
// the last frame. Callers ask for this after anything that can desync
// the terminal's actual contents from front — a detected resize, or
// recovering from an external program that wrote to the same screen.
func (s *Screen) RequestRedraw() {
	s.mu.Lock()
	s.needsRedraw = true
	s.mu.Unlock()
}

// Flush renders the back buffer to the terminal using per-cell diff.
// Only cells that actually changed are written, with cursor positioning for each run.
// Uses dirty row tracking to skip rows that haven't been modified. The
// whole frame — hard-clear included, when needs_redraw is latched — is
// wrapped in a synchronized-output block (spec.md §4.3) so capable
// terminals paint it atomically instead of mid-scan.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	s.BeginSync()

	if s.needsRedraw {
		s.buf.WriteString("\x1b[0m\x1b[2J\x1b[H")
		s.lastStyle = DefaultStyle()
		s.front.Clear()
		s.back.MarkAllDirty()
		s.needsRedraw = false
	}

	dirtyCount := 0
	changedCount := 0
	cursorX, cursorY := -1, -1
	positionCount := 0

	for y := 0; y < s.height; y++ {
		// Fast path: skip rows not marked dirty (no writes since last frame)
		if !s.back.RowDirty(y) {
			continue
		}
		dirtyCount++

		rowChanged := false
		for x := 0; x < s.width; x++ {
			backCell := s.back.Get(x, y)
			if backCell == s.front.Get(x, y) {
				continue
			}

			// skip placeholder cells (second half of double-width chars)
			if backCell.Rune == 0 {
				s.front.Set(x, y, backCell)
				continue
			}

			// Cell changed - need to write it
			if !rowChanged {
				rowChanged = true
				changedCount++
			}

			// Position cursor if not already there
			if cursorX != x || cursorY != y {
				if debugFlush && positionCount < 50 {
					rw := runewidth.RuneWidth(backCell.Rune)
					fmt.Fprintf(os.Stderr, "Flush: pos(%d,%d) cursor was (%d,%d) writing '%c' (U+%04X) width=%d\n",
						x, y, cursorX, cursorY, backCell.Rune, backCell.Rune, rw)
				}
				positionCount++
				s.buf.WriteString("\x1b[")
				s.writeIntToBuf(y + 1)
				s.buf.WriteByte(';')
				s.writeIntToBuf(x + 1)
				s.buf.WriteByte('H')
			}

			s.writeCell(&s.buf, backCell)
			s.front.Set(x, y, backCell)
			// cursor advances by the display width of the character
			rw := runewidth.RuneWidth(backCell.Rune)
			if rw == 0 {
				rw = 1 // zero-width chars still advance cursor by 1 in most terminals
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if debugFlush {
		fmt.Fprintf(os.Stderr, "Flush: %d dirty rows, %d changed rows, %d cursor positions, buf size %d\n",
			dirtyCount, changedCount, positionCount, s.buf.Len())
	}

	// Reset style at end if we have changes
	if changedCount > 0 {
		s.buf.WriteString("\x1b[0m")
		s.lastStyle = DefaultStyle()
	}
	s.EndSync()
	// Note: Don't write here - let FlushBuffer() do it so we can batch cursor ops

	// Clear dirty flags for next frame
	s.back.ClearDirtyFlags()

	// Record stats
	lastFlushStats = FlushStats{DirtyRows: dirtyCount, ChangedRows: changedCount}
}

// writeIntToBuf writes an integer to the buffer without allocation.
func (s *Screen) writeIntToBuf(n int) {
	if n == 0 {
		s.buf.WriteByte('0')
		return
	}
	if n < 0 {
		s.buf.WriteByte('-')
		n = -n
	}

	// Use scratch space on stack (max 10 digits for int32)
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	s.buf.Write(scratch[i:])
}

// FlushFull forces a complete redraw of the terminal: it latches
// needs_redraw and drives it through the same Flush/FlushBuffer path
// every other frame uses, rather than a second writer with its own
// hard-clear and sync-wrap logic to keep in sync.
func (s *Screen) FlushFull() {
	s.RequestRedraw()
	s.Flush()
	s.FlushBuffer()
}

// FlushInline renders the buffer for inline mode (no alternate screen).
// Renders at current cursor position using relative movement. prevLines is
// the line count returned by the previous FlushInline call (0 on the first
// call); when the new content is shorter, the now-stale trailing lines
// from the previous frame are cleared too, so a shrinking inline render
// (e.g. a filtered list) doesn't leave ghost rows below it.
// Returns the number of lines rendered for cleanup tracking.
func (s *Screen) FlushInline(height, prevLines int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()

	totalRows := height
	if prevLines > totalRows {
		totalRows = prevLines
	}

	linesRendered := 0
	for y := 0; y < totalRows && y < s.height; y++ {
		// Move to start of line, clear to end of line
		s.buf.WriteString("\r\x1b[K")

		if y < height {
			for x := 0; x < s.width; x++ {
				cell := s.back.Get(x, y)
				if cell.Rune == 0 {
					continue // skip placeholder cells (second half of double-width chars)
				}
				s.writeCell(&s.buf, cell)
				s.front.Set(x, y, cell)
			}
			linesRendered++
		}

		if y < totalRows-1 {
			s.buf.WriteString("\n") // Move down to next line
		}
	}

	// Reset style
	s.buf.WriteString("\x1b[0m")
	s.lastStyle = DefaultStyle()

	// Move cursor back to start of our content (first line), accounting
	// for any stale rows beyond the new content that were just cleared.
	if totalRows > 1 {
		s.buf.WriteString(fmt.Sprintf("\x1b[%dA", totalRows-1))
	}
	s.buf.WriteString("\r")

	s.writer.Write(s.buf.Bytes())
	s.back.ClearDirtyFlags()

	return linesRendered
}

// writeCell writes a cell's style and rune to the buffer.
func (s *Screen) writeCell(buf *bytes.Buffer, cell Cell) {
	// Only emit style changes
	if !cell.Style.Equal(s.lastStyle) {
		s.writeStyle(buf, cell.Style)
		s.lastStyle = cell.Style
	}
	buf.WriteRune(cell.Rune)
}

// writeStyle writes ANSI escape codes for the given style.
func (s *Screen) writeStyle(buf *bytes.Buffer, style Style) {
	// Reset first if we need to turn off attributes
	buf.WriteString("\x1b[0")

	// Attributes
	if style.Attr.Has(AttrBold) {
		buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		buf.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		buf.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		buf.WriteString(";4")
	}
	if style.Attr.Has(AttrBlink) {
		buf.WriteString(";5")
	}
	if style.Attr.Has(AttrInverse) {
		buf.WriteString(";7")
	}
	if style.Attr.Has(AttrStrikethrough) {
		buf.WriteString(";9")
	}
	if style.Attr.Has(AttrUndercurl) {
		buf.WriteString(";4:3")
	}

	// Colors are downgraded to what the detected terminal capabilities
	// can actually display before being encoded (spec.md §4.1 color
	// sequences assume 24-bit support; Caps.Downgrade approximates to
	// 256-color when the terminal can't do true color).
	s.writeColor(buf, s.Caps.Downgrade(style.FG), true)
	s.writeColor(buf, s.Caps.Downgrade(style.BG), false)
	s.writeUnderlineColor(buf, s.Caps.Downgrade(style.Underline))

	buf.WriteString("m")
}

// writeUnderlineColor writes the SGR 58/59 underline-color escape fragment.
func (s *Screen) writeUnderlineColor(buf *bytes.Buffer, c Color) {
	switch c.Mode {
	case ColorDefault:
		buf.WriteString(";59")
	case Color256:
		buf.WriteString(";58;5;")
		s.writeIntToBuf(int(c.Index))
	case ColorRGB:
		buf.WriteString(";58;2;")
		s.writeIntToBuf(int(c.R))
		buf.WriteByte(';')
		s.writeIntToBuf(int(c.G))
		buf.WriteByte(';')
		s.writeIntToBuf(int(c.B))
	case Color16:
		// The underline-color SGR has no 16-color form; use the 256-color
		// form, whose indices 0-15 are the same 16 palette colors.
		buf.WriteString(";58;5;")
		s.writeIntToBuf(int(c.Index))
	}
}

// writeColor writes the ANSI escape code for a color (allocation-free).
func (s *Screen) writeColor(buf *bytes.Buffer, c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		// Use default color (39 for fg, 49 for bg)
		if fg {
			buf.WriteString(";39")
		} else {
			buf.WriteString(";49")
		}
	case Color16:
		// Basic 16 colors
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			// Bright colors
			base += 60
			buf.WriteByte(';')
			s.writeIntToBuf(base + int(c.Index-8))
		} else {
			buf.WriteByte(';')
			s.writeIntToBuf(base + int(c.Index))
		}
	case Color256:
		// 256 color palette
		if fg {
			buf.WriteString(";38;5;")
		} else {
			buf.WriteString(";48;5;")
		}
		s.writeIntToBuf(int(c.Index))
	case ColorRGB:
		// True color
		if fg {
			buf.WriteString(";38;2;")
		} else {
			buf.WriteString(";48;2;")
		}
		s.writeIntToBuf(int(c.R))
		buf.WriteByte(';')
		s.writeIntToBuf(int(c.G))
		buf.WriteByte(';')
		s.writeIntToBuf(int(c.B))
	}
}

// writeString is a helper to write a string directly to the terminal.
func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}

// Clear clears the back buffer.
func (s *Screen) Clear() {
	s.back.Clear()
}

// CursorState returns the engine's last-known cursor position,
// visibility and shape (spec.md §3 drawing state), as tracked by
// MoveCursor/ShowCursor/HideCursor/SetCursorShape/BufferCursor.
func (s *Screen) CursorState() Cursor {
	return s.cursor
}

// ShowCursor makes the cursor visible.
func (s *Screen) ShowCursor() {
	s.cursor.Visible = true
	s.writeString("\x1b[?25h")
}

// HideCursor hides the cursor.
func (s *Screen) HideCursor() {
	s.cursor.Visible = false
	s.writeString("\x1b[?25l")
}

// MoveCursor moves the cursor to the given position (0-indexed).
func (s *Screen) MoveCursor(x, y int) {
	s.cursor.X, s.cursor.Y = x, y
	// Build escape sequence without allocation: \x1b[row;colH
	var scratch [32]byte
	b := scratch[:0]
	b = append(b, "\x1b["...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	b = append(b, 'H')
	s.writer.Write(b)
}

// BufferCursor writes cursor positioning and visibility to the internal buffer.
// Call this before FlushBuffer() to batch cursor ops with content in one syscall.
func (s *Screen) BufferCursor(x, y int, visible bool, shape CursorShape) {
	s.cursor = Cursor{X: x, Y: y, Visible: visible, Style: shape}

	// Cursor shape: \x1b[N q
	s.buf.WriteString("\x1b[")
	s.writeIntToBuf(int(shape))
	s.buf.WriteString(" q")

	// Cursor position: \x1b[row;colH
	s.buf.WriteString("\x1b[")
	s.writeIntToBuf(y + 1)
	s.buf.WriteByte(';')
	s.writeIntToBuf(x + 1)
	s.buf.WriteByte('H')

	// Cursor visibility
	if visible {
		s.buf.WriteString("\x1b[?25h")
	} else {
		s.buf.WriteString("\x1b[?25l")
	}
}

// BufferCursorColor sets cursor color using OSC 12 escape sequence.
// Format: OSC 12 ; #RRGGBB BEL
func (s *Screen) BufferCursorColor(c Color) {
	if c.Mode == ColorRGB {
		s.buf.WriteString("\x1b]12;#")
		s.buf.WriteByte(hexDigit(c.R >> 4))
		s.buf.WriteByte(hexDigit(c.R & 0xF))
		s.buf.WriteByte(hexDigit(c.G >> 4))
		s.buf.WriteByte(hexDigit(c.G & 0xF))
		s.buf.WriteByte(hexDigit(c.B >> 4))
		s.buf.WriteByte(hexDigit(c.B & 0xF))
		s.buf.WriteByte('\x07') // BEL terminator
	}
}

func hexDigit(n uint8) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + n - 10
}

// FlushBuffer writes the accumulated buffer to the terminal in one syscall.
func (s *Screen) FlushBuffer() {
	if s.buf.Len() > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// CursorShape represents the terminal cursor shape.
type CursorShape int

const (
	CursorDefault        CursorShape = 0 // Terminal default
	CursorBlockBlink     CursorShape = 1 // Blinking block
	CursorBlock          CursorShape = 2 // Steady block
	CursorUnderlineBlink CursorShape = 3 // Blinking underline
	CursorUnderline      CursorShape = 4 // Steady underline
	CursorBarBlink       CursorShape = 5 // Blinking bar (line)
	CursorBar            CursorShape = 6 // Steady bar (line)
)

// SetCursorShape changes the cursor shape.
func (s *Screen) SetCursorShape(shape CursorShape) {
	s.cursor.Style = shape
	// Build escape sequence without allocation: \x1b[N q
	var scratch [16]byte
	b := scratch[:0]
	b = append(b, "\x1b["...)
	b = appendInt(b, int(shape))
	b = append(b, " q"...)
	s.writer.Write(b)
}

// appendInt appends an integer to a byte slice without allocation.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	// Find number of digits
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
