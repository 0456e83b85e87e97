//go:build windows

package forme

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

// windowsConsoleMode bits not exported by golang.org/x/sys/windows under
// the name we need (ENABLE_VIRTUAL_TERMINAL_PROCESSING/_INPUT postdate
// some vendored copies); defined locally to match the documented values.
const (
	enableVirtualTerminalProcessing uint32 = 0x0004
	enableVirtualTerminalInput      uint32 = 0x0200
	disableNewlineAutoReturn        uint32 = 0x0008
)

// getTerminalSize returns the console's visible buffer size via
// GetConsoleScreenBufferInfo (spec.md §6 "a terminal-size query
// returning (cols, rows)").
func getTerminalSize(fd int) (int, int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, err
	}
	w := int(info.Window.Right-info.Window.Left) + 1
	h := int(info.Window.Bottom-info.Window.Top) + 1
	return w, h, nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size { return Size{Width: s.width, Height: s.height} }

// Width returns the screen width.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height.
func (s *Screen) Height() int { return s.height }

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer { return s.back }

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan Size { return s.resizeChan }

// EnterRawMode puts the console into raw mode: disables line input, echo,
// and processed input, and turns on virtual-terminal sequence processing
// so the ANSI/VT output the encoder emits renders the same as on POSIX
// (spec.md §6 "Windows console input is read as wide-char records ...").
// There is no SIGWINCH equivalent on Windows, so resize is detected by
// polling (spec.md §5): EnterRawMode starts pollResizeLoop, which calls
// PollResize every 200ms while raw mode is active.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	h := windows.Handle(s.fd)
	var origMode uint32
	if err := windows.GetConsoleMode(h, &origMode); err != nil {
		return fmt.Errorf("failed to get console mode: %w", err)
	}
	s.origTermios = origMode

	raw := origMode
	raw &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	raw |= windows.ENABLE_WINDOW_INPUT | windows.ENABLE_MOUSE_INPUT | enableVirtualTerminalInput
	if err := windows.SetConsoleMode(h, raw); err != nil {
		return fmt.Errorf("failed to set raw console mode: %w", err)
	}

	outH := windows.Handle(windows.Stdout)
	var outMode uint32
	if err := windows.GetConsoleMode(outH, &outMode); err == nil {
		windows.SetConsoleMode(outH, outMode|enableVirtualTerminalProcessing|disableNewlineAutoReturn)
	}

	s.inRawMode = true
	go s.pollResizeLoop()

	s.writeString("\x1b[?1049h") // Enter alternate screen
	s.writeString("\x1b[2J")
	s.writeString("\x1b[H")
	s.writeString("\x1b[?25l")
	s.writeString("\x1b[?2004h")

	return nil
}

// ExitRawMode restores the console to its original mode.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?2004l")
	s.writeString("\x1b[?25h")
	s.writeString("\x1b[?1049l")

	if s.origTermios != nil {
		h := windows.Handle(s.fd)
		if err := windows.SetConsoleMode(h, s.origTermios.(uint32)); err != nil {
			return fmt.Errorf("failed to restore console mode: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// EnterInlineMode sets the same raw console input mode as EnterRawMode,
// except that mouse input is not enabled; it does not switch to the
// alternate screen, change the output console mode, or start
// pollResizeLoop.
func (s *Screen) EnterInlineMode() error {
	if s.inRawMode {
		return nil
	}
	h := windows.Handle(s.fd)
	var origMode uint32
	if err := windows.GetConsoleMode(h, &origMode); err != nil {
		return fmt.Errorf("failed to get console mode: %w", err)
	}
	s.origTermios = origMode

	raw := origMode
	raw &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	raw |= windows.ENABLE_WINDOW_INPUT | enableVirtualTerminalInput
	if err := windows.SetConsoleMode(h, raw); err != nil {
		return fmt.Errorf("failed to set raw console mode: %w", err)
	}

	s.inRawMode = true
	s.inlineMode = true
	return nil
}

// ExitInlineMode restores the console from inline mode, with the same
// clear/move-below semantics as the POSIX implementation.
func (s *Screen) ExitInlineMode(linesUsed int, clear bool) error {
	if !s.inRawMode {
		return nil
	}

	if clear && linesUsed > 0 {
		for i := 0; i < linesUsed; i++ {
			s.writeString("\r\x1b[2K")
			if i < linesUsed-1 {
				s.writeString("\x1b[1B")
			}
		}
		if linesUsed > 1 {
			s.writeString(fmt.Sprintf("\x1b[%dA", linesUsed-1))
		}
		s.writeString("\r\x1b[0m")
	} else if linesUsed > 0 {
		if linesUsed > 1 {
			s.writeString(fmt.Sprintf("\x1b[%dB", linesUsed-1))
		}
		s.writeString("\r\n\x1b[0m")
	} else {
		s.writeString("\x1b[0m")
	}

	if s.origTermios != nil {
		h := windows.Handle(s.fd)
		if err := windows.SetConsoleMode(h, s.origTermios.(uint32)); err != nil {
			return fmt.Errorf("failed to restore console mode: %w", err)
		}
	}

	s.inRawMode = false
	s.inlineMode = false
	return nil
}

// IsInlineMode returns true if the screen is in inline mode.
func (s *Screen) IsInlineMode() bool { return s.inlineMode }

// PollResize checks the console buffer size and, if it changed since the
// last poll, resizes both buffers and pushes the new size onto
// ResizeChan. Windows has no SIGWINCH; the host's frame loop calls this
// once per frame-begin in place of the signal-driven watcher term_unix.go
// installs (spec.md §5: "the resize latch ... polled via API on
// Windows").
func (s *Screen) PollResize() {
	width, height, err := getTerminalSize(s.fd)
	if err != nil {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.mu.Lock()
	s.width = width
	s.height = height
	s.front.Resize(width, height)
	s.back.Resize(width, height)
	// Latch the redraw: the next Flush hard-clears the terminal and
	// zeroes front so the full back buffer re-emits at the new size.
	s.needsRedraw = true
	s.mu.Unlock()
	select {
	case s.resizeChan <- Size{Width: width, Height: height}:
	default:
	}
}

// pollResizeLoop is started by EnterRawMode on Windows in place of
// term_unix.go's signal handler, giving callers that never invoke
// PollResize explicitly the same frame-independent resize behavior
// EnterRawMode provides on POSIX.
func (s *Screen) pollResizeLoop() {
	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()
	for range t.C {
		if !s.inRawMode {
			return
		}
		s.PollResize()
	}
}
