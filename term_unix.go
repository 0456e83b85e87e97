//go:build !windows

package forme

import (
	"bytes"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// getTerminalSize returns the current terminal dimensions via a
// TIOCGWINSZ ioctl, portable across Linux/Darwin/BSD in x/sys/unix.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Width returns the screen width.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height.
func (s *Screen) Height() int {
	return s.height
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode for TUI operation.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	s.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	s.inRawMode = true

	// Start listening for resize signals
	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	// Enter alternate screen, hide cursor, enable bracketed paste
	s.writeString("\x1b[?1049h") // Enter alternate screen
	s.writeString("\x1b[2J")     // Clear screen (ensures front buffer matches actual screen)
	s.writeString("\x1b[H")      // Move cursor to home position
	s.writeString("\x1b[?25l")   // Hide cursor
	s.writeString("\x1b[?2004h") // Enable bracketed paste mode

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	// Disable bracketed paste, show cursor, exit alternate screen
	s.writeString("\x1b[?2004l") // Disable bracketed paste mode
	s.writeString("\x1b[?25h")   // Show cursor
	s.writeString("\x1b[?1049l") // Exit alternate screen

	signal.Stop(s.sigChan)

	if s.origTermios != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.origTermios.(*unix.Termios)); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// EnterInlineMode puts the terminal into raw mode WITHOUT alternate buffer.
// Use this for inline UI elements (progress bars, menus, etc.) that render
// in the normal terminal flow rather than taking over the screen.
func (s *Screen) EnterInlineMode() error {
	if s.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	s.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	s.inRawMode = true
	s.inlineMode = true

	// Start listening for resize signals
	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	// NO alternate screen switch for inline mode
	// Keep cursor visible

	return nil
}

// ExitInlineMode restores the terminal from inline mode.
// If clear is true, clears the lines used.
// If clear is false, moves cursor below the rendered content.
func (s *Screen) ExitInlineMode(linesUsed int, clear bool) error {
	if !s.inRawMode {
		return nil
	}

	// After FlushInline, cursor is at start of our content (row 0 of inline area)
	if clear && linesUsed > 0 {
		// Build all clear commands into a single write
		var clearBuf bytes.Buffer
		for i := 0; i < linesUsed; i++ {
			clearBuf.WriteString("\r\x1b[2K") // Start of line, clear entire line
			if i < linesUsed-1 {
				clearBuf.WriteString("\x1b[1B") // Move down to next line
			}
		}
		// Move back to first line
		if linesUsed > 1 {
			clearBuf.WriteString(fmt.Sprintf("\x1b[%dA", linesUsed-1))
		}
		clearBuf.WriteString("\r")      // Ensure at start of line
		clearBuf.WriteString("\x1b[0m") // Reset style
		s.writer.Write(clearBuf.Bytes())
	} else if linesUsed > 0 {
		// Move cursor below content
		var moveBuf bytes.Buffer
		if linesUsed > 1 {
			moveBuf.WriteString(fmt.Sprintf("\x1b[%dB", linesUsed-1)) // Move to last line of content
		}
		moveBuf.WriteString("\r\n")     // New line after content
		moveBuf.WriteString("\x1b[0m") // Reset style
		s.writer.Write(moveBuf.Bytes())
	} else {
		// Reset style
		s.writeString("\x1b[0m")
	}

	signal.Stop(s.sigChan)

	if s.origTermios != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.origTermios.(*unix.Termios)); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	s.inRawMode = false
	s.inlineMode = false
	return nil
}

// IsInlineMode returns true if the screen is in inline mode.
func (s *Screen) IsInlineMode() bool {
	return s.inlineMode
}

// handleSignals processes OS signals.
func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := getTerminalSize(s.fd)
		if err != nil {
			continue
		}
		if width != s.width || height != s.height {
			s.mu.Lock()
			s.width = width
			s.height = height
			s.front.Resize(width, height)
			s.back.Resize(width, height)
			// Latch the redraw: the next Flush hard-clears the terminal
			// and zeroes front so the full back buffer re-emits at the
			// new size, instead of clearing the screen here and racing
			// whatever frame is already in flight.
			s.needsRedraw = true
			s.mu.Unlock()
			// Non-blocking send (outside lock to avoid potential deadlock)
			select {
			case s.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}
