package forme

import (
	"encoding/base64"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities records what the connected terminal was detected to
// support. It is probed once at Screen construction — the engine never
// re-probes mid-session, matching spec.md's "detected, not configured"
// ambient-stack stance (see SPEC_FULL.md §2).
type Capabilities struct {
	IsTTY             bool
	TrueColor         bool
	Color256          bool
	SyncOutput        bool // CSI ?2026 — assumed supported; safe no-op otherwise
	BracketedPaste    bool
	FocusEvents       bool
	Mouse             bool
}

// DetectCapabilities probes fd (typically os.Stdout's descriptor) via
// go-isatty and termenv's color-profile detection.
func DetectCapabilities(fd uintptr) Capabilities {
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	profile := termenv.EnvColorProfile()
	return Capabilities{
		IsTTY:          tty,
		TrueColor:      tty && profile >= termenv.TrueColor,
		Color256:       tty && profile >= termenv.ANSI256,
		SyncOutput:     tty,
		BracketedPaste: tty,
		FocusEvents:    tty,
		Mouse:          tty,
	}
}

// Downgrade clamps a color to what caps can actually display: true color
// is approximated to the nearest 256-palette index when the terminal
// can't do 24-bit, matching termenv's degrade-gracefully behavior for
// lower-capability terminals.
func (caps Capabilities) Downgrade(c Color) Color {
	if c.Mode != ColorRGB || caps.TrueColor || !caps.Color256 {
		return c
	}
	converted := termenv.ANSI256.Color(hexString(c))
	if idx, ok := converted.(termenv.ANSI256Color); ok {
		return PaletteColor(uint8(idx))
	}
	return c
}

// hexString renders a Color as "#RRGGBB" for termenv color conversion.
func hexString(c Color) string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 7)
	b[0] = '#'
	b[1], b[2] = hexDigits[c.R>>4], hexDigits[c.R&0xF]
	b[3], b[4] = hexDigits[c.G>>4], hexDigits[c.G&0xF]
	b[5], b[6] = hexDigits[c.B>>4], hexDigits[c.B&0xF]
	return string(b)
}

// EnableMouse turns on basic + motion + SGR-extended mouse reporting and
// flushes immediately (spec.md §4.3: "toggling ... emits the corresponding
// sequence immediately and flushes").
func (s *Screen) EnableMouse() {
	s.writeString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
}

// DisableMouse disables mouse reporting in the reverse order it was enabled.
func (s *Screen) DisableMouse() {
	s.writeString("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
}

// EnableFocusEvents turns on focus in/out reporting.
func (s *Screen) EnableFocusEvents() {
	s.writeString("\x1b[?1004h")
}

// DisableFocusEvents turns off focus in/out reporting.
func (s *Screen) DisableFocusEvents() {
	s.writeString("\x1b[?1004l")
}

// EnableBracketedPaste turns on bracketed-paste markers around pasted text.
func (s *Screen) EnableBracketedPaste() {
	s.writeString("\x1b[?2004h")
}

// DisableBracketedPaste turns off bracketed-paste markers.
func (s *Screen) DisableBracketedPaste() {
	s.writeString("\x1b[?2004l")
}

// SetCursorColor sets the cursor color immediately via OSC 12, flushing
// straight to the writer (spec.md §4.3 feature-toggle contract: "emits the
// corresponding sequence immediately and flushes"). For batching the color
// change with the rest of a frame's output, use BufferCursorColor instead.
func (s *Screen) SetCursorColor(c Color) {
	if c.Mode != ColorRGB {
		return
	}
	var b [16]byte
	buf := b[:0]
	buf = append(buf, "\x1b]12;#"...)
	buf = append(buf, hexDigit(c.R>>4), hexDigit(c.R&0xF))
	buf = append(buf, hexDigit(c.G>>4), hexDigit(c.G&0xF))
	buf = append(buf, hexDigit(c.B>>4), hexDigit(c.B&0xF))
	buf = append(buf, '\x07')
	s.writer.Write(buf)
}

// BeginSync wraps the following writes in a synchronized-output block so
// capable terminals present them as one atomic frame. Emitted
// unconditionally — a no-op escape on terminals that don't understand it.
func (s *Screen) BeginSync() {
	s.buf.WriteString("\x1b[?2026h")
}

// EndSync closes a synchronized-output block opened by BeginSync.
func (s *Screen) EndSync() {
	s.buf.WriteString("\x1b[?2026l")
}

// SetClipboard sets the system clipboard via an OSC 52 escape sequence,
// base64-encoding the payload as the wire format requires.
func (s *Screen) SetClipboard(text string) {
	seq := osc52.New(text)
	s.writeString(seq.String())
}

// clipboardSequence builds the raw OSC 52 sequence without going through
// go-osc52's terminal-aware wrapper, for callers who need the bytes rather
// than a direct write (kept for symmetry with the other OSC builders).
func clipboardSequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

// HyperlinkStart begins an OSC 8 hyperlink region; cells written after this
// call and before HyperlinkEnd render as a clickable link in supporting
// terminals.
func (s *Screen) HyperlinkStart(url string) {
	s.buf.WriteString("\x1b]8;;")
	s.buf.WriteString(url)
	s.buf.WriteString("\x07")
}

// HyperlinkEnd closes an OSC 8 hyperlink region.
func (s *Screen) HyperlinkEnd() {
	s.buf.WriteString("\x1b]8;;\x07")
}
