package forme

import "strings"

// Label decodes text left to right and writes it starting at (x,y),
// advancing by each code point's display width (spec.md §4.3). '\n'
// moves to (x, y+1) without writing a cell; width-0 code points
// (combining marks, zero-width format characters) write in place without
// advancing the column; a width-2 code point that would straddle the
// right edge of the buffer is skipped entirely rather than split across
// the boundary (spec.md §8 boundary behavior).
func Label(b *Buffer, x, y int, text string, style Style) {
	curX, curY := x, y
	for _, r := range text {
		if r == '\n' {
			curX = x
			curY++
			continue
		}
		w := RuneWidth(r)
		if w == 2 && curX+1 >= b.Width() {
			continue
		}
		// SetFast: Label draws plain content, never borders — border
		// compositing is DrawBorder/DrawPanel's job, not this primitive's.
		b.SetFast(curX, curY, NewCell(r, style))
		if w == 2 {
			b.SetFast(curX+1, curY, Cell{Rune: 0, Style: style})
		}
		if w > 0 {
			curX += w
		}
	}
}

// LabelLink draws text as an OSC 8 hyperlink at (x,y): url is opened by
// terminals that support it when the rendered text is clicked, and
// ignored (plain text) otherwise. Unlike Label, this writes straight to
// s's output rather than through the diffed back buffer — OSC 8 brackets
// a run of glyphs, and the diff flush may split a run's cells across
// unrelated position jumps, so the hyperlinked run is drawn immediately
// and then mirrored into both of s's buffers so the next diff sees no
// stale difference there.
func LabelLink(s *Screen, b *Buffer, x, y int, text, url string, style Style) {
	s.MoveCursor(x, y)
	s.buf.Reset()
	s.writeStyle(&s.buf, style)
	s.lastStyle = style
	s.buf.WriteString("\x1b]8;;")
	s.buf.WriteString(url)
	s.buf.WriteString("\x07")
	curX := x
	for _, r := range text {
		if r == '\n' {
			break
		}
		w := RuneWidth(r)
		if w == 2 && curX+1 >= b.Width() {
			break
		}
		cell := NewCell(r, style)
		b.Set(curX, y, cell)
		s.front.Set(curX, y, cell)
		s.buf.WriteRune(r)
		if w == 2 {
			cont := Cell{Rune: 0, Style: style}
			b.Set(curX+1, y, cont)
			s.front.Set(curX+1, y, cont)
		}
		if w > 0 {
			curX += w
		}
	}
	s.buf.WriteString("\x1b]8;;\x07")
	s.FlushBuffer()
}

// LabelAligned writes text within a fixed-width field, aligned per
// style.Align (AlignLeft/AlignRight/AlignCenter); text longer than width
// is clipped.
func LabelAligned(b *Buffer, x, y, width int, text string, style Style) {
	tw := displayWidth(text)
	if tw > width {
		text = clipToWidth(text, width)
		tw = displayWidth(text)
	}
	pad := width - tw
	switch style.Align {
	case AlignRight:
		x += pad
	case AlignCenter:
		x += pad / 2
	}
	Label(b, x, y, text, style)
}

// WrapText greedily wraps text into lines no wider than width, breaking
// on spaces where possible and hard-breaking a single word longer than
// width. Used by popup/dialog layout, not by the authoritative Cell
// width contract.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if displayWidth(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			for displayWidth(word) > width {
				line = clipToWidth(word, width)
				lines = append(lines, line)
				word = word[len(line):]
				line = ""
			}
			line = word
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PopupBox draws a bordered box of the given size at (x,y), clears its
// interior, writes title centered in the top border, and returns the
// interior Rect content may be written into. The border and interior
// come from Buffer.DrawPanelEx; PopupBox only adds the fill and the
// centered (rather than left-anchored) title.
func PopupBox(b *Buffer, x, y, w, h int, title string, border BorderStyle, style Style) Rect {
	b.FillRect(x, y, w, h, NewCell(' ', style))
	region := b.DrawPanelEx(x, y, w, h, "", border, style)
	if title != "" && w > 4 {
		t := " " + title + " "
		if displayWidth(t) > w-2 {
			t = clipToWidth(t, w-2)
		}
		LabelAligned(b, x+1, y, w-2, t, Style{FG: style.FG, BG: style.BG, Align: AlignCenter})
	}
	return Rect{X: region.x, Y: region.y, W: region.width, H: region.height}
}

// displayWidth sums RuneWidth over s, the authoritative per-spec metric
// (not go-runewidth's general-purpose table) so popup sizing and label
// clipping agree exactly with what Label will actually draw.
func displayWidth(s string) int {
	total := 0
	for _, r := range s {
		total += RuneWidth(r)
	}
	return total
}

// clipToWidth truncates s to the longest prefix whose display width is
// <= width, never splitting a multi-byte rune.
func clipToWidth(s string, width int) string {
	total := 0
	for i, r := range s {
		w := RuneWidth(r)
		if total+w > width {
			return s[:i]
		}
		total += w
	}
	return s
}
