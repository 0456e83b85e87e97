package forme

import "strings"

// Display helpers for common gauge/indicator rendering; LED and Meter
// are used by the default widget drawers (drawers.go).

// LED returns a single LED indicator: ● (on) or ○ (off).
func LED(on bool) string {
	if on {
		return "●"
	}
	return "○"
}

// LEDs returns multiple LED indicators: ●●○○
func LEDs(states ...bool) string {
	var b strings.Builder
	for _, on := range states {
		if on {
			b.WriteRune('●')
		} else {
			b.WriteRune('○')
		}
	}
	return b.String()
}

// Bar returns a segmented bar: ▮▮▮▯▯
func Bar(filled, total int) string {
	var b strings.Builder
	for i := range total {
		if i < filled {
			b.WriteRune('▮')
		} else {
			b.WriteRune('▯')
		}
	}
	return b.String()
}

// Meter returns an analog-style meter: ├──●──────┤
func Meter(value, max, width int) string {
	if width < 3 {
		width = 3
	}
	inner := width - 2 // Account for ├ and ┤
	pos := 0
	if max > 0 {
		pos = (value * (inner - 1)) / max
	}
	if pos >= inner {
		pos = inner - 1
	}
	if pos < 0 {
		pos = 0
	}

	var b strings.Builder
	b.WriteRune('├')
	for i := range inner {
		if i == pos {
			b.WriteRune('●')
		} else {
			b.WriteRune('─')
		}
	}
	b.WriteRune('┤')
	return b.String()
}

// DrawPanel draws a bordered panel with title and returns the interior region.
// Title appears in the top border: ┌─ TITLE ─────┐
func (b *Buffer) DrawPanel(x, y, w, h int, title string, style Style) *Region {
	return b.DrawPanelEx(x, y, w, h, title, BorderSingle, style)
}

// DrawPanelEx draws a panel with custom border style and returns the
// interior Region — the backing primitive for PopupBox (draw.go) and the
// dropdown open-list overlay (drawers.go).
func (b *Buffer) DrawPanelEx(x, y, w, h int, title string, border BorderStyle, style Style) *Region {
	b.DrawBorder(x, y, w, h, border, style)

	if title != "" {
		titleStr := string(border.Horizontal) + " " + title + " "
		b.WriteString(x+1, y, titleStr, style)
	}

	return b.Region(x+1, y+1, w-2, h-2)
}
