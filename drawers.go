package forme

// DrawWidget renders w and its subtree into s's back buffer: the
// built-in per-type default drawer runs first (spec.md §4.8 "Default
// drawing"), then w.DrawFn if set, which may overdraw; then children are
// drawn in insertion order. Containers and WidgetCustom without a DrawFn
// emit no glyphs of their own — they exist purely to position children.
// Invisible widgets and their entire subtree are skipped.
func DrawWidget(s *Screen, w *Widget) {
	if w == nil || !w.Visible {
		return
	}
	ab := AbsoluteBounds(w)
	drawBuiltin(s, w, ab)
	if w.DrawFn != nil {
		w.DrawFn(s, w)
	}
	for _, c := range w.children {
		DrawWidget(s, c)
	}
}

// resolveStyle returns the style a widget draws with: WidgetStyle.FG/BG
// replace the base colors when the caller set them explicitly; reverse
// video is the engine's built-in focus indicator and is added whenever
// the widget is focused; disabled widgets dim.
func (w *Widget) resolveStyle(base Style) Style {
	if w.Style.HasFG {
		base.FG = w.Style.FG
	}
	if w.Style.HasBG {
		base.BG = w.Style.BG
	}
	if w.Focused {
		base.Attr = base.Attr.With(AttrInverse)
	}
	if !w.Enabled {
		base.Attr = base.Attr.With(AttrDim)
	}
	return base
}

// drawBuiltin dispatches to the per-Kind default drawer. ab is w's
// absolute bounds, already walked via AbsoluteBounds.
func drawBuiltin(s *Screen, w *Widget, ab Rect) {
	buf := s.Buffer()
	switch w.Kind {
	case WidgetButton:
		drawButton(buf, w, ab)
	case WidgetTextbox:
		drawTextbox(buf, w, ab)
	case WidgetCheckbox:
		drawCheckbox(buf, w, ab)
	case WidgetRadio:
		drawRadio(buf, w, ab)
	case WidgetList:
		drawList(buf, w, ab)
	case WidgetSlider:
		drawSlider(buf, w, ab)
	case WidgetSpinner:
		drawSpinner(buf, w, ab)
	case WidgetDropdown:
		drawDropdown(buf, w, ab)
	case WidgetTabs:
		drawTabs(buf, w, ab)
	case WidgetScrollbar:
		drawScrollbar(buf, w, ab)
	case WidgetTextarea:
		drawTextarea(buf, w, ab)
	case WidgetSplitter:
		drawSplitter(buf, w, ab)
	}
}

func drawButton(buf *Buffer, w *Widget, ab Rect) {
	style := w.resolveStyle(DefaultStyle())
	if w.StateButton != nil && w.StateButton.Pressed {
		style.Attr = style.Attr.With(AttrBold)
	}
	if ab.W >= 2 && ab.H >= 1 {
		buf.WriteStringPadded(ab.X, ab.Y, " "+w.Name+" ", style, ab.W)
	}
	if w.StateButton != nil {
		w.StateButton.Pressed = false
	}
}

func drawTextbox(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateTextbox
	if st == nil {
		return
	}
	style := w.resolveStyle(DefaultStyle())
	visible := st.Buffer[:st.Length]
	if st.Scroll > 0 && st.Scroll <= len(visible) {
		visible = visible[st.Scroll:]
	}
	buf.WriteStringPadded(ab.X, ab.Y, string(visible), style, ab.W)
	if w.Focused {
		cursorX := ab.X + (st.Cursor - st.Scroll)
		if cursorX >= ab.X && cursorX < ab.X+ab.W {
			buf.SetStyle(cursorX, ab.Y, style.Foreground(style.BG).Background(style.FG))
		}
	}
}

func drawCheckbox(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateCheckbox
	mark := "[ ]"
	if st != nil && st.Checked {
		mark = "[x]"
	}
	style := w.resolveStyle(DefaultStyle())
	buf.WriteStringPadded(ab.X, ab.Y, mark+" "+w.Name, style, ab.W)
}

func drawRadio(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateRadio
	selected := st != nil && st.Group != nil && *st.Group == st.Value
	style := w.resolveStyle(DefaultStyle())
	buf.WriteStringPadded(ab.X, ab.Y, LED(selected)+" "+w.Name, style, ab.W)
}

func drawList(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateList
	if st == nil {
		return
	}
	base := w.resolveStyle(DefaultStyle())
	rows := ab.H
	if st.Visible > 0 && st.Visible < rows {
		rows = st.Visible
	}
	for row := 0; row < rows; row++ {
		idx := st.Scroll + row
		y := ab.Y + row
		if idx >= len(st.Items) {
			continue
		}
		rowStyle := base
		if idx == st.Selected {
			rowStyle.Attr = rowStyle.Attr.With(AttrInverse)
		}
		buf.WriteStringPadded(ab.X, y, st.Items[idx], rowStyle, ab.W)
	}
}

func drawSlider(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateSlider
	if st == nil || ab.W < 1 {
		return
	}
	style := w.resolveStyle(DefaultStyle())
	ratio := float32(0)
	if st.Max > st.Min {
		ratio = float32((st.Value - st.Min) / (st.Max - st.Min))
	}
	buf.WriteProgressBar(ab.X, ab.Y, ab.W, ratio, style)
}

func drawSpinner(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateSpinner
	if st == nil {
		return
	}
	style := w.resolveStyle(DefaultStyle())
	label := "- " + itoa(st.Value) + " +"
	if st.Max > st.Min && ab.W > len(label)+3 {
		label += " " + Meter(st.Value-st.Min, st.Max-st.Min, ab.W-len(label)-1)
	}
	buf.WriteStringPadded(ab.X, ab.Y, label, style, ab.W)
}

func drawDropdown(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateDropdown
	if st == nil {
		return
	}
	style := w.resolveStyle(DefaultStyle())
	selected := ""
	if st.Selected >= 0 && st.Selected < len(st.Items) {
		selected = st.Items[st.Selected]
	}
	arrow := "v"
	if st.Open {
		arrow = "^"
	}
	buf.WriteLeader(ab.X, ab.Y, w.Name, selected+" "+arrow, ab.W, ' ', style)
	if st.Open && len(st.Items) > 0 {
		region := buf.DrawPanelEx(ab.X, ab.Y+1, ab.W, len(st.Items)+2, "", BorderSingle, style)
		for i, item := range st.Items {
			rowStyle := style
			if i == st.Selected {
				rowStyle.Attr = rowStyle.Attr.With(AttrInverse)
			}
			region.WriteString(0, i, item, rowStyle)
		}
	}
}

func drawTabs(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateTabs
	if st == nil {
		return
	}
	base := w.resolveStyle(DefaultStyle())
	spans := make([]Span, 0, len(st.Labels)*2-1)
	for i, label := range st.Labels {
		style := base
		if i == st.Selected {
			style.Attr = style.Attr.With(AttrBold | AttrUnderline)
		}
		spans = append(spans, Span{Text: " " + label + " ", Style: style})
		if i < len(st.Labels)-1 {
			spans = append(spans, Span{Text: "|", Style: base})
		}
	}
	buf.WriteSpans(ab.X, ab.Y, spans, ab.W)
}

func drawScrollbar(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateScrollbar
	if st == nil {
		return
	}
	style := w.resolveStyle(DefaultStyle())
	length := ab.H
	vertical := true
	if st.Orientation == ScrollbarHorizontal {
		length = ab.W
		vertical = false
	}
	if length <= 0 || st.Content <= 0 {
		return
	}
	thumbLen := length * st.View / st.Content
	if thumbLen < 1 {
		thumbLen = 1
	}
	maxScroll := st.Content - st.View
	thumbPos := 0
	if maxScroll > 0 {
		thumbPos = st.Scroll * (length - thumbLen) / maxScroll
	}
	for i := 0; i < length; i++ {
		r := rune('│')
		if !vertical {
			r = '─'
		}
		if i >= thumbPos && i < thumbPos+thumbLen {
			r = '█'
		}
		if vertical {
			buf.Set(ab.X, ab.Y+i, Cell{Rune: r, Style: style, Width: 1})
		} else {
			buf.Set(ab.X+i, ab.Y, Cell{Rune: r, Style: style, Width: 1})
		}
	}
}

func drawTextarea(buf *Buffer, w *Widget, ab Rect) {
	st := w.StateTextarea
	if st == nil {
		return
	}
	style := w.resolveStyle(DefaultStyle())
	gutter := 0
	if st.ShowLineNumbers {
		gutter = textareaGutterWidth
	}
	rows := ab.H
	if st.VisibleRows > 0 && st.VisibleRows < rows {
		rows = st.VisibleRows
	}
	for row := 0; row < rows; row++ {
		lineIdx := st.ScrollRow + row
		y := ab.Y + row
		if lineIdx >= st.LineCount {
			continue
		}
		if gutter > 0 {
			buf.WriteStringPadded(ab.X, y, itoa(lineIdx+1), Style{Attr: AttrDim}, gutter-1)
		}
		line := trimNul(st.Lines[lineIdx])
		buf.WriteStringPadded(ab.X+gutter, y, string(line), style, ab.W-gutter)
	}
	if w.Focused {
		cx := ab.X + gutter + (st.CursorCol)
		cy := ab.Y + (st.CursorRow - st.ScrollRow)
		if cx >= ab.X && cx < ab.X+ab.W && cy >= ab.Y && cy < ab.Y+ab.H {
			buf.SetStyle(cx, cy, style.Foreground(style.BG).Background(style.FG))
		}
	}
}

func drawSplitter(buf *Buffer, w *Widget, ab Rect) {
	style := w.resolveStyle(DefaultStyle())
	st := w.StateSplitter
	if st == nil {
		return
	}
	if st.Orientation == SplitterVertical {
		divider := ab.X + int(st.Ratio*float64(ab.W)+0.5)
		buf.VLine(divider, ab.Y, ab.H, '│', style)
	} else {
		divider := ab.Y + int(st.Ratio*float64(ab.H)+0.5)
		buf.HLine(ab.X, divider, ab.W, '─', style)
	}
}

// trimNul returns b up to (not including) its first NUL byte, matching
// the borrowed fixed-capacity line buffers TextareaState.Lines holds.
func trimNul(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// itoa is a tiny allocation-free-ish integer formatter for the handful
// of numeric labels the default drawers need (spinner value, line
// numbers) — avoids pulling in strconv for single-call use sites.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
