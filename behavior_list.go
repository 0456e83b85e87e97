package forme

// listBehavior implements scrolling single-selection list navigation
// per spec.md §4.8: arrows move by one with scroll-follows-selection,
// PageUp/PageDown move by a page, Home/End jump to extremes, clicks
// select the hit row, and the wheel scrolls without moving selection.
func listBehavior(w *Widget, ev *Event) {
	s := w.StateList
	if s == nil {
		return
	}
	count := len(s.Items)
	if count == 0 {
		return
	}
	maxScroll := count - s.Visible
	if maxScroll < 0 {
		maxScroll = 0
	}

	follow := func() {
		if s.Selected < s.Scroll {
			s.Scroll = s.Selected
		} else if s.Selected >= s.Scroll+s.Visible {
			s.Scroll = s.Selected - s.Visible + 1
		}
		s.Scroll = clampInt(s.Scroll, 0, maxScroll)
	}

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyUp:
			s.Selected = clampInt(s.Selected-1, 0, count-1)
			follow()
			ev.Consume()
		case KeyDown:
			s.Selected = clampInt(s.Selected+1, 0, count-1)
			follow()
			ev.Consume()
		case KeyPageUp:
			s.Selected = clampInt(s.Selected-s.Visible, 0, count-1)
			follow()
			ev.Consume()
		case KeyPageDown:
			s.Selected = clampInt(s.Selected+s.Visible, 0, count-1)
			follow()
			ev.Consume()
		case KeyHome:
			s.Selected = 0
			follow()
			ev.Consume()
		case KeyEnd:
			s.Selected = count - 1
			follow()
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventMouse {
		top := AbsoluteBounds(w).Y
		switch {
		case ev.MouseButton == MouseLeft && !ev.MouseMotion:
			row := s.Scroll + (ev.MouseY - top)
			if row >= 0 && row < count {
				s.Selected = row
				ev.Consume()
			}
		case ev.MouseButton == MouseWheelUp:
			s.Scroll = clampInt(s.Scroll-1, 0, maxScroll)
			ev.Consume()
		case ev.MouseButton == MouseWheelDown:
			s.Scroll = clampInt(s.Scroll+1, 0, maxScroll)
			ev.Consume()
		}
	}
}
