package forme

// scrollbarBehavior sets Scroll from a click's position ratio along the
// bar and nudges it by 3 per wheel tick, per spec.md §4.8.
func scrollbarBehavior(w *Widget, ev *Event) {
	s := w.StateScrollbar
	if s == nil {
		return
	}
	maxScroll := s.Content - s.View
	if maxScroll < 0 {
		maxScroll = 0
	}

	if ev.Kind != EventMouse {
		return
	}

	switch {
	case ev.MouseButton == MouseLeft && !ev.MouseMotion:
		ab := AbsoluteBounds(w)
		var ratio float64
		if s.Orientation == ScrollbarHorizontal {
			if ab.W > 1 {
				ratio = float64(ev.MouseX-ab.X) / float64(ab.W-1)
			}
		} else {
			if ab.H > 1 {
				ratio = float64(ev.MouseY-ab.Y) / float64(ab.H-1)
			}
		}
		ratio = clampFloat(ratio, 0, 1)
		s.Scroll = clampInt(int(ratio*float64(maxScroll)+0.5), 0, maxScroll)
		ev.Consume()
	case ev.MouseButton == MouseWheelUp:
		s.Scroll = clampInt(s.Scroll-3, 0, maxScroll)
		ev.Consume()
	case ev.MouseButton == MouseWheelDown:
		s.Scroll = clampInt(s.Scroll+3, 0, maxScroll)
		ev.Consume()
	}
}
