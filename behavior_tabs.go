package forme

// tabsBehavior moves the active tab with Left/Right and hit-tests
// clicks against each label's column span — len(label)+2 for the
// padded label plus one separator column, per spec.md §4.8.
func tabsBehavior(w *Widget, ev *Event) {
	s := w.StateTabs
	if s == nil || len(s.Labels) == 0 {
		return
	}

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyLeft:
			s.Selected = clampInt(s.Selected-1, 0, len(s.Labels)-1)
			ev.Consume()
		case KeyRight:
			s.Selected = clampInt(s.Selected+1, 0, len(s.Labels)-1)
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventMouse && ev.MouseButton == MouseLeft && !ev.MouseMotion {
		ab := AbsoluteBounds(w)
		x := ev.MouseX - ab.X
		col := 0
		for i, label := range s.Labels {
			width := len(label) + 2
			if x >= col && x < col+width {
				s.Selected = i
				ev.Consume()
				return
			}
			col += width + 1
		}
	}
}
