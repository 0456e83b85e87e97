package forme

// dropdownBehavior implements the closed/open combo-box state machine
// from spec.md §4.8. m tracks the single open dropdown so the router
// can close it on an outside click.
func dropdownBehavior(m *Manager, w *Widget, ev *Event) {
	s := w.StateDropdown
	if s == nil {
		return
	}

	if !s.Open {
		if ev.Kind == EventKey && ev.Key == KeyEnter || ev.Kind == EventChar && ev.Ch == ' ' {
			s.Open = true
			m.OpenDropdown = w
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyUp:
			if len(s.Items) > 0 {
				s.Selected = clampInt(s.Selected-1, 0, len(s.Items)-1)
			}
			ev.Consume()
		case KeyDown:
			if len(s.Items) > 0 {
				s.Selected = clampInt(s.Selected+1, 0, len(s.Items)-1)
			}
			ev.Consume()
		case KeyEnter, KeyEsc:
			s.Open = false
			m.OpenDropdown = nil
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventChar && ev.Ch == ' ' {
		s.Open = false
		m.OpenDropdown = nil
		ev.Consume()
	}
}
