package forme

// Dispatch routes ev through the manager's tree per the phased contract
// in spec.md §4.6: Tab short-circuits to focus navigation, then hotkeys,
// then target selection, then capture → target (built-in behavior in
// between) → bubble.
func (m *Manager) Dispatch(ev *Event) {
	if ev.Kind == EventKey && ev.Key == KeyTab {
		if ev.Shift {
			m.FocusPrev()
		} else {
			m.FocusNext()
		}
		return
	}

	if hk := m.matchHotkeys(ev); hk != nil {
		hk.handler(ev, hk.userData)
		if ev.Consumed() {
			return
		}
	}

	if ev.Kind == EventMouse && ev.MouseButton == MouseLeft && !ev.MouseMotion && m.OpenDropdown != nil {
		if hit := hitTest(m.Root, ev.MouseX, ev.MouseY); hit != m.OpenDropdown {
			m.OpenDropdown.StateDropdown.Open = false
			m.OpenDropdown = nil
		}
	}

	target := m.selectTarget(ev)
	if target == nil {
		return
	}

	path := ancestorPath(target)

	for _, w := range path {
		m.runHandlers(w, ev, true)
		if ev.Stopped() {
			return
		}
	}

	m.runHandlers(target, ev, true)
	if ev.Stopped() {
		return
	}
	if !ev.Prevented() {
		runBuiltinBehavior(m, target, ev)
		if ev.Stopped() {
			return
		}
	}
	m.runHandlers(target, ev, false)
	if ev.Stopped() {
		return
	}

	for i := len(path) - 1; i >= 0; i-- {
		m.runHandlers(path[i], ev, false)
		if ev.Stopped() {
			return
		}
	}
}

// selectTarget picks the widget a non-Tab event dispatches to: mouse
// events hit-test against the tree; everything else goes to the
// currently-focused widget, falling back to the root. A left-click on a
// focusable widget moves focus to it before dispatch.
func (m *Manager) selectTarget(ev *Event) *Widget {
	if ev.Kind == EventMouse {
		hit := hitTest(m.Root, ev.MouseX, ev.MouseY)
		if hit == nil {
			hit = m.Root
		}
		if ev.MouseButton == MouseLeft && !ev.MouseMotion && hit.Focusable && hit.Enabled {
			m.setFocus(hit)
		}
		return hit
	}
	if m.Focused != nil {
		return m.Focused
	}
	return m.Root
}

// ancestorPath returns the root-to-parent chain above w (excluding w
// itself), root first.
func ancestorPath(w *Widget) []*Widget {
	var rev []*Widget
	for p := w.Parent; p != nil; p = p.Parent {
		rev = append(rev, p)
	}
	path := make([]*Widget, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// runHandlers invokes w's handlers matching ev.Kind and the given phase,
// in registration order, stopping early if a handler sets Stopped.
func (m *Manager) runHandlers(w *Widget, ev *Event, capture bool) {
	for _, h := range w.handlers {
		if h.kind != ev.Kind || h.capture != capture {
			continue
		}
		h.fn(w, ev)
		if ev.Stopped() {
			return
		}
	}
}
