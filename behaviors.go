package forme

// runBuiltinBehavior fires the default per-type input handling for w
// during the router's target phase, per spec.md §4.8. Containers and
// Custom widgets have no built-in behavior of their own.
func runBuiltinBehavior(m *Manager, w *Widget, ev *Event) {
	switch w.Kind {
	case WidgetButton:
		buttonBehavior(w, ev)
	case WidgetTextbox:
		textboxBehavior(w, ev)
	case WidgetCheckbox:
		checkboxBehavior(w, ev)
	case WidgetRadio:
		radioBehavior(w, ev)
	case WidgetList:
		listBehavior(w, ev)
	case WidgetSlider:
		sliderBehavior(w, ev)
	case WidgetSpinner:
		spinnerBehavior(w, ev)
	case WidgetDropdown:
		dropdownBehavior(m, w, ev)
	case WidgetTabs:
		tabsBehavior(w, ev)
	case WidgetScrollbar:
		scrollbarBehavior(w, ev)
	case WidgetTextarea:
		textareaBehavior(w, ev)
	case WidgetSplitter:
		splitterBehavior(w, ev)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isActivate reports the Enter/Space/left-click activation gesture
// shared by Button, Checkbox, and Radio.
func isActivate(ev *Event) bool {
	if ev.Kind == EventKey && ev.Key == KeyEnter {
		return true
	}
	if ev.Kind == EventChar && ev.Ch == ' ' {
		return true
	}
	if ev.Kind == EventMouse && ev.MouseButton == MouseLeft && !ev.MouseMotion {
		return true
	}
	return false
}
