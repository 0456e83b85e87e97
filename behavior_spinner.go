package forme

// spinnerBehavior is the integer analogue of sliderBehavior: arrows
// step by Step (defaulting to 1 when non-positive), Home/End jump to
// extremes, and a click in the left or right third of the widget
// decrements or increments respectively.
func spinnerBehavior(w *Widget, ev *Event) {
	s := w.StateSpinner
	if s == nil {
		return
	}
	step := s.Step
	if step <= 0 {
		step = 1
	}

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyLeft, KeyDown:
			s.Value = clampInt(s.Value-step, s.Min, s.Max)
			ev.Consume()
		case KeyRight, KeyUp:
			s.Value = clampInt(s.Value+step, s.Min, s.Max)
			ev.Consume()
		case KeyHome:
			s.Value = s.Min
			ev.Consume()
		case KeyEnd:
			s.Value = s.Max
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventMouse && ev.MouseButton == MouseLeft && !ev.MouseMotion {
		ab := AbsoluteBounds(w)
		if ab.W <= 0 {
			return
		}
		third := ab.W / 3
		offset := ev.MouseX - ab.X
		switch {
		case offset < third:
			s.Value = clampInt(s.Value-step, s.Min, s.Max)
		case offset >= ab.W-third:
			s.Value = clampInt(s.Value+step, s.Min, s.Max)
		}
		ev.Consume()
	}
}
