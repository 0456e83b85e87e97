package forme

// effectiveStep returns s.Step, defaulting to (Max-Min)/20 when Step is
// non-positive, per spec.md §4.8.
func (s *SliderState) effectiveStep() float64 {
	if s.Step > 0 {
		return s.Step
	}
	return (s.Max - s.Min) / 20
}

// sliderBehavior moves Value by arrow keys, jumps to extremes on
// Home/End, and sets Value from the click x-ratio while latching
// Dragging for the duration of the drag.
func sliderBehavior(w *Widget, ev *Event) {
	s := w.StateSlider
	if s == nil {
		return
	}
	step := s.effectiveStep()

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyLeft, KeyDown:
			s.Value = clampFloat(s.Value-step, s.Min, s.Max)
			ev.Consume()
		case KeyRight, KeyUp:
			s.Value = clampFloat(s.Value+step, s.Min, s.Max)
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

	if ev.Kind == EventMouse {
		ab := AbsoluteBounds(w)
		switch {
		case ev.MouseButton == MouseLeft && !ev.MouseMotion:
			s.Dragging = true
			s.Value = valueFromRatio(s, ab, ev.MouseX)
			ev.Consume()
		case ev.MouseMotion && s.Dragging:
			s.Value = valueFromRatio(s, ab, ev.MouseX)
			ev.Consume()
		case ev.MouseButton == MouseRelease:
			s.Dragging = false
			ev.Consume()
		}
	}
}

func valueFromRatio(s *SliderState, ab Rect, mouseX int) float64 {
	if ab.W <= 1 {
		return s.Value
	}
	ratio := float64(mouseX-ab.X) / float64(ab.W-1)
	ratio = clampFloat(ratio, 0, 1)
	return clampFloat(s.Min+ratio*(s.Max-s.Min), s.Min, s.Max)
}
