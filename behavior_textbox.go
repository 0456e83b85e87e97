package forme

// textboxBehavior implements single-line editing: cursor movement
// clamped to [0,length], Backspace/Delete, and printable-ASCII /
// Space insertion bounded by Capacity-1 (spec.md §4.8, §8).
func textboxBehavior(w *Widget, ev *Event) {
	s := w.StateTextbox
	if s == nil {
		return
	}

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyLeft:
			s.Cursor = clampInt(s.Cursor-1, 0, s.Length)
			ev.Consume()
		case KeyRight:
			s.Cursor = clampInt(s.Cursor+1, 0, s.Length)
			ev.Consume()
		case KeyHome:
			s.Cursor = 0
			ev.Consume()
		case KeyEnd:
			s.Cursor = s.Length
			ev.Consume()
		case KeyBackspace:
			if s.Cursor > 0 {
				copy(s.Buffer[s.Cursor-1:], s.Buffer[s.Cursor:s.Length])
				s.Length--
				s.Cursor--
			}
			ev.Consume()
		case KeyDelete:
			if s.Cursor < s.Length {
				copy(s.Buffer[s.Cursor:], s.Buffer[s.Cursor+1:s.Length])
				s.Length--
			}
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventChar {
		ch := ev.Ch
		if (ch < 32 || ch > 126) && ch != ' ' {
			return
		}
		if s.Length >= s.Capacity-1 {
			ev.Consume()
			return
		}
		copy(s.Buffer[s.Cursor+1:s.Length+1], s.Buffer[s.Cursor:s.Length])
		s.Buffer[s.Cursor] = byte(ch)
		s.Length++
		s.Cursor++
		ev.Consume()
	}
}
