package forme

// textareaGutterWidth is the fixed line-number gutter width consulted
// when ShowLineNumbers is set, per spec.md §4.8.
const textareaGutterWidth = 5

func (s *TextareaState) currentLine() []byte {
	if s.CursorRow < 0 || s.CursorRow >= s.LineCount {
		return nil
	}
	return s.Lines[s.CursorRow]
}

func (s *TextareaState) clampCursorCol() {
	line := s.currentLine()
	s.CursorCol = clampInt(s.CursorCol, 0, len(line))
}

func (s *TextareaState) followScroll() {
	maxScroll := s.LineCount - s.VisibleRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.CursorRow < s.ScrollRow {
		s.ScrollRow = s.CursorRow
	} else if s.CursorRow >= s.ScrollRow+s.VisibleRows {
		s.ScrollRow = s.CursorRow - s.VisibleRows + 1
	}
	s.ScrollRow = clampInt(s.ScrollRow, 0, maxScroll)
}

// textareaBehavior implements multi-line editing: row/column navigation
// mirroring Textbox across rows, Backspace/Delete with line-join at
// boundaries, Enter splitting the current line exactly at the cursor,
// Tab inserting four spaces, and mouse positioning/scrolling.
func textareaBehavior(w *Widget, ev *Event) {
	s := w.StateTextarea
	if s == nil || s.LineCount == 0 {
		return
	}

	if ev.Kind == EventKey {
		switch ev.Key {
		case KeyUp:
			s.CursorRow = clampInt(s.CursorRow-1, 0, s.LineCount-1)
			s.clampCursorCol()
			s.followScroll()
			ev.Consume()
		case KeyDown:
			s.CursorRow = clampInt(s.CursorRow+1, 0, s.LineCount-1)
			s.clampCursorCol()
			s.followScroll()
			ev.Consume()
		case KeyPageUp:
			s.CursorRow = clampInt(s.CursorRow-s.VisibleRows, 0, s.LineCount-1)
			s.clampCursorCol()
			s.followScroll()
			ev.Consume()
		case KeyPageDown:
			s.CursorRow = clampInt(s.CursorRow+s.VisibleRows, 0, s.LineCount-1)
			s.clampCursorCol()
			s.followScroll()
			ev.Consume()
		case KeyLeft:
			if s.CursorCol > 0 {
				s.CursorCol--
			} else if s.CursorRow > 0 {
				s.CursorRow--
				s.CursorCol = len(s.currentLine())
			}
			s.followScroll()
			ev.Consume()
		case KeyRight:
			if s.CursorCol < len(s.currentLine()) {
				s.CursorCol++
			} else if s.CursorRow < s.LineCount-1 {
				s.CursorRow++
				s.CursorCol = 0
			}
			s.followScroll()
			ev.Consume()
		case KeyHome:
			s.CursorCol = 0
			ev.Consume()
		case KeyEnd:
			s.CursorCol = len(s.currentLine())
			ev.Consume()
		case KeyBackspace:
			textareaBackspace(s)
			ev.Consume()
		case KeyDelete:
			textareaDelete(s)
			ev.Consume()
		case KeyEnter:
			textareaSplit(s)
			ev.Consume()
		case KeyTab:
			textareaInsert(s, []byte("    "))
			ev.Consume()
		}
		return
	}

	if ev.Kind == EventChar {
		if ev.Ch < 32 || ev.Ch > 126 {
			return
		}
		textareaInsert(s, []byte{byte(ev.Ch)})
		ev.Consume()
		return
	}

	if ev.Kind == EventMouse {
		textareaMouse(w, s, ev)
	}
}

func textareaInsert(s *TextareaState, text []byte) {
	line := s.currentLine()
	if len(line)+len(text) > s.MaxLineLen {
		return
	}
	newLine := make([]byte, 0, len(line)+len(text))
	newLine = append(newLine, line[:s.CursorCol]...)
	newLine = append(newLine, text...)
	newLine = append(newLine, line[s.CursorCol:]...)
	s.Lines[s.CursorRow] = newLine
	s.CursorCol += len(text)
}

func textareaBackspace(s *TextareaState) {
	if s.CursorCol > 0 {
		line := s.currentLine()
		s.Lines[s.CursorRow] = append(line[:s.CursorCol-1], line[s.CursorCol:]...)
		s.CursorCol--
		return
	}
	if s.CursorRow == 0 {
		return
	}
	prev := s.Lines[s.CursorRow-1]
	cur := s.currentLine()
	if len(prev)+len(cur) > s.MaxLineLen {
		return
	}
	newCol := len(prev)
	s.Lines[s.CursorRow-1] = append(prev, cur...)
	textareaRemoveLine(s, s.CursorRow)
	s.CursorRow--
	s.CursorCol = newCol
	s.followScroll()
}

func textareaDelete(s *TextareaState) {
	line := s.currentLine()
	if s.CursorCol < len(line) {
		s.Lines[s.CursorRow] = append(line[:s.CursorCol], line[s.CursorCol+1:]...)
		return
	}
	if s.CursorRow >= s.LineCount-1 {
		return
	}
	next := s.Lines[s.CursorRow+1]
	if len(line)+len(next) > s.MaxLineLen {
		return
	}
	s.Lines[s.CursorRow] = append(line, next...)
	textareaRemoveLine(s, s.CursorRow+1)
}

func textareaRemoveLine(s *TextareaState, row int) {
	copy(s.Lines[row:], s.Lines[row+1:s.LineCount])
	s.LineCount--
}

// textareaSplit breaks the current line at CursorCol: the suffix
// becomes a new line immediately after, and the current line is
// truncated — preserving the total character count exactly, per
// spec.md §8.
func textareaSplit(s *TextareaState) {
	if s.LineCount >= len(s.Lines) {
		return
	}
	line := s.currentLine()
	suffix := make([]byte, len(line)-s.CursorCol)
	copy(suffix, line[s.CursorCol:])
	prefix := line[:s.CursorCol]

	copy(s.Lines[s.CursorRow+2:s.LineCount+1], s.Lines[s.CursorRow+1:s.LineCount])
	s.Lines[s.CursorRow] = prefix
	s.Lines[s.CursorRow+1] = suffix
	s.LineCount++
	s.CursorRow++
	s.CursorCol = 0
	s.followScroll()
}

func textareaMouse(w *Widget, s *TextareaState, ev *Event) {
	ab := AbsoluteBounds(w)
	gutter := 0
	if s.ShowLineNumbers {
		gutter = textareaGutterWidth
	}
	switch {
	case ev.MouseButton == MouseLeft && !ev.MouseMotion:
		row := clampInt(s.ScrollRow+(ev.MouseY-ab.Y), 0, s.LineCount-1)
		s.CursorRow = row
		s.CursorCol = clampInt(ev.MouseX-ab.X-gutter, 0, len(s.Lines[row]))
		ev.Consume()
	case ev.MouseButton == MouseWheelUp:
		s.ScrollRow = clampInt(s.ScrollRow-3, 0, maxInt(0, s.LineCount-s.VisibleRows))
		ev.Consume()
	case ev.MouseButton == MouseWheelDown:
		s.ScrollRow = clampInt(s.ScrollRow+3, 0, maxInt(0, s.LineCount-s.VisibleRows))
		ev.Consume()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
