package forme

// maxFocusScopes bounds the modal focus-scope stack.
const maxFocusScopes = 16

// maxHotkeys bounds the hotkey table.
const maxHotkeys = 64

// HotkeyHandler is invoked with a nil target widget when a hotkey
// matches, per spec.md §4.7.
type HotkeyHandler func(ev *Event, userData any)

// hotkeyEntry is one row of the bounded hotkey table.
type hotkeyEntry struct {
	key                Key
	ch                 rune
	isChar             bool
	shift, alt, ctrl   bool
	handler            HotkeyHandler
	userData           any
	active             bool
}

// Manager owns the widget tree root, focus/hover state, the modal
// focus-scope stack, and the hotkey table (spec.md §3 "Widget manager").
type Manager struct {
	Root *Widget

	Focused *Widget
	Hovered *Widget

	// OpenDropdown is the single dropdown currently showing its list, if
	// any — a left-click hitting any other widget closes it (spec.md
	// §4.8: "Click outside the open list closes it").
	OpenDropdown *Widget

	focusScopes []*Widget // stack of modal scope roots
	hotkeys     []hotkeyEntry
}

// NewManager creates a manager rooted at root.
func NewManager(root *Widget) *Manager {
	return &Manager{Root: root}
}

// RegisterHotkey adds a plain-key hotkey entry. Returns false if the
// table is full.
func (m *Manager) RegisterHotkey(key Key, shift, alt, ctrl bool, handler HotkeyHandler, userData any) bool {
	if len(m.hotkeys) >= maxHotkeys {
		return false
	}
	m.hotkeys = append(m.hotkeys, hotkeyEntry{
		key: key, shift: shift, alt: alt, ctrl: ctrl,
		handler: handler, userData: userData, active: true,
	})
	return true
}

// RegisterCharHotkey adds a CHAR-kind hotkey entry matching a specific
// rune in addition to modifiers.
func (m *Manager) RegisterCharHotkey(ch rune, shift, alt, ctrl bool, handler HotkeyHandler, userData any) bool {
	if len(m.hotkeys) >= maxHotkeys {
		return false
	}
	m.hotkeys = append(m.hotkeys, hotkeyEntry{
		ch: ch, isChar: true, shift: shift, alt: alt, ctrl: ctrl,
		handler: handler, userData: userData, active: true,
	})
	return true
}

// matchHotkeys returns the first active entry matching ev, enforcing all
// recorded modifier bits per the resolved open question in spec.md §9.
func (m *Manager) matchHotkeys(ev *Event) *hotkeyEntry {
	for i := range m.hotkeys {
		e := &m.hotkeys[i]
		if !e.active {
			continue
		}
		if e.shift != ev.Shift || e.alt != ev.Alt || e.ctrl != ev.Ctrl {
			continue
		}
		if e.isChar {
			if ev.Kind == EventChar && ev.Ch == e.ch {
				return e
			}
			continue
		}
		if ev.Kind == EventKey && ev.Key == e.key {
			return e
		}
	}
	return nil
}

// scopeRoot returns the current focus-scope root: the topmost entry of
// the modal stack, else the tree root.
func (m *Manager) scopeRoot() *Widget {
	if n := len(m.focusScopes); n > 0 {
		return m.focusScopes[n-1]
	}
	return m.Root
}

// collectFocusables gathers focusable widgets under root via DFS,
// filtered by visible ∧ enabled ∧ focusable, preserving DFS order (a
// stable sort on TabIndex is applied after collection, per spec.md §4.6).
func collectFocusables(root *Widget) []*Widget {
	var out []*Widget
	var walk func(w *Widget)
	walk = func(w *Widget) {
		if w == nil || !w.Visible {
			return
		}
		if w.Enabled && w.Focusable {
			out = append(out, w)
		}
		for _, c := range w.children {
			walk(c)
		}
	}
	walk(root)
	stableSortByTabIndex(out)
	return out
}

// stableSortByTabIndex performs an insertion sort — the focusable lists
// this engine handles are small (a screenful of widgets), so an O(n^2)
// stable sort avoids pulling in sort.SliceStable for a handful of
// elements.
func stableSortByTabIndex(ws []*Widget) {
	for i := 1; i < len(ws); i++ {
		j := i
		for j > 0 && ws[j-1].TabIndex > ws[j].TabIndex {
			ws[j-1], ws[j] = ws[j], ws[j-1]
			j--
		}
	}
}

// FocusNext advances focus to the next focusable widget (wrapping),
// under the current scope. If the current focus isn't among the
// collected focusables, the first one wins.
func (m *Manager) FocusNext() {
	m.advanceFocus(1)
}

// FocusPrev advances focus to the previous focusable widget (wrapping).
func (m *Manager) FocusPrev() {
	m.advanceFocus(-1)
}

func (m *Manager) advanceFocus(delta int) {
	list := collectFocusables(m.scopeRoot())
	if len(list) == 0 {
		return
	}
	idx := -1
	for i, w := range list {
		if w == m.Focused {
			idx = i
			break
		}
	}
	var next int
	if idx < 0 {
		next = 0
	} else {
		next = ((idx+delta)%len(list) + len(list)) % len(list)
	}
	m.setFocus(list[next])
}

// setFocus updates Focused, clearing the previous widget's Focused flag.
func (m *Manager) setFocus(w *Widget) {
	if m.Focused == w {
		return
	}
	if m.Focused != nil {
		m.Focused.Focused = false
	}
	m.Focused = w
	if w != nil {
		w.Focused = true
	}
}

// PushFocus enters a modal scope rooted at modalRoot by pushing modalRoot
// onto the scope stack and focusing the first focusable under it (or
// clearing focus when there is none) (spec.md §3 "Lifecycle"). The
// previously focused widget is not recorded.
func (m *Manager) PushFocus(modalRoot *Widget) {
	if len(m.focusScopes) >= maxFocusScopes {
		return
	}
	m.focusScopes = append(m.focusScopes, modalRoot)
	list := collectFocusables(modalRoot)
	if len(list) > 0 {
		m.setFocus(list[0])
	} else {
		m.setFocus(nil)
	}
}

// PopFocus leaves the current modal scope, returning focus to the first
// focusable under the new top scope or the tree root.
func (m *Manager) PopFocus() {
	if len(m.focusScopes) == 0 {
		return
	}
	m.focusScopes = m.focusScopes[:len(m.focusScopes)-1]
	list := collectFocusables(m.scopeRoot())
	if len(list) > 0 {
		m.setFocus(list[0])
	} else {
		m.setFocus(m.Root)
	}
}

// hitTest finds the deepest visible widget whose absolute rectangle
// contains (px,py), per the glossary's "Hit test" definition.
func hitTest(root *Widget, px, py int) *Widget {
	if root == nil || !root.Visible || !ContainsPoint(root, px, py) {
		return nil
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		if hit := hitTest(root.children[i], px, py); hit != nil {
			return hit
		}
	}
	return root
}
