package forme

// WidgetKind discriminates the tagged-union state a Widget can carry. The
// zero value, WidgetContainer, has no built-in behavior or default drawer
// of its own — it exists purely to group children.
type WidgetKind uint8

const (
	WidgetContainer WidgetKind = iota
	WidgetButton
	WidgetTextbox
	WidgetCheckbox
	WidgetRadio
	WidgetList
	WidgetSlider
	WidgetSpinner
	WidgetDropdown
	WidgetTabs
	WidgetScrollbar
	WidgetTextarea
	WidgetSplitter
	WidgetCustom
)

// maxChildren bounds how many direct children a widget may own, mirroring
// the fixed-capacity convention the rest of this engine uses for its
// other bounded collections (the hotkey table, the focus-scope stack).
const maxChildren = 64

// Rect is an axis-aligned rectangle. A Widget's Bounds are in
// parent-relative coordinates; AbsoluteBounds returns absolute ones.
type Rect struct {
	X, Y, W, H int
}

// containsAbs reports whether the absolute point (px,py) falls within a rect
// whose top-left corner is (ox,oy) in absolute coordinates.
func (r Rect) containsAbs(ox, oy, px, py int) bool {
	return px >= ox && px < ox+r.W && py >= oy && py < oy+r.H
}

// HandlerFunc is invoked by the router during capture, target, or bubble
// phases. It receives the widget it's attached to and the event in
// flight; it calls ev's Stop/Prevent/Consume methods to influence
// further dispatch.
type HandlerFunc func(w *Widget, ev *Event)

// handlerEntry pairs a callback with the event kind and phase it's
// registered for.
type handlerEntry struct {
	kind    EventKind
	capture bool
	fn      HandlerFunc
}

// WidgetStyle carries per-widget overrides. The default drawers apply FG
// and BG when HasFG/HasBG are set; Border and HasBorder are not read by
// any default drawer. Border reuses the Buffer glyph-table BorderStyle
// (BorderSingle, BorderDouble, BorderRounded, BorderBold, BorderASCII).
type WidgetStyle struct {
	FG, BG    Color
	Border    BorderStyle
	HasFG     bool
	HasBG     bool
	HasBorder bool
}

// Widget is one node of the retained scene graph. Its typed behavior
// state lives in one of the State* fields matching Kind; only the field
// matching Kind is meaningful, modeling the tagged-union contract from
// spec.md §3/§9 without reflection.
type Widget struct {
	Kind WidgetKind
	ID   int
	Name string

	Bounds Rect

	Parent   *Widget
	children []*Widget

	Visible   bool
	Enabled   bool
	Focusable bool
	Focused   bool
	TabIndex  int // -1 = not tabbable

	handlers []handlerEntry

	DrawFn func(s *Screen, w *Widget)

	Style WidgetStyle

	StateButton    *ButtonState
	StateTextbox   *TextboxState
	StateCheckbox  *CheckboxState
	StateRadio     *RadioState
	StateList      *ListState
	StateSlider    *SliderState
	StateSpinner   *SpinnerState
	StateDropdown  *DropdownState
	StateTabs      *TabsState
	StateScrollbar *ScrollbarState
	StateTextarea  *TextareaState
	StateSplitter  *SplitterState

	Custom any
}

// NewWidget creates a detached widget of the given kind with sane defaults
// (visible, enabled, not focusable, tab_index -1).
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		Kind:     kind,
		Visible:  true,
		Enabled:  true,
		TabIndex: -1,
	}
}

// AbsoluteBounds walks the parent chain summing offsets, per spec.md
// §4.5 — bounds are never cached, since a parent's position may change
// between calls without the child being touched.
func AbsoluteBounds(w *Widget) Rect {
	x, y := 0, 0
	for p := w; p != nil; p = p.Parent {
		x += p.Bounds.X
		y += p.Bounds.Y
	}
	return Rect{X: x, Y: y, W: w.Bounds.W, H: w.Bounds.H}
}

// ContainsPoint tests the widget's absolute rectangle against (px,py).
func ContainsPoint(w *Widget, px, py int) bool {
	ab := AbsoluteBounds(w)
	return px >= ab.X && px < ab.X+ab.W && py >= ab.Y && py < ab.Y+ab.H
}

// AddChild detaches child from any existing parent, then appends it to
// w's children, enforcing the single-parent invariant and the fixed
// per-parent capacity from spec.md §4.5.
func (w *Widget) AddChild(child *Widget) bool {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	if len(w.children) >= maxChildren {
		return false
	}
	child.Parent = w
	w.children = append(w.children, child)
	return true
}

// RemoveChild detaches child from w if present.
func (w *Widget) RemoveChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Children returns w's direct children in insertion order.
func (w *Widget) Children() []*Widget {
	return w.children
}

// FindByID searches the subtree rooted at w depth-first for a widget
// with the given ID.
func FindByID(w *Widget, id int) *Widget {
	if w == nil {
		return nil
	}
	if w.ID == id {
		return w
	}
	for _, c := range w.children {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindByName searches the subtree rooted at w depth-first for a widget
// with the given name.
func FindByName(w *Widget, name string) *Widget {
	if w == nil {
		return nil
	}
	if w.Name == name {
		return w
	}
	for _, c := range w.children {
		if found := FindByName(c, name); found != nil {
			return found
		}
	}
	return nil
}

// On registers a bubble-phase handler for kind. Use OnCapture for the
// capture phase.
func (w *Widget) On(kind EventKind, fn HandlerFunc) {
	w.handlers = append(w.handlers, handlerEntry{kind: kind, fn: fn})
}

// OnCapture registers a capture-phase handler for kind.
func (w *Widget) OnCapture(kind EventKind, fn HandlerFunc) {
	w.handlers = append(w.handlers, handlerEntry{kind: kind, capture: true, fn: fn})
}

// Destroy recursively detaches and clears a widget subtree. Borrowed
// state (textbox/textarea buffers, radio group values, item arrays) is
// the caller's responsibility per spec.md §3's ownership note — Destroy
// only unlinks the tree.
func (w *Widget) Destroy() {
	for _, c := range w.children {
		c.Parent = nil
		c.Destroy()
	}
	w.children = nil
	if w.Parent != nil {
		w.Parent.RemoveChild(w)
	}
}
