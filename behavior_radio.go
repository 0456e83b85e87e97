package forme

// radioBehavior sets the shared group value to this node's Value on
// Enter, Space, or a left-click. Group is borrowed storage shared by
// every radio button in the group.
func radioBehavior(w *Widget, ev *Event) {
	if w.StateRadio == nil || w.StateRadio.Group == nil || !isActivate(ev) {
		return
	}
	*w.StateRadio.Group = w.StateRadio.Value
	ev.Consume()
}
