package forme

// buttonBehavior sets Pressed for one frame on Enter, Space, or a
// left-click. The drawer is responsible for clearing Pressed after it
// renders the pulse.
func buttonBehavior(w *Widget, ev *Event) {
	if w.StateButton == nil || !isActivate(ev) {
		return
	}
	w.StateButton.Pressed = true
	ev.Consume()
}
