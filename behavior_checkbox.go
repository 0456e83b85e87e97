package forme

// checkboxBehavior toggles Checked on Enter, Space, or a left-click.
func checkboxBehavior(w *Widget, ev *Event) {
	if w.StateCheckbox == nil || !isActivate(ev) {
		return
	}
	w.StateCheckbox.Checked = !w.StateCheckbox.Checked
	ev.Consume()
}
