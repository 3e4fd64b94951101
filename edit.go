package hexes

// EditCallback receives the accumulated characters when an edit session
// terminates. It runs on the dispatch loop like any behavior; re-calling
// Edit from within it is the supported way to keep a box in editing mode.
type EditCallback func(app *App, box *Box, text string)

// editSession routes raw keypresses into one editable box until the
// termination key is seen. At most one session exists per Application.
type editSession struct {
	box      *Box
	callback EditCallback
	chars    []rune
}

// feed processes one keypress. It reports whether the session terminated
// and whether the box's visible text changed. The accumulated characters
// mirror into the target box on every change so the box updates live.
func (s *editSession) feed(ev KeyEvent, terminator Key) (done, changed bool) {
	switch {
	case ev.Key == terminator:
		return true, false
	case ev.Key == KeyBackspace:
		if len(s.chars) == 0 {
			return false, false
		}
		s.chars = s.chars[:len(s.chars)-1]
	case ev.Key == KeyRune:
		s.chars = append(s.chars, ev.Rune)
	default:
		// Navigation and other special keys are not part of the session.
		return false, false
	}
	s.box.SetText(string(s.chars))
	return false, true
}

// text returns the accumulated characters.
func (s *editSession) text() string {
	return string(s.chars)
}
