package vpad

// setTouchMode switches which touch-event sources are live. Unchanged
// modes are a no-op, so repeated onEnter calls never thrash the platform
// recognizer. The recognizer runs whenever gestures are live, and entering
// gesture-only mode drops the finger registry — continuous tracking is
// meaningless there.
func (s *System) setTouchMode(m TouchMode) {
	if m == s.touchMode {
		return
	}

	s.touchMode = m

	if s.recognizer != nil {
		s.recognizer.SetEnabled(m != TouchOnly)
	}
	if m == GestureOnly {
		s.tracker.clear()
	}
}

// TouchMode returns the currently active touch mode.
func (s *System) TouchMode() TouchMode {
	return s.touchMode
}
