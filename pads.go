package vpad

// padBehavior is the touch-mapping strategy for one game-mode context:
// a record of function-valued fields rather than a type hierarchy, since
// the set of variants is closed and most share the default behavior.
type padBehavior struct {
	onEnter func(s *System)
	update  func(s *System, p Point)
	draw    func(s *System, cv Canvas)

	// suppressDraw hides this pad without changing its dispatch. Saved
	// and restored by the modal context stack.
	suppressDraw bool
}

// defaultUpdate forwards the touch point to the overlay grid.
func defaultUpdate(s *System, p Point) {
	s.grid.update(p, &s.inputs)
}

// defaultDraw renders the overlay grid, except in gesture-only mode where
// no touch zones are live and nothing should be painted.
func defaultDraw(s *System, cv Canvas) {
	if s.touchMode == GestureOnly {
		return
	}
	s.grid.draw(cv, &s.inputs)
}

// normalUpdate adds the gameplay extras on top of the default: text-box
// sub-mode holds the fire input to fast-forward dialog, bypassing all
// hit-testing, and the floating pad contributes direction when enabled.
func normalUpdate(s *System, p Point) {
	if s.textboxMode {
		s.inputs[InputFire] = true
		return
	}
	defaultUpdate(s, p)
	if s.floatingEnabled {
		s.floating.apply(&s.inputs)
	}
}

// The paused and options pads are transparent proxies: the gameplay
// layout stays visible and usable under those overlays.
func proxyNormalUpdate(s *System, p Point) {
	s.pads[ModeNormal].update(s, p)
}

func proxyNormalDraw(s *System, cv Canvas) {
	s.pads[ModeNormal].draw(s, cv)
}

func enterTouchOnly(s *System) {
	s.setTouchMode(TouchOnly)
}

// enterBoth is the fallback for modes with no settings context of their own.
func enterBoth(s *System) {
	s.setTouchMode(TouchAndGesture)
}

func enterFromContext(ctx Context) func(*System) {
	return func(s *System) {
		s.setTouchMode(s.settings.Mode(ctx))
	}
}

// defaultPads builds the mode-pad table, one behavior record per game mode.
func defaultPads() [modeCount]padBehavior {
	var pads [modeCount]padBehavior
	for i := range pads {
		pads[i] = padBehavior{
			onEnter: enterBoth,
			update:  defaultUpdate,
			draw:    defaultDraw,
		}
	}

	pads[ModeNone].onEnter = enterTouchOnly

	pads[ModeNormal].onEnter = enterTouchOnly
	pads[ModeNormal].update = normalUpdate

	pads[ModeInventory].onEnter = enterFromContext(ContextInventory)
	pads[ModeMapSystem].onEnter = enterFromContext(ContextMapSystem)
	pads[ModeIntro].onEnter = enterFromContext(ContextMovies)
	pads[ModeTitle].onEnter = enterFromContext(ContextTitle)

	pads[ModePaused].onEnter = enterFromContext(ContextPause)
	pads[ModePaused].update = proxyNormalUpdate
	pads[ModePaused].draw = proxyNormalDraw

	pads[ModeOptions].onEnter = enterFromContext(ContextOptions)
	pads[ModeOptions].update = proxyNormalUpdate
	pads[ModeOptions].draw = proxyNormalDraw

	return pads
}
