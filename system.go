package vpad

// Config selects optional behavior at construction time.
type Config struct {
	// Settings is the per-context touch-mode table. Nil means every
	// context defaults to both sources.
	Settings *Settings

	// FloatingPad replaces the fixed corner wheel's role for movement
	// with the free-floating analog pad during normal gameplay.
	FloatingPad bool
}

// System is the virtual touch gamepad. It owns all mutable input state —
// finger registry, ignore set, flag array, context stack, touch mode —
// and is driven synchronously by the host's per-frame loop:
//
//	PreProcess → Touch/TouchUp as events arrive → Process → Draw
//
// It is not safe for concurrent use; every call must come from the loop.
type System struct {
	enabled bool
	visible bool

	touchMode  TouchMode
	gameMode   GameMode
	recognizer GestureRecognizer
	settings   *Settings

	inputs  [InputCount]bool
	tracker fingerTracker
	grid    buttonGrid
	taps    tapObserver

	pads        [modeCount]padBehavior
	textboxMode bool
	stack       []contextFrame

	floating        floatingPad
	floatingEnabled bool

	injectQueue []syntheticTouch
	pulse       markerPulse
}

// New builds an enabled, visible system in touch-only mode. Register a
// platform recognizer with SetRecognizer before injecting events.
func New(cfg Config) *System {
	settings := cfg.Settings
	if settings == nil {
		settings = DefaultSettings()
	}
	return &System{
		enabled:         true,
		visible:         true,
		touchMode:       TouchOnly,
		settings:        settings,
		tracker:         newFingerTracker(),
		grid:            newButtonGrid(),
		pads:            defaultPads(),
		floatingEnabled: cfg.FloatingPad,
		pulse:           newMarkerPulse(),
	}
}

// Shutdown stops the system: further events are dropped and the platform
// recognizer is switched off.
func (s *System) Shutdown() {
	s.enabled = false
	if s.recognizer != nil {
		s.recognizer.SetEnabled(false)
	}
}

// SetVisible toggles pad drawing without affecting dispatch.
func (s *System) SetVisible(v bool) {
	s.visible = v
}

// SetDisplaySize caches the device resolution used to normalize raw
// sample coordinates. Samples arriving before the first call are dropped.
func (s *System) SetDisplaySize(w, h int) {
	s.tracker.setResolution(float64(w), float64(h))
}

// Grid exposes the overlay layout for zone customization.
func (s *System) Grid() *buttonGrid {
	return &s.grid
}

// PreProcess starts a frame by flushing the previous frame's tap buffer.
func (s *System) PreProcess() {
	if !s.enabled {
		return
	}
	s.taps.flush()
}

// Touch injects one raw move-or-down sample in device coordinates.
// Samples are dropped while the display size is unknown, and continuous
// tracking is dormant in gesture-only mode. Lifts go through TouchUp.
func (s *System) Touch(id TouchID, x, y float64) {
	if !s.enabled {
		return
	}
	if s.touchMode == GestureOnly {
		return
	}

	p, ok := s.tracker.normalize(x, y)
	if !ok {
		return
	}

	if _, ignored := s.tracker.ignored[id]; !ignored && s.floatingEnabled {
		if _, tracked := s.tracker.fingers[id]; !tracked {
			if !s.floating.active && s.floating.inActivationZone(p) {
				s.floating.press(id, p)
			}
		} else {
			s.floating.move(id, p)
		}
	}

	s.tracker.touch(id, p)
}

// TouchUp injects a lift for id. Always processed, even ignored or
// gesture-only: a lifted finger must leave both the registry and the
// ignore set so a reused identifier is not wrongly suppressed.
func (s *System) TouchUp(id TouchID) {
	if !s.enabled {
		return
	}
	s.floating.release(id)
	s.tracker.touchUp(id)
}

// Process recomputes the logical flag array: zero every flag, then OR in
// each tracked finger's hit-test result through the active mode pad.
// Iteration order over the registry never matters — fingers only set
// flags, so the result is the union of their individual hits.
func (s *System) Process() {
	if !s.enabled {
		return
	}

	s.drainInjected()

	for i := range s.inputs {
		s.inputs[i] = false
	}
	s.grid.wheel.clearPressed()

	for _, p := range s.tracker.fingers {
		s.dispatch(p)
	}

	s.pulse.update(tickDelta)
}

// Draw renders the active pad and a marker per tracked finger. No-op
// while the system is disabled or hidden.
func (s *System) Draw(cv Canvas) {
	if !s.enabled || !s.visible {
		return
	}

	s.drawActive(cv)
	s.drawMarkers(cv)
}

// Pressed reports the state of one logical input after the last Process.
func (s *System) Pressed(in Input) bool {
	return s.inputs[in]
}

// Inputs returns the shared flag array. The rest of the input system
// reads it exactly as if the flags were set by physical keys.
func (s *System) Inputs() *[InputCount]bool {
	return &s.inputs
}
