package vpad

// GestureRecognizer is the platform-side tap recognizer toggle. The system
// enables it whenever gestures are live and disables it in touch-only mode
// and on shutdown.
type GestureRecognizer interface {
	SetEnabled(enabled bool)
}

// tapObserver buffers the tap points reported by the platform bridge this
// frame. The buffer never survives a frame: pre-process flushes it.
type tapObserver struct {
	taps []Point
}

func (o *tapObserver) tap(p Point) {
	o.taps = append(o.taps, p)
}

func (o *tapObserver) wasTap() bool {
	return len(o.taps) > 0
}

func (o *tapObserver) wasTapIn(r Rect) bool {
	for _, p := range o.taps {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func (o *tapObserver) flush() {
	o.taps = o.taps[:0]
}

// SetRecognizer registers the platform gesture recognizer with the system
// and brings its enabled state in line with the current touch mode. Call
// before injecting any events.
func (s *System) SetRecognizer(r GestureRecognizer) {
	s.recognizer = r
	if r != nil {
		r.SetEnabled(s.enabled && s.touchMode != TouchOnly)
	}
}

// Tap is the sink for the platform tap recognizer. Coordinates are
// normalized screen space. Taps reported after shutdown are dropped.
func (s *System) Tap(x, y float64) {
	if !s.enabled {
		return
	}
	s.taps.tap(Point{X: x, Y: y})
}

// WasTap reports whether any tap landed this frame. Unconditionally false
// in touch-only mode.
func (s *System) WasTap() bool {
	if s.touchMode == TouchOnly {
		return false
	}
	return s.taps.wasTap()
}

// WasTapIn reports whether a tap landed inside the normalized region this
// frame. Unconditionally false in touch-only mode.
func (s *System) WasTapIn(r Rect) bool {
	if s.touchMode == TouchOnly {
		return false
	}
	return s.taps.wasTapIn(r)
}

// WasTapInPixels is WasTapIn for a pixel-space region, converted against
// the cached device resolution. False while the resolution is unknown.
func (s *System) WasTapInPixels(x, y, w, h int) bool {
	if s.tracker.resW <= 0 || s.tracker.resH <= 0 {
		return false
	}
	r := RectFromPixels(x, y, w, h, int(s.tracker.resW), int(s.tracker.resH))
	return s.WasTapIn(r)
}
