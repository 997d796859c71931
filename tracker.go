package vpad

// fingerTracker maintains the set of currently-touching fingers and their
// last known normalized positions, plus the ignore set used to absorb
// fingers held across a mode or screen transition.
type fingerTracker struct {
	fingers map[TouchID]Point
	ignored map[TouchID]struct{}

	// Device resolution, cached from the first sample that carries one.
	// Until it is known, samples cannot be normalized and are dropped.
	resW, resH float64
}

func newFingerTracker() fingerTracker {
	return fingerTracker{
		fingers: make(map[TouchID]Point),
		ignored: make(map[TouchID]struct{}),
	}
}

// setResolution caches the device-space dimensions used to normalize raw
// sample coordinates. Zero or negative dimensions are rejected.
func (t *fingerTracker) setResolution(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	t.resW = w
	t.resH = h
}

// normalize converts raw device coordinates to normalized space.
// Reports false while the device resolution is still unknown.
func (t *fingerTracker) normalize(x, y float64) (Point, bool) {
	if t.resW <= 0 || t.resH <= 0 {
		return Point{}, false
	}
	return Point{X: x / t.resW, Y: y / t.resH}, true
}

// touch records a move-or-down sample for id. Ignored fingers stay out of
// the registry until they lift.
func (t *fingerTracker) touch(id TouchID, p Point) {
	if _, ok := t.ignored[id]; ok {
		return
	}
	t.fingers[id] = p
}

// touchUp removes id from the registry and the ignore set. Clearing the
// ignore entry here matters: platforms reuse finger identifiers, and a
// fresh contact must not inherit a stale suppression.
func (t *fingerTracker) touchUp(id TouchID) {
	delete(t.fingers, id)
	delete(t.ignored, id)
}

// ignoreAll moves every tracked finger into the ignore set and empties the
// registry. Called on every mode or screen transition so a finger held
// through the transition does not register a press in the new context.
func (t *fingerTracker) ignoreAll() {
	for id := range t.fingers {
		t.ignored[id] = struct{}{}
		delete(t.fingers, id)
	}
}

// clear drops all tracked fingers without ignoring them. Used when the
// system enters gesture-only mode and continuous tracking goes dormant.
func (t *fingerTracker) clear() {
	for id := range t.fingers {
		delete(t.fingers, id)
	}
}
