package vpad

import "math"

// Floating pad tuning. The pad arms when a finger lands in the corner
// region past floatBorder; direction engages once the drag vector leaves
// the dead zone. There is deliberately no outer radius: any angle past
// the dead zone drives direction, however far the finger travels.
const (
	floatBorder = 0.65
	floatMinR2  = 0.02 * 0.02
)

// floatingPad is the free-floating analog-style alternative to the fixed
// wheel. Instead of hit-testing a corner zone, it captures the touch-down
// point as its origin and reads direction from the drag vector.
type floatingPad struct {
	active  bool
	finger  TouchID
	origin  Point
	current Point
}

// inActivationZone reports whether a touch-down at p should arm the pad.
func (f *floatingPad) inActivationZone(p Point) bool {
	return p.X >= floatBorder && p.Y >= floatBorder
}

// press arms the pad on the given finger, capturing p as the origin.
func (f *floatingPad) press(id TouchID, p Point) {
	f.active = true
	f.finger = id
	f.origin = p
	f.current = p
}

// move updates the tracked position if id is the pad's finger.
func (f *floatingPad) move(id TouchID, p Point) {
	if f.active && id == f.finger {
		f.current = p
	}
}

// release disarms the pad if id is the pad's finger.
func (f *floatingPad) release(id TouchID) {
	if f.active && id == f.finger {
		f.active = false
	}
}

// apply ORs the pad's current direction into the flag array. Inside the
// dead zone no direction is asserted.
func (f *floatingPad) apply(flags *[InputCount]bool) {
	if !f.active {
		return
	}

	vec := f.current.Sub(f.origin)
	if vec.X*vec.X+vec.Y*vec.Y < floatMinR2 {
		return
	}

	t := math.Atan2(vec.Y, vec.X)
	in := func(a, b int) bool {
		return float64(a)*math.Pi/8 <= t && t <= float64(b)*math.Pi/8
	}

	// 45° overlap between neighbors yields two directions on diagonals.
	if in(-8, -5) || in(5, 8) {
		flags[InputLeft] = true
	}
	if in(-3, 3) {
		flags[InputRight] = true
	}
	if in(-7, -1) {
		flags[InputUp] = true
	}
	if in(1, 7) {
		flags[InputDown] = true
	}
}
