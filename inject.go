package vpad

// syntheticTouch represents a single injected input event. Touch samples
// use device coordinates, identical to real platform events; taps use
// normalized coordinates, identical to the recognizer callback.
type syntheticTouch struct {
	kind syntheticKind
	id   TouchID
	x, y float64
}

type syntheticKind uint8

const (
	syntheticSample syntheticKind = iota
	syntheticUp
	syntheticTap
)

// InjectTouch queues a move-or-down sample for a synthetic finger. The
// event is consumed at the start of the next Process, one per frame.
func (s *System) InjectTouch(id TouchID, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticTouch{
		kind: syntheticSample, id: id, x: x, y: y,
	})
}

// InjectTouchUp queues a lift for a synthetic finger.
func (s *System) InjectTouchUp(id TouchID) {
	s.injectQueue = append(s.injectQueue, syntheticTouch{
		kind: syntheticUp, id: id,
	})
}

// InjectTap queues a tap at normalized coordinates, as if reported by the
// platform recognizer.
func (s *System) InjectTap(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticTouch{
		kind: syntheticTap, x: x, y: y,
	})
}

// InjectPressRelease queues a sample followed by a lift at the same spot.
// Consumes two frames.
func (s *System) InjectPressRelease(id TouchID, x, y float64) {
	s.InjectTouch(id, x, y)
	s.InjectTouchUp(id)
}

// drainInjected pops one queued event and feeds it through the regular
// event entry points, so injected input exercises the same paths as the
// platform's.
func (s *System) drainInjected() {
	if len(s.injectQueue) == 0 {
		return
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticSample:
		s.Touch(evt.id, evt.x, evt.y)
	case syntheticUp:
		s.TouchUp(evt.id)
	case syntheticTap:
		s.Tap(evt.x, evt.y)
	}
}
