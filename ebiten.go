package vpad

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchSource feeds live Ebitengine touches into a System. Call Feed once
// per Update with the game's logical screen size; it reuses its buffers
// across frames.
type TouchSource struct {
	ids      []ebiten.TouchID
	released []ebiten.TouchID
}

// Feed injects the current touch positions and any lifts that happened
// this tick. screenW and screenH are the logical dimensions Ebitengine
// reports touch positions in.
func (ts *TouchSource) Feed(s *System, screenW, screenH int) {
	s.SetDisplaySize(screenW, screenH)

	ts.ids = ebiten.AppendTouchIDs(ts.ids[:0])
	for _, id := range ts.ids {
		x, y := ebiten.TouchPosition(id)
		s.Touch(TouchID(id), float64(x), float64(y))
	}

	ts.released = inpututil.AppendJustReleasedTouchIDs(ts.released[:0])
	for _, id := range ts.released {
		s.TouchUp(TouchID(id))
	}
}

// Tap classification thresholds, in ticks and logical pixels.
const (
	tapMaxTicks  = 20
	tapMaxTravel = 24.0
)

// tapTrack follows one candidate touch from press to release.
type tapTrack struct {
	startX, startY int
	lastX, lastY   int
	ticks          int
}

// TapRecognizer is the built-in platform gesture bridge: it watches
// Ebitengine touches and reports short, mostly-stationary contacts as taps
// to its sink. The System toggles it through the GestureRecognizer
// interface; while disabled it tracks nothing.
type TapRecognizer struct {
	enabled bool
	sink    func(x, y float64)

	touches  map[ebiten.TouchID]tapTrack
	ids      []ebiten.TouchID
	released []ebiten.TouchID
}

// NewTapRecognizer builds a disabled recognizer reporting to sink with
// normalized coordinates. Pass System.Tap as the sink and register the
// recognizer with System.SetRecognizer.
func NewTapRecognizer(sink func(x, y float64)) *TapRecognizer {
	return &TapRecognizer{
		sink:    sink,
		touches: make(map[ebiten.TouchID]tapTrack),
	}
}

// SetEnabled implements GestureRecognizer. Disabling drops all candidate
// touches so a contact straddling the toggle cannot fire later.
func (r *TapRecognizer) SetEnabled(enabled bool) {
	r.enabled = enabled
	if !enabled {
		clear(r.touches)
	}
}

// Update advances the recognizer by one tick. screenW and screenH are the
// logical dimensions used to normalize reported tap positions.
func (r *TapRecognizer) Update(screenW, screenH int) {
	if !r.enabled || screenW <= 0 || screenH <= 0 {
		return
	}

	r.ids = ebiten.AppendTouchIDs(r.ids[:0])
	for _, id := range r.ids {
		x, y := ebiten.TouchPosition(id)
		tr, ok := r.touches[id]
		if !ok {
			tr = tapTrack{startX: x, startY: y}
		}
		tr.lastX, tr.lastY = x, y
		tr.ticks++
		r.touches[id] = tr
	}

	r.released = inpututil.AppendJustReleasedTouchIDs(r.released[:0])
	for _, id := range r.released {
		tr, ok := r.touches[id]
		if !ok {
			continue
		}
		delete(r.touches, id)

		if tr.ticks > tapMaxTicks {
			continue
		}
		dx := float64(tr.lastX - tr.startX)
		dy := float64(tr.lastY - tr.startY)
		if dx*dx+dy*dy > tapMaxTravel*tapMaxTravel {
			continue
		}
		if r.sink != nil {
			r.sink(float64(tr.lastX)/float64(screenW), float64(tr.lastY)/float64(screenH))
		}
	}
}
