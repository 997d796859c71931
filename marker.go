package vpad

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	markerSize    = 0.04
	pulseLow      = 1.0
	pulseHigh     = 1.25
	pulseDuration = 0.4

	// tickDelta assumes Ebitengine's default 60 ticks per second.
	tickDelta = float32(1.0 / 60.0)
)

// markerPulse breathes the finger markers between two scales so live
// contact points read as active rather than painted on.
type markerPulse struct {
	tween     *gween.Tween
	scale     float64
	expanding bool
}

func newMarkerPulse() markerPulse {
	return markerPulse{
		tween:     gween.New(pulseLow, pulseHigh, pulseDuration, ease.InOutQuad),
		scale:     pulseLow,
		expanding: true,
	}
}

// update advances the pulse by dt seconds, reversing at each end.
func (m *markerPulse) update(dt float32) {
	v, done := m.tween.Update(dt)
	m.scale = float64(v)
	if done {
		if m.expanding {
			m.tween = gween.New(pulseHigh, pulseLow, pulseDuration, ease.InOutQuad)
		} else {
			m.tween = gween.New(pulseLow, pulseHigh, pulseDuration, ease.InOutQuad)
		}
		m.expanding = !m.expanding
	}
}

// drawMarkers paints a small filled square centered on every tracked
// finger, scaled by the current pulse.
func (s *System) drawMarkers(cv Canvas) {
	sw, sh := cv.Size()
	size := markerSize * s.pulse.scale

	for _, p := range s.tracker.fingers {
		r := RectCentered(p, size, size)
		x0, y0, x1, y1 := r.ToPixels(sw, sh)
		cv.FillRect(x0, y0, x1, y1, ColorMarker)
	}
}
