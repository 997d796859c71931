package vpad

import "testing"

func TestTapQueriesGatedByTouchMode(t *testing.T) {
	s := newTestSystem() // touch-only
	s.Tap(0.5, 0.5)

	if s.WasTap() {
		t.Error("WasTap must be false in touch-only mode")
	}
	if s.WasTapIn(Rect{X: 0, Y: 0, W: 1, H: 1}) {
		t.Error("WasTapIn must be false in touch-only mode")
	}

	s.setTouchMode(TouchAndGesture)
	if !s.WasTap() {
		t.Error("buffered tap should be visible once gestures are live")
	}
}

func TestTapRegionQueries(t *testing.T) {
	s := newTestSystem()
	s.setTouchMode(GestureOnly)
	s.Tap(0.25, 0.25)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"containing region", Rect{X: 0.2, Y: 0.2, W: 0.1, H: 0.1}, true},
		{"whole screen", Rect{X: 0, Y: 0, W: 1, H: 1}, true},
		{"elsewhere", Rect{X: 0.5, Y: 0.5, W: 0.1, H: 0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.WasTapIn(tt.r); got != tt.want {
				t.Errorf("WasTapIn(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestTapPixelRegion(t *testing.T) {
	s := newTestSystem() // display 1000x1000
	s.setTouchMode(GestureOnly)
	s.Tap(0.25, 0.25)

	if !s.WasTapInPixels(200, 200, 100, 100) {
		t.Error("tap at (250,250) should land in the pixel region")
	}
	if s.WasTapInPixels(500, 500, 100, 100) {
		t.Error("tap should miss a distant pixel region")
	}

	s2 := New(Config{}) // no display size cached
	s2.setTouchMode(GestureOnly)
	s2.Tap(0.25, 0.25)
	if s2.WasTapInPixels(0, 0, 1000, 1000) {
		t.Error("pixel query must be false while resolution is unknown")
	}
}

func TestTapBufferFlushedPerFrame(t *testing.T) {
	s := newTestSystem()
	s.setTouchMode(GestureOnly)

	s.Tap(0.5, 0.5)
	if !s.WasTap() {
		t.Fatal("tap should be visible in its frame")
	}

	s.PreProcess()
	if s.WasTap() {
		t.Error("pre-process should flush the previous frame's taps")
	}
}

func TestMultipleTapsOneFrame(t *testing.T) {
	s := newTestSystem()
	s.setTouchMode(GestureOnly)

	s.Tap(0.1, 0.1)
	s.Tap(0.9, 0.9)

	if !s.WasTapIn(Rect{X: 0, Y: 0, W: 0.2, H: 0.2}) {
		t.Error("first tap should be queryable")
	}
	if !s.WasTapIn(Rect{X: 0.8, Y: 0.8, W: 0.2, H: 0.2}) {
		t.Error("second tap should be queryable")
	}
}
