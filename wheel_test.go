package vpad

import "testing"

func newTestWheel() wheelPad {
	return newWheelPad(Point{X: 0.82, Y: 0.82}, 0.13)
}

func TestWheelDirections(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want map[Input]bool
	}{
		{
			name: "straight down",
			p:    Point{0.82, 0.94},
			want: map[Input]bool{InputDown: true},
		},
		{
			name: "straight up",
			p:    Point{0.82, 0.70},
			want: map[Input]bool{InputUp: true},
		},
		{
			name: "straight left",
			p:    Point{0.70, 0.82},
			want: map[Input]bool{InputLeft: true},
		},
		{
			name: "straight right",
			p:    Point{0.94, 0.82},
			want: map[Input]bool{InputRight: true},
		},
		{
			name: "diagonal down-right",
			p:    Point{0.90, 0.90},
			want: map[Input]bool{InputDown: true, InputRight: true},
		},
		{
			name: "diagonal up-left",
			p:    Point{0.74, 0.74},
			want: map[Input]bool{InputUp: true, InputLeft: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWheel()
			var flags [InputCount]bool
			w.update(tt.p, &flags)

			for _, in := range []Input{InputLeft, InputRight, InputUp, InputDown} {
				if flags[in] != tt.want[in] {
					t.Errorf("flag %d = %v, want %v", in, flags[in], tt.want[in])
				}
			}
		})
	}
}

func TestWheelOutsideRadiusLeavesFlags(t *testing.T) {
	w := newTestWheel()
	var flags [InputCount]bool
	flags[InputDown] = true // pre-existing state from another source

	w.update(Point{0.5, 0.5}, &flags)

	if !flags[InputDown] {
		t.Error("out-of-range point must not clear existing flags")
	}
	if flags[InputLeft] || flags[InputRight] || flags[InputUp] {
		t.Error("out-of-range point must not set flags")
	}
	for i, pressed := range w.pressed {
		if pressed {
			t.Errorf("sector %d pressed by out-of-range point", i)
		}
	}
}

func TestWheelPressedSectors(t *testing.T) {
	w := newTestWheel()
	var flags [InputCount]bool

	w.update(Point{0.82, 0.90}, &flags) // straight down, sector 2

	count := 0
	for i, pressed := range w.pressed {
		if pressed {
			count++
			if i != 2 {
				t.Errorf("unexpected pressed sector %d", i)
			}
		}
	}
	if count != 1 {
		t.Errorf("pressed sectors = %d, want 1", count)
	}

	w.clearPressed()
	for i, pressed := range w.pressed {
		if pressed {
			t.Errorf("sector %d still pressed after clear", i)
		}
	}
}

func TestWheelRimStillDispatches(t *testing.T) {
	// A touch just inside the rim must land in a sector: containment
	// inside the wheel depends only on angle, so the chord of a triangle
	// built at the visual radius must not cut the corner off.
	w := newTestWheel()
	var flags [InputCount]bool

	w.update(Point{0.82, 0.9495}, &flags) // distance 0.1295 of radius 0.13
	if !flags[InputDown] {
		t.Error("touch near the rim should still press down")
	}
}

func TestWheelDraw(t *testing.T) {
	w := newTestWheel()
	cv := &fakeCanvas{w: 320, h: 240}

	w.draw(cv)
	if cv.lines != 16 {
		t.Errorf("draw emitted %d lines, want 16 (two per sector)", cv.lines)
	}
}
