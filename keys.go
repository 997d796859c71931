package vpad

// inactive marks a logical input with no on-screen zone.
var inactive = Rect{X: -1, Y: -1, W: -1, H: -1}

// defaultZones is the stock overlay layout: one normalized hit rectangle
// per logical input. Directional entries are present but inactive — the
// wheel owns movement. Function keys past F3 and the debug inputs have no
// touch zone at all.
func defaultZones() [InputCount]Rect {
	zones := [InputCount]Rect{}
	for i := range zones {
		zones[i] = inactive
	}

	zones[InputJump] = Rect{X: 0.00, Y: 0.8, W: 0.14, H: 0.2}
	zones[InputFire] = Rect{X: 0.15, Y: 0.8, W: 0.14, H: 0.2}

	zones[InputPrevWeapon] = Rect{X: 0.00, Y: 0.55, W: 0.1, H: 0.1}
	zones[InputNextWeapon] = Rect{X: 0.15, Y: 0.55, W: 0.1, H: 0.1}

	zones[InputInventory] = Rect{X: 0.00, Y: 0.0, W: 0.1, H: 0.1}
	zones[InputMap] = Rect{X: 0.15, Y: 0.0, W: 0.1, H: 0.1}

	zones[InputEscape] = Rect{X: 0.40, Y: 0.0, W: 0.1, H: 0.1}
	zones[InputF1] = Rect{X: 0.55, Y: 0.0, W: 0.1, H: 0.1}
	zones[InputF2] = Rect{X: 0.70, Y: 0.0, W: 0.1, H: 0.1}
	zones[InputF3] = Rect{X: 0.85, Y: 0.0, W: 0.1, H: 0.1}

	return zones
}

// buttonGrid is the fixed overlay of rectangular hit zones, one per
// logical input, plus the corner wheel it hosts.
type buttonGrid struct {
	zones [InputCount]Rect
	wheel wheelPad
}

func newButtonGrid() buttonGrid {
	return buttonGrid{
		zones: defaultZones(),
		wheel: newWheelPad(defaultWheelAnchor, defaultWheelRadius),
	}
}

// SetZone replaces the hit rectangle for one logical input. Pass an
// inactive rect (negative X) to remove the zone.
func (g *buttonGrid) SetZone(in Input, r Rect) {
	g.zones[in] = r
}

// update sets the flag for every active zone containing p, then lets the
// wheel claim the directional inputs.
func (g *buttonGrid) update(p Point, flags *[InputCount]bool) {
	for i := range g.zones {
		if !g.zones[i].Active() {
			continue
		}
		if g.zones[i].Contains(p) {
			flags[Input(i)] = true
		}
	}

	g.wheel.update(p, flags)
}

// draw paints every active zone outline in its pressed or released color,
// then the wheel.
func (g *buttonGrid) draw(cv Canvas, flags *[InputCount]bool) {
	sw, sh := cv.Size()
	for i := range g.zones {
		if !g.zones[i].Active() {
			continue
		}

		c := ColorReleased
		if flags[Input(i)] {
			c = ColorPressed
		}
		x0, y0, x1, y1 := g.zones[i].ToPixels(sw, sh)
		cv.StrokeRect(x0, y0, x1, y1, c)
	}

	g.wheel.draw(cv)
}
