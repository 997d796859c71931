package vpad

// Default wheel placement: anchored near the lower-right corner.
var (
	defaultWheelAnchor = Point{X: 0.82, Y: 0.82}
)

const defaultWheelRadius = 0.13

// wheelPad is the 8-sector circular directional zone. A touch inside the
// wheel drives the four directional inputs; each direction is the OR of
// the three sectors covering its 135° arc, so a diagonal touch presses
// two directions at once.
type wheelPad struct {
	anchor  Point
	radius  float64
	sectors [8]Sector // hit triangles, rim points past the gate radius
	edges   [8]Sector // rim points at the visual radius, for drawing
	pressed [8]bool
}

// Hit triangles extend past the gate radius so that containment inside
// the wheel depends only on angle: a finger at the rim must still land in
// exactly one sector, and the chord of a triangle built at the visual
// radius would cut that corner off.
const wheelOverscan = 1.5

// Sector i spans boundary angles (2i-1)·π/8 to (2i+1)·π/8, walking the
// full circle in 45° steps starting from the rightward wedge.
var sectorBounds = [8][2]int{
	{-1, 1}, {1, 3}, {3, 5}, {5, 7}, {7, -7}, {-7, -5}, {-5, -3}, {-3, -1},
}

// Directional groups: three adjacent sectors each. Screen Y grows
// downward, so the "down" arc is the positive-angle half.
var wheelGroups = [4]struct {
	input   Input
	sectors [3]int
}{
	{InputLeft, [3]int{3, 4, 5}},
	{InputRight, [3]int{7, 0, 1}},
	{InputUp, [3]int{5, 6, 7}},
	{InputDown, [3]int{1, 2, 3}},
}

func newWheelPad(anchor Point, radius float64) wheelPad {
	w := wheelPad{anchor: anchor, radius: radius}
	for i, b := range sectorBounds {
		w.sectors[i] = NewSector(anchor, radius*wheelOverscan, b[0], b[1])
		w.edges[i] = NewSector(anchor, radius, b[0], b[1])
	}
	return w
}

// update derives directional flags and per-sector pressed state from a
// touch at p. A point outside the bounding radius leaves everything
// unchanged — only a fresh in-range point moves sector state this tick.
func (w *wheelPad) update(p Point, flags *[InputCount]bool) {
	vec := p.Sub(w.anchor)
	if vec.X*vec.X+vec.Y*vec.Y > w.radius*w.radius {
		return
	}

	for _, g := range wheelGroups {
		hit := false
		for _, si := range g.sectors {
			if w.sectors[si].Contains(p) {
				hit = true
				break
			}
		}
		if hit {
			flags[g.input] = true
		}
	}

	for i := range w.sectors {
		if w.sectors[i].Contains(p) {
			w.pressed[i] = true
		}
	}
}

// clearPressed zeroes the per-sector pressed flags. Runs once per tick
// alongside the global flag clear, before any dispatch.
func (w *wheelPad) clearPressed() {
	for i := range w.pressed {
		w.pressed[i] = false
	}
}

// draw renders each sector's two anchor-to-rim edges, red while pressed.
func (w *wheelPad) draw(cv Canvas) {
	sw, sh := cv.Size()
	ax := float32(w.anchor.X * float64(sw))
	ay := float32(w.anchor.Y * float64(sh))

	for i := range w.edges {
		s := &w.edges[i]
		c := ColorReleased
		if w.pressed[i] {
			c = ColorPressed
		}

		bx := float32(s.B.X * float64(sw))
		by := float32(s.B.Y * float64(sh))
		cx := float32(s.C.X * float64(sw))
		cy := float32(s.C.Y * float64(sh))

		cv.Line(ax, ay, bx, by, c)
		cv.Line(bx, by, cx, cy, c)
	}
}
