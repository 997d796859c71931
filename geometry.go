package vpad

import "math"

// Point is a position in normalized screen space: both coordinates run
// from 0 to 1 regardless of the display resolution.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rect is an axis-aligned rectangle in normalized screen space. A negative
// X marks the rectangle inactive: hit-testing and drawing skip it.
type Rect struct {
	X, Y, W, H float64
}

// RectCentered builds a rect of the given size centered on p.
func RectCentered(p Point, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// RectFromPixels converts a pixel-space rectangle to normalized space
// against the given screen dimensions.
func RectFromPixels(x, y, w, h, screenW, screenH int) Rect {
	return Rect{
		X: float64(x) / float64(screenW),
		Y: float64(y) / float64(screenH),
		W: float64(w) / float64(screenW),
		H: float64(h) / float64(screenH),
	}
}

// Active reports whether the rect participates in hit-testing and drawing.
func (r Rect) Active() bool {
	return r.X >= 0
}

// Contains reports whether p lies inside the rectangle. Points on the edge
// are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ToPixels converts the rect back to pixel-space corners for drawing.
func (r Rect) ToPixels(screenW, screenH int) (x0, y0, x1, y1 float32) {
	x0 = float32(r.X * float64(screenW))
	y0 = float32(r.Y * float64(screenH))
	x1 = float32((r.X + r.W) * float64(screenW))
	y1 = float32((r.Y + r.H) * float64(screenH))
	return x0, y0, x1, y1
}

// Sector is one wedge of a circle: the triangle spanned by an anchor point
// and two rim points at boundary angles given in multiples of π/8. Eight
// sectors built at successive 45° steps tile the full disk.
type Sector struct {
	A, B, C Point
}

// NewSector builds the wedge at anchor with rim points at angles from·π/8
// and to·π/8, radius away from the anchor.
func NewSector(anchor Point, radius float64, from, to int) Sector {
	return Sector{
		A: anchor,
		B: rimPoint(anchor, radius, from),
		C: rimPoint(anchor, radius, to),
	}
}

func rimPoint(anchor Point, radius float64, eighth int) Point {
	t := float64(eighth) * math.Pi / 8
	return Point{X: math.Cos(t), Y: math.Sin(t)}.Scale(radius).Add(anchor)
}

// cross is the z component of (p1-p3) × (p2-p3). Its sign says which side
// of the directed edge p3→p2 the point p1 falls on.
func cross(p1, p2, p3 Point) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// Contains reports whether p lies inside the wedge triangle, using the
// same-side-of-all-edges sign test. Strict inequalities assign a point on
// a shared boundary edge to exactly one of the two adjacent sectors, so
// the eight sectors partition the disk with no double membership.
func (s Sector) Contains(p Point) bool {
	b1 := cross(p, s.A, s.B) < 0
	b2 := cross(p, s.B, s.C) < 0
	b3 := cross(p, s.C, s.A) < 0
	return b1 == b2 && b2 == b3
}
