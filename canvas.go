package vpad

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the rendering surface the pads draw onto. Coordinates are
// pixel-space corners; implementations own stroke width and antialiasing.
type Canvas interface {
	Size() (w, h int)
	FillRect(x0, y0, x1, y1 float32, c color.Color)
	StrokeRect(x0, y0, x1, y1 float32, c color.Color)
	Line(x0, y0, x1, y1 float32, c color.Color)
}

// ImageCanvas renders onto an Ebitengine image, typically the screen
// passed to the game's Draw.
type ImageCanvas struct {
	Dst *ebiten.Image
}

func (c ImageCanvas) Size() (int, int) {
	b := c.Dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c ImageCanvas) FillRect(x0, y0, x1, y1 float32, clr color.Color) {
	vector.DrawFilledRect(c.Dst, x0, y0, x1-x0, y1-y0, clr, false)
}

func (c ImageCanvas) StrokeRect(x0, y0, x1, y1 float32, clr color.Color) {
	vector.StrokeRect(c.Dst, x0, y0, x1-x0, y1-y0, 1, clr, false)
}

func (c ImageCanvas) Line(x0, y0, x1, y1 float32, clr color.Color) {
	vector.StrokeLine(c.Dst, x0, y0, x1, y1, 1, clr, false)
}
