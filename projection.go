package msdf

import (
	"math"

	"github.com/j-schauer/libMSDF/shape"
)

// frame describes the mapping between glyph design space and the
// output bitmap. The bitmap is sized from the glyph bounds scaled to
// pixels plus half the distance range of padding on every side, so
// the encoded field reaches zero exactly at the bitmap border.
type frame struct {
	// width and height of the bitmap in pixels.
	width, height int

	// scale from design units to pixels (fontSize / unitsPerEm).
	scale float64

	// tx and ty translate design coordinates before scaling:
	// px = (x + tx) * scale.
	tx, ty float64

	// left, bottom, right, top of the unpadded glyph bounds in
	// pixel units relative to the glyph origin.
	left, bottom, right, top float64
}

// newFrame computes the bitmap frame for a glyph with the given bounds.
// bounds is in design units; scale converts design units to pixels;
// pixelRange is the total encoded distance range in pixels.
//
// An empty bounds (zero area) falls back to the canonical unit box in
// design units, so that blank glyphs such as the space still produce a
// valid bitmap.
func newFrame(bounds shape.Rect, scale, pixelRange float64) frame {
	minX, minY := bounds.MinX, bounds.MinY
	maxX, maxY := bounds.MaxX, bounds.MaxY
	if minX >= maxX || minY >= maxY {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	l := minX * scale
	b := minY * scale
	r := maxX * scale
	t := maxY * scale

	pad := pixelRange / 2
	fl := l - pad
	fb := b - pad
	fr := r + pad
	ft := t + pad

	return frame{
		width:  int(math.Ceil(fr - fl)),
		height: int(math.Ceil(ft - fb)),
		scale:  scale,
		tx:     -fl / scale,
		ty:     -fb / scale,
		left:   l,
		bottom: b,
		right:  r,
		top:    t,
	}
}

// project converts a design-space point to pixel space.
func (f frame) project(p shape.Point) shape.Point {
	return shape.Point{
		X: (p.X + f.tx) * f.scale,
		Y: (p.Y + f.ty) * f.scale,
	}
}

// unproject converts a pixel-space point to design space.
func (f frame) unproject(p shape.Point) shape.Point {
	return shape.Point{
		X: p.X/f.scale - f.tx,
		Y: p.Y/f.scale - f.ty,
	}
}
