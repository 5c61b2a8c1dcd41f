package msdf

// Bounds is a glyph's rendering rectangle in output pixel units,
// relative to the glyph origin on the baseline. It covers the
// unpadded glyph outline; the bitmap extends half the pixel range
// beyond it on every side.
type Bounds struct {
	Left, Bottom, Right, Top float32
}

// Result holds a generated distance field bitmap together with the
// metrics needed to place the glyph.
type Result struct {
	// Width and Height of the bitmap in pixels.
	Width, Height int

	// Channels per pixel: 3 for MSDF, 4 for MTSDF.
	Channels int

	// Advance is the horizontal advance of the glyph in output pixels.
	Advance float32

	// PlaneBounds is the unpadded glyph rectangle in output pixels,
	// relative to the glyph origin.
	PlaneBounds Bounds

	// Pixels holds Width*Height*Channels float samples in row-major
	// order with the bottom row first. A value of 0.5 is on the glyph
	// edge, greater is inside, smaller is outside. Values are not
	// clamped to [0, 1].
	Pixels []float32
}

// At returns the sample for channel ch at pixel (x, y), with y = 0
// being the bottom row. No bounds checking is performed.
func (r *Result) At(x, y, ch int) float32 {
	return r.Pixels[(y*r.Width+x)*r.Channels+ch]
}

// Clone returns a deep copy of the result. The pixel slice of the
// copy does not alias the original.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Pixels = make([]float32, len(r.Pixels))
	copy(c.Pixels, r.Pixels)
	return &c
}
