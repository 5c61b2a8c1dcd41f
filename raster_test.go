package msdf

import (
	"math"
	"testing"

	"github.com/j-schauer/libMSDF/shape"
)

// buildSquare returns a colored clockwise 10x10 square ready for
// rendering.
func buildSquare() *shape.Shape {
	c := shape.NewContour()
	c.AddEdge(shape.NewLinearEdge(shape.Point{X: 0, Y: 0}, shape.Point{X: 0, Y: 10}))
	c.AddEdge(shape.NewLinearEdge(shape.Point{X: 0, Y: 10}, shape.Point{X: 10, Y: 10}))
	c.AddEdge(shape.NewLinearEdge(shape.Point{X: 10, Y: 10}, shape.Point{X: 10, Y: 0}))
	c.AddEdge(shape.NewLinearEdge(shape.Point{X: 10, Y: 0}, shape.Point{X: 0, Y: 0}))

	s := shape.NewShape()
	s.AddContour(c)
	s.Normalize()
	shape.ColorEdges(s, 3.0, 0)
	return s
}

func TestRenderFieldSquare(t *testing.T) {
	s := buildSquare()
	fr := newFrame(s.Bounds, 1, 4)
	if fr.width != 14 || fr.height != 14 {
		t.Fatalf("frame = %dx%d, want 14x14", fr.width, fr.height)
	}

	out := make([]float32, fr.width*fr.height*3)
	renderField(s, fr, 4, 3, out)

	res := &Result{Width: fr.width, Height: fr.height, Channels: 3, Pixels: out}

	// Pixel (7,7) center maps to design (5.5, 5.5): 4.5 units inside.
	// Each channel is at least 4.5/4 + 0.5 above the iso-line, well
	// past 1.0 since samples are not clamped.
	for ch := 0; ch < 3; ch++ {
		if got := res.At(7, 7, ch); got < 1.5 {
			t.Errorf("deep inside channel %d = %v, want >= 1.5 (unclamped)", ch, got)
		}
	}

	// Pixel (0,0) center maps to design (-1.5, -1.5): outside, so the
	// median must sit below the iso-line.
	m := median3(res.At(0, 0, 0), res.At(0, 0, 1), res.At(0, 0, 2))
	if m >= 0.5 {
		t.Errorf("outside corner median = %v, want < 0.5", m)
	}

	// The field is symmetric across the square's diagonal.
	m1 := median3(res.At(3, 9, 0), res.At(3, 9, 1), res.At(3, 9, 2))
	m2 := median3(res.At(9, 3, 0), res.At(9, 3, 1), res.At(9, 3, 2))
	if math.Abs(float64(m1-m2)) > 1e-6 {
		t.Errorf("diagonal symmetry broken: %v vs %v", m1, m2)
	}

	for i, v := range out {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("pixel %d = %v, want finite", i, v)
		}
	}
}

func TestErrorCorrect(t *testing.T) {
	// A flat 2x2 field with one channel knocked far off at one pixel,
	// the way overlapping same-colored edges can leave it.
	out := []float32{
		0.6, 0.6, 0.6,
		0.6, 0.6, 0.6,
		2.4, 0.6, 0.6,
		0.6, 0.6, 0.6,
	}

	errorCorrect(out, 2, 2, 3, 4)

	threshold := float32(math.Sqrt2 / 4)
	if got := out[6]; got != 0.6+threshold {
		t.Errorf("spiked channel = %v, want clamped to %v", got, 0.6+threshold)
	}
	if m := median3(out[6], out[7], out[8]); m != 0.6 {
		t.Errorf("median after correction = %v, want 0.6", m)
	}
	for i, v := range out[:6] {
		if v != 0.6 {
			t.Errorf("clean sample %d changed to %v", i, v)
		}
	}
}

func TestErrorCorrectKeepsAlpha(t *testing.T) {
	out := []float32{2.4, 0.6, 0.6, -1.25}

	errorCorrect(out, 1, 1, 4, 4)

	if out[3] != -1.25 {
		t.Errorf("alpha = %v, want -1.25 untouched", out[3])
	}
	if out[0] >= 2.4 {
		t.Errorf("spiked channel = %v, want corrected", out[0])
	}
}

func TestRenderFieldMTSDFAlpha(t *testing.T) {
	s := buildSquare()
	fr := newFrame(s.Bounds, 1, 4)

	out := make([]float32, fr.width*fr.height*4)
	renderField(s, fr, 4, 4, out)

	res := &Result{Width: fr.width, Height: fr.height, Channels: 4, Pixels: out}

	// The alpha channel carries the true distance: positive inside,
	// negative outside, crossing 0.5 at the outline.
	if got := res.At(7, 7, 3); got <= 0.5 {
		t.Errorf("alpha inside = %v, want > 0.5", got)
	}
	if got := res.At(0, 0, 3); got >= 0.5 {
		t.Errorf("alpha outside = %v, want < 0.5", got)
	}

	// Alpha at (0,0) is the distance to the nearest corner, which is
	// farther than the perpendicular pseudo-distances of the color
	// channels: sqrt(2)*1.5 design units below the iso-line.
	wantAlpha := 0.5 - math.Sqrt2*1.5/4
	if got := float64(res.At(0, 0, 3)); math.Abs(got-wantAlpha) > 1e-6 {
		t.Errorf("alpha at corner = %v, want %v", got, wantAlpha)
	}
}
