package shape

import (
	"testing"
)

// ccwSquare builds a counter-clockwise unit square scaled by s.
func ccwSquare(s float64) *Contour {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Point{0, 0}, Point{s, 0}))
	c.AddEdge(NewLinearEdge(Point{s, 0}, Point{s, s}))
	c.AddEdge(NewLinearEdge(Point{s, s}, Point{0, s}))
	c.AddEdge(NewLinearEdge(Point{0, s}, Point{0, 0}))
	c.CalculateWinding()
	return c
}

// cwSquare builds a clockwise square scaled by s.
func cwSquare(s float64) *Contour {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Point{0, 0}, Point{0, s}))
	c.AddEdge(NewLinearEdge(Point{0, s}, Point{s, s}))
	c.AddEdge(NewLinearEdge(Point{s, s}, Point{s, 0}))
	c.AddEdge(NewLinearEdge(Point{s, 0}, Point{0, 0}))
	c.CalculateWinding()
	return c
}

func TestContourWinding(t *testing.T) {
	ccw := ccwSquare(10)
	if ccw.Winding <= 0 {
		t.Errorf("CCW winding = %v, want positive", ccw.Winding)
	}
	if ccw.IsClockwise() {
		t.Error("IsClockwise = true for CCW contour")
	}

	cw := cwSquare(10)
	if cw.Winding >= 0 {
		t.Errorf("CW winding = %v, want negative", cw.Winding)
	}
	if !cw.IsClockwise() {
		t.Error("IsClockwise = false for CW contour")
	}
}

func TestContourReverse(t *testing.T) {
	c := ccwSquare(10)
	origWinding := c.Winding

	c.Reverse()

	if c.Winding != -origWinding {
		t.Errorf("winding after reverse = %v, want %v", c.Winding, -origWinding)
	}

	// Still a closed loop.
	s := NewShape()
	s.AddContour(c)
	if !s.Validate() {
		t.Error("reversed contour no longer closed")
	}
}

func TestContourBounds(t *testing.T) {
	c := ccwSquare(10)
	b := c.Bounds()
	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if b != want {
		t.Errorf("Bounds = %v, want %v", b, want)
	}
}

func TestShapeValidate(t *testing.T) {
	s := NewShape()
	s.AddContour(ccwSquare(10))
	if !s.Validate() {
		t.Error("Validate = false for closed square")
	}

	// Open contour: missing the closing edge.
	open := NewContour()
	open.AddEdge(NewLinearEdge(Point{0, 0}, Point{10, 0}))
	open.AddEdge(NewLinearEdge(Point{10, 0}, Point{10, 10}))
	bad := NewShape()
	bad.AddContour(open)
	if bad.Validate() {
		t.Error("Validate = true for open contour")
	}
}

func TestShapeEdgeCount(t *testing.T) {
	s := NewShape()
	s.AddContour(ccwSquare(10))
	s.AddContour(cwSquare(4))

	if got := s.EdgeCount(); got != 8 {
		t.Errorf("EdgeCount = %d, want 8", got)
	}
	if s.IsEmpty() {
		t.Error("IsEmpty = true for shape with edges")
	}
	if !NewShape().IsEmpty() {
		t.Error("IsEmpty = false for empty shape")
	}
}

func TestNormalizeOrientation(t *testing.T) {
	// A CCW outer contour must be flipped to CW so the interior lies
	// on the right of the direction of travel.
	s := NewShape()
	s.AddContour(ccwSquare(10))
	s.Normalize()

	if len(s.Contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(s.Contours))
	}
	if !s.Contours[0].IsClockwise() {
		t.Error("outer contour not clockwise after Normalize")
	}

	// An already CW contour is left alone.
	s2 := NewShape()
	s2.AddContour(cwSquare(10))
	s2.Normalize()
	if !s2.Contours[0].IsClockwise() {
		t.Error("CW contour flipped by Normalize")
	}
}

func TestNormalizeHole(t *testing.T) {
	// Outer CCW square with a CW hole; after normalization the outer
	// must be CW and the hole CCW, preserving relative orientation.
	s := NewShape()
	s.AddContour(ccwSquare(10))

	hole := NewContour()
	hole.AddEdge(NewLinearEdge(Point{3, 3}, Point{3, 7}))
	hole.AddEdge(NewLinearEdge(Point{3, 7}, Point{7, 7}))
	hole.AddEdge(NewLinearEdge(Point{7, 7}, Point{7, 3}))
	hole.AddEdge(NewLinearEdge(Point{7, 3}, Point{3, 3}))
	hole.CalculateWinding()
	s.AddContour(hole)

	s.Normalize()

	if !s.Contours[0].IsClockwise() {
		t.Error("outer contour not clockwise after Normalize")
	}
	if s.Contours[1].IsClockwise() {
		t.Error("hole contour not counter-clockwise after Normalize")
	}
}

func TestNormalizeDropsEmptyContours(t *testing.T) {
	s := NewShape()
	s.AddContour(NewContour())
	s.AddContour(ccwSquare(10))
	s.Normalize()

	if len(s.Contours) != 1 {
		t.Errorf("contours = %d, want 1", len(s.Contours))
	}
}

func TestNormalizeSplitsSingleEdge(t *testing.T) {
	// A closed single-edge contour (a cubic loop) must be split so
	// edge coloring has three edges to work with.
	c := NewContour()
	c.AddEdge(NewCubicEdge(Point{0, 0}, Point{10, 10}, Point{-10, 10}, Point{0, 0}))

	s := NewShape()
	s.AddContour(c)
	s.Normalize()

	if len(s.Contours) != 1 {
		t.Fatalf("contours = %d, want 1", len(s.Contours))
	}
	if got := len(s.Contours[0].Edges); got != 3 {
		t.Errorf("edges after split = %d, want 3", got)
	}
	if !s.Validate() {
		t.Error("split contour no longer closed")
	}
}

func TestNormalizeBounds(t *testing.T) {
	s := NewShape()
	s.AddContour(ccwSquare(10))
	s.Normalize()

	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if s.Bounds != want {
		t.Errorf("Bounds = %v, want %v", s.Bounds, want)
	}
}
