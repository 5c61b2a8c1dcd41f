package shape

import (
	"github.com/j-schauer/libMSDF/otf"
)

// FromOutline converts a glyph outline into a Shape. Each MoveTo
// starts a new contour; degenerate zero-length segments, including
// curves whose points all coincide, are skipped. The resulting shape
// is not yet normalized or colored.
func FromOutline(outline *otf.Outline) *Shape {
	if outline == nil || len(outline.Segments) == 0 {
		return NewShape()
	}

	shape := NewShape()
	var currentContour *Contour
	var currentPos Point

	flush := func() {
		if currentContour != nil && len(currentContour.Edges) > 0 {
			currentContour.CalculateWinding()
			shape.AddContour(currentContour)
		}
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case otf.SegmentOpMoveTo:
			flush()
			currentContour = NewContour()
			currentPos = Point{X: seg.Args[0].X, Y: seg.Args[0].Y}

		case otf.SegmentOpLineTo:
			if currentContour == nil {
				currentContour = NewContour()
			}
			endPoint := Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			// Skip degenerate lines
			if endPoint.Sub(currentPos).LengthSquared() > 1e-12 {
				currentContour.AddEdge(NewLinearEdge(currentPos, endPoint))
			}
			currentPos = endPoint

		case otf.SegmentOpQuadTo:
			if currentContour == nil {
				currentContour = NewContour()
			}
			control := Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			endPoint := Point{X: seg.Args[1].X, Y: seg.Args[1].Y}
			// Skip curves collapsed to a point
			if control.Sub(currentPos).LengthSquared() > 1e-12 ||
				endPoint.Sub(currentPos).LengthSquared() > 1e-12 {
				currentContour.AddEdge(NewQuadraticEdge(currentPos, control, endPoint))
			}
			currentPos = endPoint

		case otf.SegmentOpCubeTo:
			if currentContour == nil {
				currentContour = NewContour()
			}
			control1 := Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			control2 := Point{X: seg.Args[1].X, Y: seg.Args[1].Y}
			endPoint := Point{X: seg.Args[2].X, Y: seg.Args[2].Y}
			if control1.Sub(currentPos).LengthSquared() > 1e-12 ||
				control2.Sub(currentPos).LengthSquared() > 1e-12 ||
				endPoint.Sub(currentPos).LengthSquared() > 1e-12 {
				currentContour.AddEdge(NewCubicEdge(currentPos, control1, control2, endPoint))
			}
			currentPos = endPoint
		}
	}

	flush()
	shape.CalculateBounds()
	return shape
}
