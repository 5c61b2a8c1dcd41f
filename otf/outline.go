// Package otf obtains glyph outlines and metrics from raw font data.
//
// The package abstracts the font parsing backend behind the Parser and
// Font interfaces. Two backends are provided: the default one built on
// go-text/typesetting (with variable font support) and an alternative
// built on golang.org/x/image/font/sfnt. Both deliver outlines in font
// design units with the y axis growing up.
package otf

// Point is a 2D outline point in font design units.
type Point struct {
	X, Y float64
}

// SegmentOp is the type of path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at the target point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic Bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic Bezier curve.
	SegmentOpCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Segment is one path segment of a glyph outline.
type Segment struct {
	// Op is the segment operation type.
	Op SegmentOp

	// Args contains the control and target points for this segment.
	//   - MoveTo: Args[0] is the target point
	//   - LineTo: Args[0] is the target point
	//   - QuadTo: Args[0] is the control, Args[1] the target
	//   - CubeTo: Args[0], Args[1] are controls, Args[2] the target
	Args [3]Point
}

// PointCount returns how many of Args are meaningful for this segment.
func (s Segment) PointCount() int {
	switch s.Op {
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// Outline is the vector outline of a single glyph in design units,
// together with its horizontal advance.
//
// An Outline with no segments is a valid, empty glyph (for example a
// space character); it still carries a meaningful Advance.
type Outline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []Segment

	// Advance is the horizontal advance width in design units.
	Advance float64

	// GID is the glyph index this outline was extracted from.
	GID uint32
}

// IsEmpty returns true if the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}
