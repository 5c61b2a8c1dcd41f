package shape

import (
	"math"
)

// Contour represents a closed contour of edges.
// A glyph typically consists of one or more contours.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge

	// Winding is half the signed shoelace area of the contour.
	// Positive = counter-clockwise, negative = clockwise.
	Winding float64
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{
		Edges: make([]Edge, 0),
	}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}

	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// CalculateWinding calculates and stores the winding direction using
// the shoelace formula over edge endpoints. Control points are
// ignored; the orientation of the endpoint polygon is what matters.
func (c *Contour) CalculateWinding() {
	var area float64
	for i := range c.Edges {
		p0 := c.Edges[i].StartPoint()
		p1 := c.Edges[i].EndPoint()
		area += p0.Cross(p1)
	}
	c.Winding = area / 2
}

// IsClockwise returns true if the contour winds clockwise.
func (c *Contour) IsClockwise() bool {
	return c.Winding < 0
}

// Reverse reverses the traversal direction of the contour in place:
// the edge order flips and every edge is reversed.
func (c *Contour) Reverse() {
	for i, j := 0, len(c.Edges)-1; i < j; i, j = i+1, j-1 {
		c.Edges[i], c.Edges[j] = c.Edges[j].Reverse(), c.Edges[i].Reverse()
	}
	if len(c.Edges)%2 == 1 {
		mid := len(c.Edges) / 2
		c.Edges[mid] = c.Edges[mid].Reverse()
	}
	c.Winding = -c.Winding
}

// Shape represents a complete glyph shape consisting of contours.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []*Contour

	// Bounds is the overall bounding box.
	Bounds Rect
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{
		Contours: make([]*Contour, 0),
	}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// CalculateBounds computes and stores the overall bounding box.
func (s *Shape) CalculateBounds() {
	if len(s.Contours) == 0 {
		s.Bounds = Rect{}
		return
	}

	s.Bounds = s.Contours[0].Bounds()
	for i := 1; i < len(s.Contours); i++ {
		s.Bounds = s.Bounds.Union(s.Contours[i].Bounds())
	}
}

// Validate checks that every contour is properly closed: the end point
// of each edge coincides with the start point of the next.
func (s *Shape) Validate() bool {
	for _, contour := range s.Contours {
		if len(contour.Edges) == 0 {
			continue
		}

		for i := range contour.Edges {
			cur := contour.Edges[i].EndPoint()
			next := contour.Edges[(i+1)%len(contour.Edges)].StartPoint()

			if math.Abs(cur.X-next.X) > 1e-6 || math.Abs(cur.Y-next.Y) > 1e-6 {
				return false
			}
		}
	}
	return true
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// IsEmpty returns true if the shape has no edges.
func (s *Shape) IsEmpty() bool {
	return s.EdgeCount() == 0
}

// Normalize prepares the shape for distance field generation:
//
//   - contours with no edges are dropped,
//   - contours consisting of a single edge are split into thirds so
//     that edge coloring can assign three colors around them,
//   - the overall orientation is fixed so that outer contours wind
//     clockwise (interior on the right of the direction of travel,
//     the TrueType convention the distance sign relies on).
//
// Orientation is decided globally: if the total signed area over all
// contours is positive, every contour is reversed. Holes keep their
// relative orientation either way, so fills and holes stay correct.
func (s *Shape) Normalize() {
	contours := s.Contours[:0]
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		if len(c.Edges) == 1 {
			a, b, e := c.Edges[0].SplitInThirds()
			c.Edges = append(c.Edges[:0], a, b, e)
		}
		c.CalculateWinding()
		contours = append(contours, c)
	}
	s.Contours = contours

	var total float64
	for _, c := range s.Contours {
		total += c.Winding
	}
	if total > 0 {
		for _, c := range s.Contours {
			c.Reverse()
		}
	}

	s.CalculateBounds()
}
