// Package shape models glyph outlines as colored edge contours and
// provides the geometry used by distance field generation: point and
// curve math, signed distances, winding, and edge coloring.
package shape

import (
	"math"
)

// Point represents a 2D point with float64 precision.
// Coordinates are in font design units.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p * scalar.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length (avoids sqrt).
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalized returns a unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point) Normalized() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{p.X / length, p.Y / length}
}

// Lerp returns linear interpolation between p and q: p + t*(q-p).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		p.X + t*(q.X-p.X),
		p.Y + t*(q.Y-p.Y),
	}
}

// Rect represents a 2D rectangle in design units.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// SignedDistance represents a signed distance with a tie-break value.
// Positive = inside the filled region, negative = outside.
type SignedDistance struct {
	// Distance is the signed Euclidean distance.
	Distance float64

	// Dot is the absolute tangent/offset dot product at the closest
	// point, used to resolve ties between edges sharing a vertex:
	// at equal absolute distance, the edge more orthogonal to the
	// offset vector (smaller Dot) wins.
	Dot float64
}

// NewSignedDistance creates a new signed distance.
func NewSignedDistance(distance, dot float64) SignedDistance {
	return SignedDistance{Distance: distance, Dot: dot}
}

// Infinite returns a signed distance representing infinity.
func Infinite() SignedDistance {
	return SignedDistance{Distance: math.MaxFloat64, Dot: 0}
}

// IsCloserThan returns true if d is closer to the edge than other.
func (d SignedDistance) IsCloserThan(other SignedDistance) bool {
	absD := math.Abs(d.Distance)
	absO := math.Abs(other.Distance)
	if absD < absO {
		return true
	}
	if absD > absO {
		return false
	}
	// Equal absolute distance - use dot product to break ties
	return d.Dot < other.Dot
}
