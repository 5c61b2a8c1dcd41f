package shape

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	q := Point{1, 2}

	if got := p.Add(q); got != (Point{4, 6}) {
		t.Errorf("Add = %v, want {4 6}", got)
	}
	if got := p.Sub(q); got != (Point{2, 2}) {
		t.Errorf("Sub = %v, want {2 2}", got)
	}
	if got := p.Mul(2); got != (Point{6, 8}) {
		t.Errorf("Mul = %v, want {6 8}", got)
	}
	if got := p.Dot(q); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := p.Cross(q); got != 2 {
		t.Errorf("Cross = %v, want 2", got)
	}
}

func TestPointLength(t *testing.T) {
	p := Point{3, 4}

	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}

	n := p.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, want 1", n.Length())
	}

	// Zero vector stays zero
	if got := (Point{}).Normalized(); got != (Point{}) {
		t.Errorf("Normalized zero = %v, want {0 0}", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Point{0, 0}
	q := Point{10, 20}

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != (Point{5, 10}) {
		t.Errorf("Lerp(0.5) = %v, want {5 10}", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}

	if r.Width() != 10 || r.Height() != 5 {
		t.Errorf("Width/Height = %v/%v, want 10/5", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty = true for non-empty rect")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("IsEmpty = false for zero rect")
	}

	s := Rect{MinX: -2, MinY: 3, MaxX: 4, MaxY: 8}
	u := r.Union(s)
	want := Rect{MinX: -2, MinY: 0, MaxX: 10, MaxY: 8}
	if u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}
}

func TestSignedDistanceIsCloserThan(t *testing.T) {
	tests := []struct {
		name string
		a, b SignedDistance
		want bool
	}{
		{"smaller magnitude wins", NewSignedDistance(1, 0), NewSignedDistance(-2, 0), true},
		{"larger magnitude loses", NewSignedDistance(-3, 0), NewSignedDistance(2, 0), false},
		{"sign does not matter", NewSignedDistance(-1, 0), NewSignedDistance(2, 0), true},
		{"tie broken by dot", NewSignedDistance(1, 0.1), NewSignedDistance(-1, 0.5), true},
		{"tie lost by dot", NewSignedDistance(1, 0.5), NewSignedDistance(-1, 0.1), false},
		{"anything beats infinity", NewSignedDistance(1e9, 0), Infinite(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsCloserThan(tt.b); got != tt.want {
				t.Errorf("IsCloserThan = %v, want %v", got, tt.want)
			}
		})
	}
}
