package shape

import (
	"math"
)

// isCorner reports whether the junction between two normalized edge
// directions is a corner. A junction is a corner when the directions
// turn back on each other or when the turn angle exceeds the
// threshold encoded in crossThreshold (the sine of the angle).
func isCorner(aDir, bDir Point, crossThreshold float64) bool {
	return aDir.Dot(bDir) <= 0 || math.Abs(aDir.Cross(bDir)) > crossThreshold
}

// switchColor advances color to the next usable channel combination.
// banned restricts the choice so that consecutive splines never share
// all channels. The seed consumes pseudo-random decisions as it goes,
// making the full assignment deterministic for a given starting seed.
func switchColor(color *EdgeColor, seed *uint64, banned EdgeColor) {
	combined := *color & banned
	if combined == ColorRed || combined == ColorGreen || combined == ColorBlue {
		*color = combined ^ ColorWhite
		return
	}
	if *color == ColorBlack || *color == ColorWhite {
		start := [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}
		*color = start[*seed%3]
		*seed /= 3
		return
	}
	shifted := *color << (1 + (*seed & 1))
	*color = (shifted | shifted>>3) & ColorWhite
	*seed >>= 1
}

// ColorEdges assigns channel colors to every edge of the shape so
// that corners are preserved by the median reconstruction: the two
// edges meeting at a corner share exactly one channel.
//
// angleThreshold is the maximum angle in radians between edge
// directions still considered smooth; junctions turning more sharply
// become corners. seed drives the deterministic color rotation.
func ColorEdges(s *Shape, angleThreshold float64, seed uint64) {
	crossThreshold := math.Sin(angleThreshold)

	for _, contour := range s.Contours {
		colorContour(contour, crossThreshold, &seed)
	}
}

// colorContour colors a single contour.
func colorContour(contour *Contour, crossThreshold float64, seed *uint64) {
	m := len(contour.Edges)
	if m == 0 {
		return
	}

	// Corners sit at the start points of edges: edge i begins a corner
	// when the previous edge leaves in a direction that makes a sharp
	// turn into edge i.
	var corners []int
	prevDir := contour.Edges[m-1].DirectionAt(1).Normalized()
	for i := 0; i < m; i++ {
		dir := contour.Edges[i].DirectionAt(0).Normalized()
		if isCorner(prevDir, dir, crossThreshold) {
			corners = append(corners, i)
		}
		prevDir = contour.Edges[i].DirectionAt(1).Normalized()
	}

	switch len(corners) {
	case 0:
		// Smooth contour, a single channel set suffices.
		for i := range contour.Edges {
			contour.Edges[i].Color = ColorWhite
		}

	case 1:
		colorTeardrop(contour, corners[0], seed)

	default:
		colorMultiCorner(contour, corners, seed)
	}
}

// colorTeardrop handles a contour with exactly one corner. The contour
// is a teardrop: smooth everywhere except one point, so it needs three
// color regions meeting at that corner.
func colorTeardrop(contour *Contour, corner int, seed *uint64) {
	var colors [3]EdgeColor
	colors[0] = ColorWhite
	switchColor(&colors[0], seed, ColorBlack)
	colors[1] = ColorWhite
	colors[2] = colors[0]
	switchColor(&colors[2], seed, ColorBlack)

	m := len(contour.Edges)
	if m >= 3 {
		for i := 0; i < m; i++ {
			idx := int(3+2.875*float64(i)/float64(m-1)-1.4375+0.5) - 2
			contour.Edges[(corner+i)%m].Color = colors[idx]
		}
		return
	}

	// Fewer than three edges: split so each color region gets its own
	// edge. With two edges the corner decides which edge is cut where.
	var parts [7]Edge
	present := [7]bool{}

	a, b, c := contour.Edges[0].SplitInThirds()
	parts[0+3*corner], parts[1+3*corner], parts[2+3*corner] = a, b, c
	present[0+3*corner], present[1+3*corner], present[2+3*corner] = true, true, true

	if m >= 2 {
		a, b, c = contour.Edges[1].SplitInThirds()
		parts[3-3*corner], parts[4-3*corner], parts[5-3*corner] = a, b, c
		present[3-3*corner], present[4-3*corner], present[5-3*corner] = true, true, true

		parts[0].Color, parts[1].Color = colors[0], colors[0]
		parts[2].Color, parts[3].Color = colors[1], colors[1]
		parts[4].Color, parts[5].Color = colors[2], colors[2]
	} else {
		parts[0].Color = colors[0]
		parts[1].Color = colors[1]
		parts[2].Color = colors[2]
	}

	contour.Edges = contour.Edges[:0]
	for i := 0; i < len(parts); i++ {
		if present[i] {
			contour.Edges = append(contour.Edges, parts[i])
		}
	}
}

// colorMultiCorner handles a contour with two or more corners. Each
// spline (run of edges between corners) gets one color; the color
// switches at every corner, and the last spline avoids the first
// spline's color so the wrap-around junction also stays a corner.
func colorMultiCorner(contour *Contour, corners []int, seed *uint64) {
	cornerCount := len(corners)
	m := len(contour.Edges)

	spline := 0
	start := corners[0]
	color := ColorWhite
	switchColor(&color, seed, ColorBlack)
	initialColor := color

	for i := 0; i < m; i++ {
		index := (start + i) % m
		if spline+1 < cornerCount && corners[spline+1] == index {
			spline++
			banned := ColorBlack
			if spline == cornerCount-1 {
				banned = initialColor
			}
			switchColor(&color, seed, banned)
		}
		contour.Edges[index].Color = color
	}
}
