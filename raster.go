package msdf

import (
	"math"
	"sync"

	"github.com/j-schauer/libMSDF/shape"
)

// numWorkers is the number of goroutines used to render rows.
// Workers own disjoint row ranges, so output is deterministic.
const numWorkers = 4

// channelCandidate tracks the closest edge found so far for one
// output channel, together with the curve parameter of the closest
// point so the true distance can be converted to a pseudo-distance
// after the scan.
type channelCandidate struct {
	dist  shape.SignedDistance
	edge  *shape.Edge
	param float64
}

func newChannelCandidate() channelCandidate {
	return channelCandidate{dist: shape.Infinite()}
}

// renderField fills out with distance samples for the shape. out must
// hold fr.width*fr.height*channels floats. With channels == 4 the
// fourth channel carries the true (single-channel) signed distance.
func renderField(s *shape.Shape, fr frame, pixelRange float64, channels int, out []float32) {
	var wg sync.WaitGroup

	rowsPerWorker := (fr.height + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > fr.height {
			endRow = fr.height
		}
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			renderRows(s, fr, pixelRange, channels, out, start, end)
		}(startRow, endRow)
	}

	wg.Wait()
}

// renderRows renders the half-open row range [startRow, endRow).
func renderRows(s *shape.Shape, fr frame, pixelRange float64, channels int, out []float32, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < fr.width; x++ {
			// Sample at the pixel center.
			p := fr.unproject(shape.Point{
				X: float64(x) + 0.5,
				Y: float64(y) + 0.5,
			})

			renderPixel(s, fr, pixelRange, channels, out, x, y, p)
		}
	}
}

// renderPixel computes the channel samples for one pixel.
func renderPixel(s *shape.Shape, fr frame, pixelRange float64, channels int, out []float32, x, y int, p shape.Point) {
	red := newChannelCandidate()
	green := newChannelCandidate()
	blue := newChannelCandidate()
	overall := newChannelCandidate()

	for _, contour := range s.Contours {
		for i := range contour.Edges {
			edge := &contour.Edges[i]
			sd, t := edge.Distance(p)

			if sd.IsCloserThan(overall.dist) {
				overall = channelCandidate{dist: sd, edge: edge, param: t}
			}
			if edge.Color.HasRed() && sd.IsCloserThan(red.dist) {
				red = channelCandidate{dist: sd, edge: edge, param: t}
			}
			if edge.Color.HasGreen() && sd.IsCloserThan(green.dist) {
				green = channelCandidate{dist: sd, edge: edge, param: t}
			}
			if edge.Color.HasBlue() && sd.IsCloserThan(blue.dist) {
				blue = channelCandidate{dist: sd, edge: edge, param: t}
			}
		}
	}

	// A channel no edge contributes to falls back to the overall
	// nearest edge. Cannot happen with well-formed coloring but keeps
	// the output defined for degenerate shapes.
	if red.edge == nil {
		red = overall
	}
	if green.edge == nil {
		green = overall
	}
	if blue.edge == nil {
		blue = overall
	}

	offset := (y*fr.width + x) * channels
	out[offset+0] = encodeSample(channelPseudoDistance(red, p), fr.scale, pixelRange)
	out[offset+1] = encodeSample(channelPseudoDistance(green, p), fr.scale, pixelRange)
	out[offset+2] = encodeSample(channelPseudoDistance(blue, p), fr.scale, pixelRange)
	if channels == 4 {
		out[offset+3] = encodeSample(overall.dist.Distance, fr.scale, pixelRange)
	}
}

// channelPseudoDistance extends the channel's true distance into a
// pseudo-distance when the closest point is an edge endpoint.
func channelPseudoDistance(c channelCandidate, p shape.Point) float64 {
	if c.edge == nil {
		return -maxDistance
	}
	return c.edge.PseudoDistance(c.dist, p, c.param).Distance
}

// encodeSample maps a design-unit distance to the output encoding:
// 0.5 on the edge, one unit of sample value per pixelRange pixels.
// Samples are intentionally not clamped.
func encodeSample(dist, scale, pixelRange float64) float32 {
	return float32(dist*scale/pixelRange + 0.5)
}

// maxDistance is a stand-in for infinity when a pixel has no edge at
// all. Only reachable for shapes with zero edges, which the generator
// short-circuits before rendering.
const maxDistance = 1e240

// median3 returns the median of three channel samples, the same
// reconstruction shaders apply when sampling the field.
func median3(r, g, b float32) float32 {
	return max(min(r, g), min(max(r, g), b))
}

// errorCorrect clamps color channels that stray too far from their
// pixel's median. Near the shape, pseudo-distances from unrelated
// same-colored edges can interfere and leave one channel with a value
// that distorts reconstruction between texels. A legitimate corner
// never separates a channel from the median by more than about one
// texel diagonal of distance, so larger deviations are pulled back to
// that limit. The median itself is unchanged, and the alpha channel
// holds the true distance and is left alone.
func errorCorrect(out []float32, width, height, channels int, pixelRange float64) {
	threshold := float32(math.Sqrt2 / pixelRange)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * channels
			med := median3(out[off], out[off+1], out[off+2])

			for ch := 0; ch < 3; ch++ {
				d := out[off+ch] - med
				if d > threshold {
					out[off+ch] = med + threshold
				} else if d < -threshold {
					out[off+ch] = med - threshold
				}
			}
		}
	}
}
