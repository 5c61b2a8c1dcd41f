package otf

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements Parser using go-text/typesetting.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &gotextFont{face: face}, nil
}

// gotextFont implements Font using a go-text font.Face.
//
// font.Face is not safe for concurrent use; neither is gotextFont.
// The embedded *font.Font is read-only, the Face layer carries the
// active variation coordinates.
type gotextFont struct {
	face *font.Face
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// HasGlyph implements Font.HasGlyph.
// It resolves the rune through the character map only; glyph index 0
// means the glyph is not present.
func (f *gotextFont) HasGlyph(r rune) bool {
	gid, ok := f.face.NominalGlyph(r)
	return ok && gid != 0
}

// Glyph implements Font.Glyph.
func (f *gotextFont) Glyph(r rune) (*Outline, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}

	outline := &Outline{
		GID:     uint32(gid),
		Advance: float64(f.face.HorizontalAdvance(gid)),
	}

	data := f.face.GlyphData(gid)
	if data == nil {
		// No glyf/CFF entry: an empty glyph such as a space.
		return outline, nil
	}

	glyphOutline, ok := data.(font.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph with no vector outline.
		return nil, fmt.Errorf("%w: glyph %d has no vector data", ErrNoOutline, gid)
	}

	outline.Segments = convertSegments(glyphOutline.Segments)
	return outline, nil
}

// convertSegments converts go-text segments (float32, design units,
// y up) to otf segments.
func convertSegments(segs []font.Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}

	out := make([]Segment, len(segs))
	for i, seg := range segs {
		conv := Segment{}
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			conv.Op = SegmentOpMoveTo
		case ot.SegmentOpLineTo:
			conv.Op = SegmentOpLineTo
		case ot.SegmentOpQuadTo:
			conv.Op = SegmentOpQuadTo
		case ot.SegmentOpCubeTo:
			conv.Op = SegmentOpCubeTo
		}
		for j := 0; j < conv.PointCount(); j++ {
			conv.Args[j] = Point{
				X: float64(seg.Args[j].X),
				Y: float64(seg.Args[j].Y),
			}
		}
		out[i] = conv
	}
	return out
}

// ApplyVariations implements Font.ApplyVariations.
//
// The requested axes are filtered to the standard OpenType tags and
// handed to the face as one instance change. go-text ignores axes the
// font does not declare; if the font turns out to be non-variable
// (no normalized coordinates after the change), nothing was applied.
func (f *gotextFont) ApplyVariations(axes []Axis) int {
	kept := filterStandardAxes(axes)
	if len(kept) == 0 {
		return 0
	}

	vars := make([]font.Variation, len(kept))
	for i, ax := range kept {
		vars[i] = font.Variation{
			Tag:   ot.MustNewTag(ax.Tag),
			Value: float32(ax.Value),
		}
	}
	f.face.SetVariations(vars)

	if len(f.face.Coords()) == 0 {
		return 0
	}
	return len(vars)
}

// ClearVariations implements Font.ClearVariations.
func (f *gotextFont) ClearVariations() {
	f.face.SetVariations(nil)
}
