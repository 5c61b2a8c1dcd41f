package otf

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
//
// The sfnt package has no variable font support, so fonts parsed by
// this backend always render at their default instance.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &ximageFont{font: f, upem: int(f.UnitsPerEm())}, nil
}

// ximageFont implements Font using an sfnt.Font.
// The sfnt.Buffer is reused across calls and makes this type unsafe
// for concurrent use.
type ximageFont struct {
	font *sfnt.Font
	upem int
	buf  sfnt.Buffer
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return f.upem
}

// HasGlyph implements Font.HasGlyph.
func (f *ximageFont) HasGlyph(r rune) bool {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && gid != 0
}

// Glyph implements Font.Glyph.
//
// Loading at ppem = unitsPerEm makes the 26.6 fixed-point segment
// coordinates equal to design units after division by 64. sfnt
// produces y-down coordinates; they are negated here to match the
// y-up design unit convention of the rest of the pipeline.
func (f *ximageFont) Glyph(r rune) (*Outline, error) {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || gid == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}

	ppem := fixed.Int26_6(f.upem * 64)

	segs, err := f.font.LoadGlyph(&f.buf, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: glyph %d: %v", ErrNoOutline, gid, err)
	}

	outline := &Outline{GID: uint32(gid)}

	advance, err := f.font.GlyphAdvance(&f.buf, gid, ppem, xfont.HintingNone)
	if err == nil {
		outline.Advance = fixedToFloat(advance)
	}

	if len(segs) == 0 {
		return outline, nil
	}

	outline.Segments = make([]Segment, len(segs))
	for i, seg := range segs {
		conv := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			conv.Op = SegmentOpMoveTo
		case sfnt.SegmentOpLineTo:
			conv.Op = SegmentOpLineTo
		case sfnt.SegmentOpQuadTo:
			conv.Op = SegmentOpQuadTo
		case sfnt.SegmentOpCubeTo:
			conv.Op = SegmentOpCubeTo
		}
		for j := 0; j < conv.PointCount(); j++ {
			conv.Args[j] = Point{
				X: fixedToFloat(seg.Args[j].X),
				Y: -fixedToFloat(seg.Args[j].Y),
			}
		}
		outline.Segments[i] = conv
	}
	return outline, nil
}

// ApplyVariations implements Font.ApplyVariations.
// sfnt has no fvar/gvar support; no axis can be applied.
func (f *ximageFont) ApplyVariations([]Axis) int {
	return 0
}

// ClearVariations implements Font.ClearVariations.
func (f *ximageFont) ClearVariations() {}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
