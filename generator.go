package msdf

import (
	"github.com/j-schauer/libMSDF/otf"
	"github.com/j-schauer/libMSDF/shape"
)

// Generator creates distance field bitmaps from font glyphs.
//
// A Generator is stateless apart from its configuration and is safe
// for concurrent use as long as the fonts passed to it are not shared
// between goroutines (see otf.Font).
type Generator struct {
	config Config
}

// NewGenerator creates a new generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

// DefaultGenerator creates a new generator with default configuration.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultConfig())
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// SetConfig updates the generator's configuration.
func (g *Generator) SetConfig(config Config) {
	g.config = config
}

// Generate creates a 3-channel MSDF bitmap for the glyph mapped to r.
//
// Blank glyphs such as the space produce a minimal bitmap of far
// outside samples rather than an error.
func (g *Generator) Generate(font otf.Font, r rune) (*Result, error) {
	return g.generate(font, r, 3)
}

// GenerateMTSDF creates a 4-channel MTSDF bitmap for the glyph mapped
// to r. The fourth channel carries the true signed distance.
func (g *Generator) GenerateMTSDF(font otf.Font, r rune) (*Result, error) {
	return g.generate(font, r, 4)
}

// GenerateVar renders the glyph at a variable font instance: the axes
// are applied, the glyph is generated, and the font is restored to its
// default instance before returning. Axes with non-standard tags are
// skipped; on non-variable fonts the axes have no effect.
func (g *Generator) GenerateVar(font otf.Font, r rune, axes []otf.Axis) (*Result, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	font.ApplyVariations(axes)
	defer font.ClearVariations()
	return g.generate(font, r, 3)
}

// GenerateMTSDFVar is GenerateVar with a 4-channel MTSDF output.
func (g *Generator) GenerateMTSDFVar(font otf.Font, r rune, axes []otf.Axis) (*Result, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	font.ApplyVariations(axes)
	defer font.ClearVariations()
	return g.generate(font, r, 4)
}

// generate runs the full pipeline: outline extraction, shape building,
// normalization, edge coloring and rasterization.
func (g *Generator) generate(font otf.Font, r rune, channels int) (*Result, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if font == nil {
		return nil, ErrNilFont
	}

	outline, err := font.Glyph(r)
	if err != nil {
		return nil, err
	}

	scale := g.config.FontSize / float64(font.UnitsPerEm())
	advance := float32(outline.Advance * scale)

	s := shape.FromOutline(outline)
	s.Normalize()

	if s.IsEmpty() || s.Bounds.IsEmpty() {
		return g.generateEmpty(scale, advance, channels), nil
	}

	shape.ColorEdges(s, g.config.AngleThreshold, g.config.Seed)

	fr := newFrame(s.Bounds, scale, g.config.PixelRange)
	pixels := make([]float32, fr.width*fr.height*channels)
	renderField(s, fr, g.config.PixelRange, channels, pixels)
	errorCorrect(pixels, fr.width, fr.height, channels, g.config.PixelRange)

	Logger().Debug("msdf: generated glyph",
		"rune", string(r),
		"width", fr.width,
		"height", fr.height,
		"channels", channels,
		"contours", len(s.Contours),
		"edges", s.EdgeCount(),
	)

	return &Result{
		Width:    fr.width,
		Height:   fr.height,
		Channels: channels,
		Advance:  advance,
		PlaneBounds: Bounds{
			Left:   float32(fr.left),
			Bottom: float32(fr.bottom),
			Right:  float32(fr.right),
			Top:    float32(fr.top),
		},
		Pixels: pixels,
	}, nil
}

// generateEmpty builds the result for a glyph with no outline, such as
// the space. The frame falls back to the canonical unit box in design
// units, so the plane bounds come out as (0, 0, scale, scale), and
// every sample is 0 (far outside), keeping the bitmap valid for
// atlasing.
func (g *Generator) generateEmpty(scale float64, advance float32, channels int) *Result {
	fr := newFrame(shape.Rect{}, scale, g.config.PixelRange)
	return &Result{
		Width:    fr.width,
		Height:   fr.height,
		Channels: channels,
		Advance:  advance,
		PlaneBounds: Bounds{
			Left:   float32(fr.left),
			Bottom: float32(fr.bottom),
			Right:  float32(fr.right),
			Top:    float32(fr.top),
		},
		Pixels: make([]float32, fr.width*fr.height*channels),
	}
}

// Generate parses fontData and renders a 3-channel MSDF bitmap for the
// glyph mapped to r using the default font parser. For repeated
// generation from the same font, parse once with otf.Parse and use a
// Generator instead.
func Generate(fontData []byte, r rune, config Config) (*Result, error) {
	font, err := otf.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return NewGenerator(config).Generate(font, r)
}

// GenerateMTSDF parses fontData and renders a 4-channel MTSDF bitmap
// for the glyph mapped to r using the default font parser.
func GenerateMTSDF(fontData []byte, r rune, config Config) (*Result, error) {
	font, err := otf.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return NewGenerator(config).GenerateMTSDF(font, r)
}

// HasGlyph parses fontData and reports whether the font maps r to a
// glyph. It returns an error only when the font data is invalid.
func HasGlyph(fontData []byte, r rune) (bool, error) {
	font, err := otf.Parse(fontData)
	if err != nil {
		return false, err
	}
	return font.HasGlyph(r), nil
}
