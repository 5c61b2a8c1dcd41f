package otf

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (go-text/typesetting vs golang.org/x/image/font/sfnt).
//
// The default implementation uses go-text/typesetting, which is the
// only backend with variable font support.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a Font.
	Parse(data []byte) (Font, error)
}

// Font is a parsed font file with an active variable instance.
//
// A Font is NOT safe for concurrent use: both backends keep mutable
// per-font state (the active variation coordinates, internal glyph
// buffers). Callers needing parallelism must parse one Font per
// worker.
type Font interface {
	// UnitsPerEm returns the font's design units per em.
	UnitsPerEm() int

	// HasGlyph reports whether the font maps the rune to a glyph.
	// It performs only a character map lookup, no outline extraction.
	HasGlyph(r rune) bool

	// Glyph extracts the outline and advance for the rune at design
	// scale. An existing glyph with no contours (such as a space)
	// yields an empty Outline, not an error.
	//
	// Returns ErrGlyphNotFound if the rune has no glyph, ErrNoOutline
	// if the glyph's outline cannot be decoded.
	Glyph(r rune) (*Outline, error)

	// ApplyVariations sets the given axes on the font's active
	// variable instance and returns the number of axes applied.
	// Unknown tags are skipped without error; a non-variable font
	// applies nothing and renders at its default instance.
	//
	// The instance state persists across Glyph calls until
	// ClearVariations (or another ApplyVariations) is called.
	ApplyVariations(axes []Axis) int

	// ClearVariations restores the font's default instance.
	ClearVariations()
}

// parserRegistry holds registered font parsers.
// The default parser is "gotext" (go-text/typesetting).
var parserRegistry = map[string]Parser{
	"gotext": &gotextParser{},
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "gotext"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}

// Parse parses font data using the default backend.
func Parse(data []byte) (Font, error) {
	return getParser(defaultParserName).Parse(data)
}

// ParseWith parses font data using the named backend, falling back to
// the default backend if the name is not registered.
func ParseWith(name string, data []byte) (Font, error) {
	return getParser(name).Parse(data)
}
