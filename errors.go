package msdf

import "errors"

// Sentinel errors for the msdf package. Font parsing and glyph lookup
// errors come from the otf package (otf.ErrInvalidFont,
// otf.ErrGlyphNotFound, otf.ErrNoOutline) and pass through wrapped.
var (
	// ErrNilFont is returned when generation is attempted on a nil font.
	ErrNilFont = errors.New("msdf: nil font")
)
