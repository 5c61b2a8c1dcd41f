package otf

import "errors"

// Sentinel errors for the otf package.
var (
	// ErrInvalidFont is returned when the font data cannot be parsed.
	ErrInvalidFont = errors.New("otf: invalid font data")

	// ErrGlyphNotFound is returned when a rune has no glyph in the font
	// (the character map resolves it to glyph index 0).
	ErrGlyphNotFound = errors.New("otf: no glyph for rune")

	// ErrNoOutline is returned when a glyph exists but its outline
	// cannot be decoded (corrupt glyph table entry, or a bitmap-only
	// glyph with no vector data).
	ErrNoOutline = errors.New("otf: glyph outline unavailable")
)
