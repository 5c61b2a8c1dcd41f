package msdf

import (
	"math"
)

// Config holds distance field generation parameters.
type Config struct {
	// FontSize is the nominal glyph size in pixels: one em of the font
	// maps to this many pixels in the output bitmap. The actual bitmap
	// dimensions follow from the glyph bounds plus the distance range
	// padding.
	// Default: 32
	FontSize float64

	// PixelRange is the total width of the encoded distance range in
	// output pixels. A pixel value of 0.5 sits on the edge; 0.0 and 1.0
	// are half of PixelRange away on either side. Larger values give
	// softer gradients and more room for effects, smaller values give
	// sharper fields.
	// Default: 4.0
	PixelRange float64

	// AngleThreshold is the maximum angle (in radians) between adjacent
	// edge directions still treated as smooth. Junctions turning more
	// sharply become corners and get distinct channel colors.
	// Default: 3.0
	AngleThreshold float64

	// Seed drives the deterministic pseudo-random choices of the edge
	// coloring. The same seed always produces the same coloring.
	// Default: 0
	Seed uint64
}

// DefaultConfig returns the default generation configuration.
// These values work well for most text rendering scenarios.
func DefaultConfig() Config {
	return Config{
		FontSize:       32,
		PixelRange:     4.0,
		AngleThreshold: 3.0,
		Seed:           0,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.FontSize <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	if c.FontSize > 4096 {
		return &ConfigError{Field: "FontSize", Reason: "must be at most 4096"}
	}
	if c.PixelRange <= 0 {
		return &ConfigError{Field: "PixelRange", Reason: "must be positive"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}
