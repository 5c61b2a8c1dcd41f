package otf

// Axis is one variable font axis value: a 4-character OpenType tag
// plus a design-space value (for example {"wght", 700}).
type Axis struct {
	// Tag is the 4-character axis tag.
	Tag string

	// Value is the axis value in design units.
	Value float64
}

// The five standard OpenType variation axes. Custom axes declared in a
// font's fvar table are intentionally not resolved here; requests for
// tags outside this set are skipped, which leaves the font at its
// default instance for those axes.
var standardAxisTags = map[string]string{
	"wght": "Weight",
	"wdth": "Width",
	"opsz": "Optical Size",
	"ital": "Italic",
	"slnt": "Slant",
}

// IsStandardTag reports whether tag is one of the five standard
// OpenType variation axis tags (wght, wdth, opsz, ital, slnt).
func IsStandardTag(tag string) bool {
	_, ok := standardAxisTags[tag]
	return ok
}

// AxisName returns the registered name of a standard axis tag
// ("wght" -> "Weight"), or the empty string for unknown tags.
func AxisName(tag string) string {
	return standardAxisTags[tag]
}

// filterStandardAxes returns the axes whose tags are recognized,
// preserving order. Unknown tags are dropped silently.
func filterStandardAxes(axes []Axis) []Axis {
	kept := make([]Axis, 0, len(axes))
	for _, ax := range axes {
		if len(ax.Tag) != 4 || !IsStandardTag(ax.Tag) {
			continue
		}
		kept = append(kept, ax)
	}
	return kept
}
