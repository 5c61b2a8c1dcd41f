package otf

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestIsStandardTag(t *testing.T) {
	for _, tag := range []string{"wght", "wdth", "opsz", "ital", "slnt"} {
		if !IsStandardTag(tag) {
			t.Errorf("IsStandardTag(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"WGHT", "grad", "xxxx", "", "wg"} {
		if IsStandardTag(tag) {
			t.Errorf("IsStandardTag(%q) = true, want false", tag)
		}
	}
}

func TestAxisName(t *testing.T) {
	if got := AxisName("wght"); got != "Weight" {
		t.Errorf("AxisName(wght) = %q, want Weight", got)
	}
	if got := AxisName("grad"); got != "" {
		t.Errorf("AxisName(grad) = %q, want empty", got)
	}
}

func TestFilterStandardAxes(t *testing.T) {
	axes := []Axis{
		{Tag: "wght", Value: 700},
		{Tag: "grad", Value: 50},   // non-standard, dropped
		{Tag: "wdth", Value: 87.5},
		{Tag: "bad", Value: 1},     // wrong length, dropped
		{Tag: "slnt", Value: -10},
	}

	kept := filterStandardAxes(axes)
	if len(kept) != 3 {
		t.Fatalf("kept = %d axes, want 3", len(kept))
	}

	want := []string{"wght", "wdth", "slnt"}
	for i, tag := range want {
		if kept[i].Tag != tag {
			t.Errorf("kept[%d].Tag = %q, want %q (order must be preserved)", i, kept[i].Tag, tag)
		}
	}
}

func TestApplyVariationsStaticFont(t *testing.T) {
	// Go Regular is not a variable font: requested axes are absorbed
	// silently and nothing is applied.
	font, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	applied := font.ApplyVariations([]Axis{{Tag: "wght", Value: 700}})
	if applied != 0 {
		t.Errorf("applied = %d on static font, want 0", applied)
	}

	// The glyph pipeline still works after the no-op instance change.
	outline, err := font.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph after ApplyVariations error: %v", err)
	}
	if outline.IsEmpty() {
		t.Error("glyph empty after ApplyVariations")
	}

	font.ClearVariations()

	outline2, err := font.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph after ClearVariations error: %v", err)
	}
	if len(outline2.Segments) != len(outline.Segments) {
		t.Error("outline changed after ClearVariations on static font")
	}
}

func TestApplyVariationsUnknownTagsOnly(t *testing.T) {
	font, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	applied := font.ApplyVariations([]Axis{
		{Tag: "grad", Value: 100},
		{Tag: "zzzz", Value: 1},
	})
	if applied != 0 {
		t.Errorf("applied = %d for unknown tags, want 0", applied)
	}
}
