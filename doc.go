// Package msdf generates multi-channel signed distance fields from
// font glyphs for high-quality, scalable text rendering on GPU.
//
// A multi-channel signed distance field (MSDF) encodes glyph shape
// information into RGB texture channels. Unlike a single-channel SDF,
// MSDF preserves sharp corners by giving the edges meeting at a corner
// different channel colors; the median of the three channels recovers
// the true signed distance in the shader.
//
// # Pipeline
//
//  1. Parse the font and extract the glyph outline (package otf)
//  2. Build closed contours of line and Bezier edges (package shape)
//  3. Normalize winding and assign channel colors at corners
//  4. For each pixel, find the minimum signed pseudo-distance per channel
//  5. Encode distances as float pixels (0.5 = on the edge)
//
// The variant with a fourth channel (MTSDF) additionally stores the
// true signed distance in the alpha channel, useful for effects such
// as outlines and glow that need the unmodified distance.
//
// # Usage
//
//	gen := msdf.NewGenerator(msdf.Config{
//	    FontSize:       64,
//	    PixelRange:     8,
//	    AngleThreshold: 3,
//	})
//
//	font, err := otf.Parse(fontData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(font, 'A')
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// result.Pixels holds Width*Height*3 floats, rows bottom-up.
//
// # WGSL Shader Example
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
//	let d = median3(textureSample(tex, samp, uv).rgb);
//	let alpha = clamp((d - 0.5) * pxRange + 0.5, 0.0, 1.0);
package msdf
