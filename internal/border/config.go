package border

import "image/color"

// Method selects the fill strategy used for the border band.
type Method string

// Recognized fill methods. Unknown values resolve to MethodEdgeStretch.
const (
	MethodEdgeStretch  Method = "edge_stretch"
	MethodSmartFill    Method = "smart_fill"
	MethodGradientFade Method = "gradient_fade"
	MethodSolidColor   Method = "solid_color"
)

// ParseMethod maps a method name to a Method, defaulting to edge-stretch
// for unrecognized input. Configuration mistakes are never fatal here; the
// baseline strategy always applies.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodSmartFill, MethodGradientFade, MethodSolidColor:
		return Method(s)
	default:
		return MethodEdgeStretch
	}
}

// Default physical parameters, matching the tool's shipped settings.
const (
	DefaultBorderWidthMM = 3.0
	DefaultSourceWidthMM = 1.0
	DefaultOutputDPI     = 300
)

// Config holds the immutable parameters of one border generation call.
//
// A zero Config is usable: every field falls back to its default during
// Generate. SourceWidthMM is independent of the border width; at use time
// the derived strip depth is clamped so it never exceeds the border width
// or a quarter of the source's smaller dimension.
type Config struct {
	// Method selects the fill strategy.
	Method Method

	// BorderWidthMM is the physical width of the synthesized margin.
	BorderWidthMM float64

	// SourceWidthMM is the physical depth of the edge strip read from the
	// source image.
	SourceWidthMM float64

	// OutputDPI is the raster resolution used for unit conversion only.
	OutputDPI int

	// SolidColor fills the margin when Method is MethodSolidColor.
	// A zero value means white.
	SolidColor color.NRGBA

	// EdgeFade optionally darkens edge-stretch bands with distance from
	// the image, linearly toward 1-EdgeFade. The canonical behavior is no
	// fade (0); values are clamped to [0, 0.9].
	EdgeFade float64
}

// normalized returns a copy with all invalid fields replaced by defaults.
func (c Config) normalized() Config {
	c.Method = ParseMethod(string(c.Method))
	if c.BorderWidthMM <= 0 {
		c.BorderWidthMM = DefaultBorderWidthMM
	}
	if c.SourceWidthMM <= 0 {
		c.SourceWidthMM = DefaultSourceWidthMM
	}
	if c.OutputDPI <= 0 {
		c.OutputDPI = DefaultOutputDPI
	}
	if c.EdgeFade < 0 {
		c.EdgeFade = 0
	}
	if c.EdgeFade > 0.9 {
		c.EdgeFade = 0.9
	}
	var zero color.NRGBA
	if c.SolidColor == zero {
		c.SolidColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

// BorderPixels returns the border width in pixels for this configuration.
func (c Config) BorderPixels() int {
	n := c.normalized()
	return MMToPixels(n.BorderWidthMM, n.OutputDPI)
}

// sourceDepth computes S, the clamped depth in pixels of the edge strip
// read from a w×h source for a border of bp pixels.
func (c Config) sourceDepth(bp, w, h int) int {
	s := MMToPixels(c.SourceWidthMM, c.OutputDPI)
	limit := bp
	if w/4 < limit {
		limit = w / 4
	}
	if h/4 < limit {
		limit = h / 4
	}
	return clamp(s, 1, max(1, limit))
}
