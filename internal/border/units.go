package border

import "math"

// mmPerInch is the exact definition of the inch in millimeters.
const mmPerInch = 25.4

// pointsPerMM converts millimeters to PDF points (1/72 inch).
const pointsPerMM = 2.834645669

// MMToPixels converts a physical length in millimeters to a pixel count at
// the given resolution.
//
// The result is rounded to the nearest integer and floored at 1, so any
// positive physical length maps to at least one pixel. Every raster size in
// this package derives from this conversion; placement of the finished
// raster into a PDF uses MMToPoints instead, and the two must never be
// mixed.
func MMToPixels(mm float64, dpi int) int {
	px := int(math.Round(mm / mmPerInch * float64(dpi)))
	if px < 1 {
		return 1
	}
	return px
}

// MMToPoints converts millimeters to PDF points for vector placement.
func MMToPoints(mm float64) float64 {
	return mm * pointsPerMM
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
