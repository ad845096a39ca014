package border

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// inpaintBorder is the content-aware fill backend. It is a variable so
// tests can substitute a failing backend and exercise the edge-stretch
// fallback path.
var inpaintBorder = diffuseBorder

// smartFill synthesizes the border band with content-aware fill: the band
// is masked off, seeded from the nearest edge pixels and then diffused so
// structures at the image edge continue smoothly into the margin. Any
// backend failure is reported to the dispatcher, which falls back to
// edge-stretch.
func smartFill(src *image.NRGBA, bp int, cfg Config) (*image.NRGBA, error) {
	out, err := inpaintBorder(src, bp)
	if err != nil {
		return nil, fmt.Errorf("border: smart fill: %w", err)
	}
	return out, nil
}

// diffuseBorder implements inpainting as iterated masked diffusion.
//
// The border band is seeded by clamp-extending the outermost source pixels,
// then a Gaussian blur with radius min(bp/2, 12) is applied repeatedly and
// written back only inside the band mask. The center region is never
// touched; it re-asserts the original pixels as the diffusion boundary on
// every pass, which is what pulls edge content outward.
func diffuseBorder(src *image.NRGBA, bp int) (*image.NRGBA, error) {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	if bp <= 0 {
		return nil, fmt.Errorf("non-positive border width %d", bp)
	}

	out := newCanvas(src, bp)
	seedBorder(out, src, bp)

	radius := bp / 2
	if radius > 12 {
		radius = 12
	}
	if radius < 1 {
		radius = 1
	}

	const passes = 3
	for i := 0; i < passes; i++ {
		blurred := blur.Gaussian(out, float64(radius))
		copyBand(out, blurred, bp, w, h)
	}
	return out, nil
}

// seedBorder fills the band by replicating the nearest source pixel, giving
// the diffusion sensible boundary values instead of black.
func seedBorder(out, src *image.NRGBA, bp int) {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	ow := w + 2*bp
	oh := h + 2*bp

	for y := 0; y < oh; y++ {
		sy := clamp(y-bp, 0, h-1)
		for x := 0; x < ow; x++ {
			if inCenter(x, y, bp, w, h) {
				x = bp + w - 1 // skip to the right band
				continue
			}
			sx := clamp(x-bp, 0, w-1)
			so := src.PixOffset(sx, sy)
			do := out.PixOffset(x, y)
			copy(out.Pix[do:do+4], src.Pix[so:so+4])
		}
	}
}

// copyBand writes blurred pixels back into out, but only inside the border
// band. blurred is the premultiplied RGBA produced by the blur backend; for
// the opaque rasters this tool processes the channel bytes carry over
// directly.
func copyBand(out *image.NRGBA, blurred *image.RGBA, bp, w, h int) {
	ow := w + 2*bp
	oh := h + 2*bp

	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			if inCenter(x, y, bp, w, h) {
				x = bp + w - 1
				continue
			}
			bo := blurred.PixOffset(x, y)
			do := out.PixOffset(x, y)
			copy(out.Pix[do:do+4], blurred.Pix[bo:bo+4])
		}
	}
}

// inCenter reports whether output pixel (x, y) lies over the protected
// center region holding the original image.
func inCenter(x, y, bp, w, h int) bool {
	return x >= bp && x < bp+w && y >= bp && y < bp+h
}
