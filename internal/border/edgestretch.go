package border

import (
	"image"

	"github.com/disintegration/imaging"
)

// edgeStretch fills the margin by replicating the outermost S source lines
// across each border band of width bp.
//
// Band line i (counted outward from the image) copies source line
// min(i*S/bp, S-1), so the thin edge strip is stretched to cover the whole
// band. Bands span only the width/height of the original; the four corner
// squares are filled by stretching a dedicated S×S corner patch. Full-color
// replication is the default; cfg.EdgeFade re-enables the historical linear
// darkening for callers that want it.
func edgeStretch(src *image.NRGBA, bp int, cfg Config) *image.NRGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	s := cfg.sourceDepth(bp, w, h)
	out := newCanvas(src, bp)

	for i := 0; i < bp; i++ {
		si := bandLineIndex(i, s, bp)
		fade := fadeFactor(cfg.EdgeFade, i, bp)

		copyRow(out, src, si, bp-1-i, bp, w, fade)     // top band
		copyRow(out, src, h-1-si, bp+h+i, bp, w, fade) // bottom band
		copyCol(out, src, si, bp-1-i, bp, h, fade)     // left band
		copyCol(out, src, w-1-si, bp+w+i, bp, h, fade) // right band
	}

	fillCorners(out, src, s, bp)
	return out
}

// bandLineIndex maps output band line i to a source line in [0, s).
func bandLineIndex(i, s, bp int) int {
	return clamp(i*s/bp, 0, s-1)
}

// fadeFactor computes the multiplicative fade for band line i. edgeFade 0
// keeps full color; a positive value fades linearly toward 1-edgeFade.
func fadeFactor(edgeFade float64, i, bp int) float64 {
	if edgeFade <= 0 {
		return 1
	}
	f := 1 - float64(i)/float64(bp)*edgeFade
	if floor := 1 - edgeFade; f < floor {
		f = floor
	}
	return f
}

// fillCorners stretches the four S×S source corner patches into the four
// bp×bp corner squares of the output. No fade is applied; corners stay
// consistent with the band sampling policy.
func fillCorners(out, src *image.NRGBA, s, bp int) {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	corners := []struct {
		patch image.Rectangle
		dstX  int
		dstY  int
	}{
		{image.Rect(0, 0, s, s), 0, 0},             // top-left
		{image.Rect(w-s, 0, w, s), bp + w, 0},      // top-right
		{image.Rect(0, h-s, s, h), 0, bp + h},      // bottom-left
		{image.Rect(w-s, h-s, w, h), bp + w, bp + h}, // bottom-right
	}

	for _, c := range corners {
		patch := imaging.Crop(src, c.patch)
		blit(out, stretchPatch(patch, bp), c.dstX, c.dstY)
	}
}

// copyRow copies n pixels of source row srcY into destination row dstY
// starting at column dstXOff, optionally faded.
func copyRow(dst, src *image.NRGBA, srcY, dstY, dstXOff, n int, fade float64) {
	so := src.PixOffset(0, srcY)
	do := dst.PixOffset(dstXOff, dstY)
	if fade >= 1 {
		copy(dst.Pix[do:do+n*4], src.Pix[so:so+n*4])
		return
	}
	for x := 0; x < n; x++ {
		fadePixel(dst.Pix[do+x*4:], src.Pix[so+x*4:], fade)
	}
}

// copyCol copies n pixels of source column srcX into destination column
// dstX starting at row dstYOff, optionally faded.
func copyCol(dst, src *image.NRGBA, srcX, dstX, dstYOff, n int, fade float64) {
	for y := 0; y < n; y++ {
		so := src.PixOffset(srcX, y)
		do := dst.PixOffset(dstX, dstYOff+y)
		if fade >= 1 {
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
		} else {
			fadePixel(dst.Pix[do:], src.Pix[so:], fade)
		}
	}
}

// fadePixel writes src scaled by fade into dst. Alpha is preserved so a
// faded border never turns transparent.
func fadePixel(dst, src []byte, fade float64) {
	dst[0] = uint8(float64(src[0]) * fade)
	dst[1] = uint8(float64(src[1]) * fade)
	dst[2] = uint8(float64(src[2]) * fade)
	dst[3] = src[3]
}

// blit copies img into dst with its top-left corner at (x0, y0).
func blit(dst, img *image.NRGBA, x0, y0 int) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		so := img.PixOffset(0, y)
		do := dst.PixOffset(x0, y0+y)
		copy(dst.Pix[do:do+w*4], img.Pix[so:so+w*4])
	}
}
