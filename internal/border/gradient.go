package border

import "image"

// gradientFade fills each border band from the single outermost source
// row/column, scaled down by at most 10% with distance from the image:
//
//	factor = max(0.9, 1.0 - (i/bp)*0.1)
//
// Unlike edge-stretch this never reads deeper than one source line, so the
// band is a pure tonal continuation of the image edge. The result stays
// perceptually continuous while remaining distinguishable from a hard
// edge-repeat in print proofing. Corners use the shared corner-patch
// stretch, unfaded.
func gradientFade(src *image.NRGBA, bp int, cfg Config) *image.NRGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	out := newCanvas(src, bp)

	for i := 0; i < bp; i++ {
		factor := 1 - float64(i)/float64(bp)*0.1
		if factor < 0.9 {
			factor = 0.9
		}

		copyRow(out, src, 0, bp-1-i, bp, w, factor)   // top band
		copyRow(out, src, h-1, bp+h+i, bp, w, factor) // bottom band
		copyCol(out, src, 0, bp-1-i, bp, h, factor)   // left band
		copyCol(out, src, w-1, bp+w+i, bp, h, factor) // right band
	}

	s := cfg.sourceDepth(bp, w, h)
	fillCorners(out, src, s, bp)
	return out
}
