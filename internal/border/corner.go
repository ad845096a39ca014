package border

import "image"

// stretchPatch upsamples a square S×S patch to target×target using
// nearest-neighbor index mapping, independently per axis:
//
//	out[y][x] = patch[min(y*S/target, S-1)][min(x*S/target, S-1)]
//
// No interpolation is applied. The corner stays crisp and a uniform patch
// stretches to an exactly uniform square, which keeps corner fills
// consistent with the band sampling of the edge-stretch strategy.
func stretchPatch(patch *image.NRGBA, target int) *image.NRGBA {
	s := patch.Bounds().Dx()
	out := image.NewNRGBA(image.Rect(0, 0, target, target))

	for y := 0; y < target; y++ {
		sy := clamp(y*s/target, 0, s-1)
		for x := 0; x < target; x++ {
			sx := clamp(x*s/target, 0, s-1)
			so := patch.PixOffset(sx, sy)
			do := out.PixOffset(x, y)
			copy(out.Pix[do:do+4], patch.Pix[so:so+4])
		}
	}
	return out
}
