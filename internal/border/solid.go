package border

import (
	"image"

	"github.com/disintegration/imaging"
)

// solidFill paints the whole canvas in the configured color and pastes the
// source at the center offset. Used as a neutral calibration background.
func solidFill(src *image.NRGBA, bp int, cfg Config) *image.NRGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	canvas := imaging.New(w+2*bp, h+2*bp, cfg.SolidColor)
	return imaging.Paste(canvas, src, image.Pt(bp, bp))
}
