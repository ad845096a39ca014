package border

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage reports a source raster with no pixels. It is the only
// error Generate returns; everything else degrades to the edge-stretch
// baseline.
var ErrEmptyImage = errors.New("border: source image has no pixels")

// Generate returns a new raster consisting of the unchanged source in the
// center and a synthesized margin of Config.BorderWidthMM on every side.
//
// The source is first normalized to NRGBA (8-bit, non-premultiplied); the
// center region of the result is byte-identical to that normalized copy.
// The strategy is selected by cfg.Method. A strategy error or panic is
// absorbed and the edge-stretch baseline produces the result instead, so
// Generate fails only for an empty source.
func Generate(original image.Image, cfg Config) (*image.NRGBA, error) {
	if original == nil {
		return nil, ErrEmptyImage
	}
	b := original.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	cfg = cfg.normalized()
	src := imaging.Clone(original)
	bp := MMToPixels(cfg.BorderWidthMM, cfg.OutputDPI)

	out, err := runStrategy(src, bp, cfg)
	if err != nil {
		out = edgeStretch(src, bp, cfg)
	}
	return out, nil
}

// runStrategy dispatches to the configured fill strategy, converting any
// panic into an error so the caller can fall back.
func runStrategy(src *image.NRGBA, bp int, cfg Config) (out *image.NRGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("border: %s strategy panicked: %v", cfg.Method, r)
		}
	}()

	switch cfg.Method {
	case MethodSmartFill:
		return smartFill(src, bp, cfg)
	case MethodGradientFade:
		return gradientFade(src, bp, cfg), nil
	case MethodSolidColor:
		return solidFill(src, bp, cfg), nil
	default:
		return edgeStretch(src, bp, cfg), nil
	}
}

// newCanvas allocates the (w+2bp)×(h+2bp) output raster with the source
// pasted at the center offset (bp, bp).
func newCanvas(src *image.NRGBA, bp int) *image.NRGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, w+2*bp, h+2*bp))
	return imaging.Paste(canvas, src, image.Pt(bp, bp))
}
