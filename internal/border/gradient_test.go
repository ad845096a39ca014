package border

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestGradientFade_SamplesOutermostLineOnly(t *testing.T) {
	src := newGradientGray(12, 12)
	cfg := Config{Method: MethodGradientFade, BorderWidthMM: 2, OutputDPI: 300}
	bp := cfg.BorderPixels()

	out, err := Generate(src, cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	norm := imaging.Clone(src)

	// Every top band line derives from source row 0 only, scaled by at
	// most 10%.
	base := norm.NRGBAAt(5, 0)
	for i := 0; i < bp; i++ {
		got := out.NRGBAAt(bp+5, bp-1-i)
		lo := uint8(float64(base.R) * 0.9)
		if got.R < lo || got.R > base.R {
			t.Fatalf("top band i=%d: value %d outside fade range [%d,%d]", i, got.R, lo, base.R)
		}
	}

	// Every bottom band line derives from the last source row.
	baseBottom := norm.NRGBAAt(5, 11)
	for i := 0; i < bp; i++ {
		got := out.NRGBAAt(bp+5, bp+12+i)
		lo := uint8(float64(baseBottom.R) * 0.9)
		if got.R < lo || got.R > baseBottom.R {
			t.Fatalf("bottom band i=%d: value %d outside fade range [%d,%d]", i, got.R, lo, baseBottom.R)
		}
	}
}

func TestGradientFade_FadeIsMonotonicAndMild(t *testing.T) {
	c := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	src := newSolidImage(20, 20, c)
	cfg := Config{Method: MethodGradientFade, BorderWidthMM: 3, OutputDPI: 300}
	bp := cfg.BorderPixels()

	out, err := Generate(src, cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	prev := uint8(255)
	for i := 0; i < bp; i++ {
		got := out.NRGBAAt(bp+10, bp-1-i).R
		if got > prev {
			t.Fatalf("fade not monotonic at band line %d: %d after %d", i, got, prev)
		}
		prev = got
	}

	// The fade never exceeds 10%.
	outermost := out.NRGBAAt(bp+10, 0).R
	if want := uint8(float64(c.R) * 0.9); outermost < want {
		t.Errorf("outermost line %d darker than the 10%% floor %d", outermost, want)
	}
}

func TestGradientFade_CornersUnfaded(t *testing.T) {
	c := color.NRGBA{R: 50, G: 150, B: 250, A: 255}
	src := newSolidImage(24, 24, c)
	cfg := Config{Method: MethodGradientFade, BorderWidthMM: 2, OutputDPI: 300}
	bp := cfg.BorderPixels()

	out, err := Generate(src, cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Corner squares reuse the corner-patch stretch without any fade.
	for _, p := range []struct{ x, y int }{{0, 0}, {bp + 24 + bp - 1, 0}, {0, bp + 24 + bp - 1}} {
		if got := out.NRGBAAt(p.x, p.y); got != c {
			t.Errorf("corner pixel (%d,%d): got %v, want unfaded %v", p.x, p.y, got, c)
		}
	}
}
