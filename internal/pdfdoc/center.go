package pdfdoc

import (
	"fmt"
	"image"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// CenterImage is the dominant raster on a page: the placed image closest
// to the page center whose width and height both exceed 20% of the
// smaller page dimension.
type CenterImage struct {
	// Name is the XObject resource name.
	Name string

	// Rect is the placement rectangle in points (PDF user space).
	Rect Rect

	// Image holds the decoded pixels.
	Image image.Image

	// WidthPx and HeightPx are the raster's native pixel dimensions.
	WidthPx  int
	HeightPx int
}

// FindCenterImage locates and decodes the dominant image on a 1-based
// page. It returns (nil, nil) when the page has no qualifying image,
// which is a normal skip condition rather than an error.
func (d *Document) FindCenterImage(pageNr int) (*CenterImage, error) {
	dims, err := d.PageDims()
	if err != nil {
		return nil, err
	}
	if pageNr < 1 || pageNr > len(dims) {
		return nil, fmt.Errorf("page %d out of range (1-%d)", pageNr, len(dims))
	}
	pageW := dims[pageNr-1].Width
	pageH := dims[pageNr-1].Height

	dict, err := d.pageDict(pageNr)
	if err != nil {
		return nil, err
	}
	images, err := pageImages(d.ctx, dict)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	content, err := pageContent(d.ctx, dict)
	if err != nil {
		return nil, err
	}

	var placed []placement
	for _, p := range scanPlacements(content) {
		if _, ok := images[p.name]; ok {
			placed = append(placed, p)
		}
	}

	best := selectCenterPlacement(placed, pageW, pageH)
	if best == nil {
		return nil, nil
	}

	x := images[best.name]
	raster, err := decodeRaster(x)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNr, err)
	}

	return &CenterImage{
		Name:     best.name,
		Rect:     best.rect,
		Image:    raster,
		WidthPx:  x.widthPx,
		HeightPx: x.heightPx,
	}, nil
}

// selectCenterPlacement picks the placement closest to the page center
// among those larger than 20% of the smaller page dimension in both
// directions. Returns nil when nothing qualifies.
func selectCenterPlacement(placed []placement, pageW, pageH float64) *placement {
	centerX := pageW / 2
	centerY := pageH / 2
	minSize := min(pageW, pageH) * 0.2

	var best *placement
	bestDist := math.Inf(1)

	for i := range placed {
		p := &placed[i]
		if p.rect.Width() <= minSize || p.rect.Height() <= minSize {
			continue
		}
		cx, cy := p.rect.Center()
		dist := math.Hypot(cx-centerX, cy-centerY)
		if dist < bestDist {
			bestDist = dist
			best = p
		}
	}
	return best
}

// pageDim returns the media box of a 1-based page as a Rect anchored at
// the origin.
func (d *Document) pageDim(pageNr int) (Rect, error) {
	dims, err := d.PageDims()
	if err != nil {
		return Rect{}, err
	}
	if pageNr < 1 || pageNr > len(dims) {
		return Rect{}, fmt.Errorf("page %d out of range (1-%d)", pageNr, len(dims))
	}
	return rectFromDim(dims[pageNr-1]), nil
}

func rectFromDim(dim types.Dim) Rect {
	return Rect{X1: dim.Width, Y1: dim.Height}
}
