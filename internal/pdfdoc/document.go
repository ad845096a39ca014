package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Validation failures carry a sentinel so callers can distinguish user
// errors (wrong file) from processing errors.
var (
	ErrNotFound    = errors.New("pdfdoc: file does not exist")
	ErrEmptyFile   = errors.New("pdfdoc: file is empty")
	ErrTooLarge    = errors.New("pdfdoc: file exceeds the size limit")
	ErrNotPDF      = errors.New("pdfdoc: file does not have a .pdf extension")
	ErrNoPages     = errors.New("pdfdoc: document has no pages")
	ErrBadPageDims = errors.New("pdfdoc: document has invalid page dimensions")
	ErrNoImages    = errors.New("pdfdoc: no processable images on the first pages")
)

// Document is an open PDF with its pdfcpu context.
type Document struct {
	Path string
	ctx  *model.Context
}

// Open reads and parses a PDF file.
func Open(path string) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{Path: path, ctx: ctx}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// PageDims returns per-page media box dimensions in points.
func (d *Document) PageDims() ([]types.Dim, error) {
	dims, err := d.ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions: %w", err)
	}
	return dims, nil
}

// pageDict fetches the page dictionary for a 1-based page number.
func (d *Document) pageDict(pageNr int) (types.Dict, error) {
	dict, _, _, err := d.ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("reading page %d: %w", pageNr, err)
	}
	if dict == nil {
		return nil, fmt.Errorf("reading page %d: no page dictionary", pageNr)
	}
	return dict, nil
}

// Validate checks that the file at path is a processable PDF: it must
// exist, be non-empty and within maxSizeMB, carry a .pdf extension, parse
// as a PDF with at least one page of sane dimensions, and place at least
// one raster larger than 10% of the page on one of the first three pages.
func Validate(path string, maxSizeMB int) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if fi.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if maxSizeMB > 0 && fi.Size() > int64(maxSizeMB)*1024*1024 {
		return fmt.Errorf("%w: %s is %.1fMB, limit %dMB",
			ErrTooLarge, path, float64(fi.Size())/(1024*1024), maxSizeMB)
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}

	// Readability check independent of the parser.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	f.Close()

	doc, err := Open(path)
	if err != nil {
		return err
	}

	if doc.PageCount() < 1 {
		return fmt.Errorf("%w: %s", ErrNoPages, path)
	}

	dims, err := doc.PageDims()
	if err != nil {
		return err
	}
	for i, dim := range dims {
		if dim.Width <= 0 || dim.Height <= 0 {
			return fmt.Errorf("%w: page %d is %vx%v points", ErrBadPageDims, i+1, dim.Width, dim.Height)
		}
	}

	if !doc.hasProcessableImage(dims) {
		return fmt.Errorf("%w: %s", ErrNoImages, path)
	}
	return nil
}

// hasProcessableImage reports whether any of the first three pages places
// a raster wider and taller than 10% of the smaller page dimension.
func (d *Document) hasProcessableImage(dims []types.Dim) bool {
	pages := min(3, d.PageCount())
	for pageNr := 1; pageNr <= pages; pageNr++ {
		placed, err := d.placedImages(pageNr)
		if err != nil {
			continue
		}

		var pageW, pageH float64
		if pageNr-1 < len(dims) {
			pageW = dims[pageNr-1].Width
			pageH = dims[pageNr-1].Height
		}
		minSize := min(pageW, pageH) * 0.1

		for _, p := range placed {
			if p.rect.Width() > minSize && p.rect.Height() > minSize {
				return true
			}
		}
	}
	return false
}

// placedImages returns the image placements on a page: every Do of an
// image XObject with its placement rectangle in points.
func (d *Document) placedImages(pageNr int) ([]placement, error) {
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
	return placed, nil
}

// PageInfo summarizes one page for reporting.
type PageInfo struct {
	Number     int     `json:"number"`
	WidthPts   float64 `json:"width_pts"`
	HeightPts  float64 `json:"height_pts"`
	ImageCount int     `json:"image_count"`
}

// FileInfo summarizes a document for reporting.
type FileInfo struct {
	Path      string     `json:"path"`
	SizeBytes int64      `json:"size_bytes"`
	PageCount int        `json:"page_count"`
	Pages     []PageInfo `json:"pages"`
}

// Info reports page count, per-page dimensions, and image counts.
func Info(path string) (*FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	dims, err := doc.PageDims()
	if err != nil {
		return nil, err
	}

	info := &FileInfo{
		Path:      path,
		SizeBytes: fi.Size(),
		PageCount: doc.PageCount(),
	}

	for pageNr := 1; pageNr <= doc.PageCount(); pageNr++ {
		page := PageInfo{Number: pageNr}
		if pageNr-1 < len(dims) {
			page.WidthPts = dims[pageNr-1].Width
			page.HeightPts = dims[pageNr-1].Height
		}
		if placed, err := doc.placedImages(pageNr); err == nil {
			page.ImageCount = len(placed)
		}
		info.Pages = append(info.Pages, page)
	}
	return info, nil
}
