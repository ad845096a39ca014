package pdfdoc

import (
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/printprep/borderize/internal/border"
	"github.com/printprep/borderize/internal/cutmarks"
)

// Options controls document processing.
type Options struct {
	// Border configures the generated border content.
	Border border.Config

	// JPEGQuality is used when encoding the border layer (1-100).
	JPEGQuality int

	// Suffix, IncludeTimestamp and OutputDir control output naming.
	Suffix           string
	IncludeTimestamp bool
	OutputDir        string

	// Backup copies the input to <stem>_backup.pdf before processing.
	Backup bool

	// DetectMarks runs cut-mark detection on each center image and logs
	// the derived safe zone.
	DetectMarks bool

	// MaxFileSizeMB bounds the input size during validation.
	MaxFileSizeMB int
}

// Result summarizes one processed document.
type Result struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	BackupPath string `json:"backup_path,omitempty"`

	PagesProcessed int `json:"pages_processed"`
	PagesSkipped   int `json:"pages_skipped"`
}

// Process validates a document, generates border content for every page
// with a center image, and writes the augmented copy. Pages without a
// qualifying image pass through untouched; a document where no page
// qualifies is still copied to the output path so batch runs always
// produce a full output set.
func Process(inputPath string, opts Options) (*Result, error) {
	if err := Validate(inputPath, opts.MaxFileSizeMB); err != nil {
		return nil, err
	}

	res := &Result{
		Input:  inputPath,
		Output: OutputPath(inputPath, opts.Suffix, opts.IncludeTimestamp, opts.OutputDir, time.Now()),
	}

	if opts.Backup {
		backupPath, err := CreateBackup(inputPath)
		if err != nil {
			return nil, err
		}
		res.BackupPath = backupPath
		log.Printf("created backup: %s", backupPath)
	}

	doc, err := Open(inputPath)
	if err != nil {
		return nil, err
	}

	watermarks := make(map[int]*model.Watermark)
	var tempFiles []string
	defer func() {
		for _, f := range tempFiles {
			os.Remove(f)
		}
	}()

	var detector *cutmarks.Detector
	if opts.DetectMarks {
		detector = &cutmarks.Detector{}
	}

	borderPts := border.MMToPoints(opts.Border.BorderWidthMM)
	if opts.Border.BorderWidthMM <= 0 {
		borderPts = border.MMToPoints(border.DefaultBorderWidthMM)
	}

	for pageNr := 1; pageNr <= doc.PageCount(); pageNr++ {
		center, err := doc.FindCenterImage(pageNr)
		if err != nil {
			log.Printf("page %d: skipping: %v", pageNr, err)
			res.PagesSkipped++
			continue
		}
		if center == nil {
			log.Printf("page %d: no center image found, skipping", pageNr)
			res.PagesSkipped++
			continue
		}

		if detector != nil {
			if marks, err := detector.Detect(center.Image); err == nil && marks.Detected {
				log.Printf("page %d: %d cut marks detected, safe zone margins %+v",
					pageNr, len(marks.Marks), marks.SafeZone.Margins)
			}
		}

		canvas, err := border.Generate(center.Image, opts.Border)
		if err != nil {
			log.Printf("page %d: border generation failed: %v", pageNr, err)
			res.PagesSkipped++
			continue
		}

		pageRect, err := doc.pageDim(pageNr)
		if err != nil {
			return nil, err
		}

		wm, tempFile, err := backgroundWatermark(canvas, center.Rect, pageRect, borderPts, opts.JPEGQuality)
		if err != nil {
			log.Printf("page %d: border placement failed: %v", pageNr, err)
			res.PagesSkipped++
			continue
		}
		tempFiles = append(tempFiles, tempFile)
		watermarks[pageNr] = wm
		res.PagesProcessed++

		log.Printf("page %d: border layer %s placed behind %s", pageNr, canvasSize(canvas), center.Name)
	}

	if len(watermarks) == 0 {
		if err := copyFile(inputPath, res.Output); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		return res, nil
	}

	if err := api.AddWatermarksMapFile(inputPath, res.Output, watermarks, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("writing border layers: %w", err)
	}
	return res, nil
}

// backgroundWatermark encodes the border canvas as JPEG and wraps it in a
// pdfcpu background watermark over the target rectangle: the original
// placement expanded by the border width and clipped to the page.
// onTop=false keeps the layer behind all existing page content.
//
// pdfcpu scales image watermarks uniformly, so the absolute scale is
// chosen to fit the target rectangle; a sub-point mismatch on one axis
// stays hidden behind the original image.
func backgroundWatermark(canvas *image.NRGBA, placed, page Rect, borderPts float64, quality int) (*model.Watermark, string, error) {
	target := placed.Expand(borderPts).Intersect(page)
	if target.Width() <= 0 || target.Height() <= 0 {
		return nil, "", fmt.Errorf("border target rectangle is empty")
	}

	tmp, err := os.CreateTemp("", "borderize-*.jpg")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp image: %w", err)
	}
	tmpName := tmp.Name()

	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(tmp, canvas, &jpeg.Options{Quality: quality}); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, "", fmt.Errorf("encoding border layer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, "", fmt.Errorf("writing border layer: %w", err)
	}

	w := float64(canvas.Bounds().Dx())
	h := float64(canvas.Bounds().Dy())
	scale := min(target.Width()/w, target.Height()/h)

	desc := fmt.Sprintf("pos:c, rot:0, op:1, scale:%.6f abs", scale)
	wm, err := pdfcpu.ParseImageWatermarkDetails(tmpName, desc, false, types.POINTS)
	if err != nil {
		os.Remove(tmpName)
		return nil, "", fmt.Errorf("building watermark: %w", err)
	}

	// Shift from the page center to the target center.
	tx, ty := target.Center()
	wm.Dx = tx - page.Width()/2
	wm.Dy = ty - page.Height()/2

	return wm, tmpName, nil
}

func canvasSize(canvas *image.NRGBA) string {
	return fmt.Sprintf("%dx%d", canvas.Bounds().Dx(), canvas.Bounds().Dy())
}
