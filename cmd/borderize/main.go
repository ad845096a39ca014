package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/printprep/borderize/internal/pdfdoc"
	"github.com/printprep/borderize/internal/settings"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `Usage: borderize [options] file.pdf ...

Adds a printable border around the dominant image of each PDF page.
The border is generated from the image's own edge pixels (or a solid
color / gradient, per -method) and placed behind the page content, so
the original image and any cut marks are never modified.

Inputs are PDF files given as arguments, or every PDF in a directory
given with -i. Options override the saved settings for this run; add
-save-settings to persist them.

Options:
`

func main() {
	// Handle --version before flag parsing so it works bare.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("borderize %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	s, err := settings.Load()
	if err != nil {
		log.Printf("warning: %v (using defaults)", err)
	}

	// Flag defaults come from the saved settings, so an unset flag
	// keeps the configured value.
	inputDir := flag.String("i", "", "process every PDF in this directory")
	width := flag.Float64("width", s.BorderWidthMM, "border width in mm (0-50)")
	source := flag.Float64("source", s.SourceWidthMM, "edge sampling depth in mm")
	method := flag.String("method", s.Method, "border method: edge_stretch, smart_fill, gradient_fade, solid_color")
	dpi := flag.Int("dpi", s.OutputDPI, "raster DPI for mm conversion (72-600)")
	colorHex := flag.String("color", s.SolidColor, "solid border color, #RRGGBB")
	fade := flag.Float64("fade", s.EdgeFade, "edge fade strength (0-0.9)")
	quality := flag.Int("quality", s.JPEGQuality, "JPEG quality for the border layer (1-100)")
	suffix := flag.String("suffix", s.FilenameSuffix, "output filename suffix")
	timestamp := flag.Bool("timestamp", s.IncludeTimestamp, "append a timestamp to output filenames")
	outDir := flag.String("o", s.OutputDir, "output directory (default: next to each input)")
	workers := flag.Int("workers", s.Workers, "number of files processed in parallel")
	noBackup := flag.Bool("no-backup", !s.BackupOriginal, "skip the <name>_backup.pdf copy")
	noMarks := flag.Bool("no-marks", !s.AutoDetectCutMarks, "skip cut-mark detection")
	saveSettings := flag.Bool("save-settings", false, "persist the effective options as the new defaults")
	showInfo := flag.Bool("info", false, "print document info as JSON instead of processing")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Fold the flags back into the settings struct; Load/Save clamping
	// applies to flag values the same way it applies to the file.
	s.BorderWidthMM = *width
	s.SourceWidthMM = *source
	s.Method = *method
	s.OutputDPI = *dpi
	s.SolidColor = *colorHex
	s.EdgeFade = *fade
	s.JPEGQuality = *quality
	s.FilenameSuffix = *suffix
	s.IncludeTimestamp = *timestamp
	s.OutputDir = *outDir
	s.Workers = *workers
	s.BackupOriginal = !*noBackup
	s.AutoDetectCutMarks = !*noMarks
	s.Normalize()

	if *saveSettings {
		if err := s.Save(); err != nil {
			log.Fatalf("saving settings: %v", err)
		}
		path, _ := settings.Path()
		log.Printf("settings saved to %s", path)
	}

	files, err := collectInputs(flag.Args(), *inputDir)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(files) == 0 {
		if *saveSettings {
			return
		}
		flag.Usage()
		os.Exit(2)
	}

	if *showInfo {
		if err := printInfo(files); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	opts := pdfdoc.Options{
		Border:           s.BorderConfig(),
		JPEGQuality:      s.JPEGQuality,
		Suffix:           s.FilenameSuffix,
		IncludeTimestamp: s.IncludeTimestamp,
		OutputDir:        s.OutputDir,
		Backup:           s.BackupOriginal,
		DetectMarks:      s.AutoDetectCutMarks,
		MaxFileSizeMB:    s.MaxFileSizeMB,
	}

	if s.OutputDir != "" {
		if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}
	}

	if failed := processAll(files, opts, s.Workers); failed > 0 {
		log.Printf("done: %d of %d files failed", failed, len(files))
		os.Exit(1)
	}
}

// processAll fans the files out to a fixed pool of workers, each
// handling whole documents. Returns the number of failures.
func processAll(files []string, opts pdfdoc.Options, workers int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res, err := pdfdoc.Process(path, opts)
				if err != nil {
					log.Printf("%s: %v", path, err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				log.Printf("%s: %d pages bordered, %d skipped -> %s",
					path, res.PagesProcessed, res.PagesSkipped, res.Output)
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
	return failed
}

// collectInputs merges explicit file arguments with the PDFs found in
// an optional input directory.
func collectInputs(args []string, dir string) ([]string, error) {
	files := append([]string(nil), args...)

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading input directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	return files, nil
}

// printInfo writes one JSON document summary per input file to stdout.
func printInfo(files []string) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, f := range files {
		info, err := pdfdoc.Info(f)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		if err := enc.Encode(info); err != nil {
			return err
		}
	}
	return nil
}
