// Package settings persists user preferences for the border tool.
//
// Settings live in a single JSON file under the platform config directory
// (for example ~/.config/borderize/settings.json on Linux). Loading merges
// the file over the built-in defaults, so a partial file is valid, and
// out-of-range values are clamped rather than rejected: a damaged settings
// file must never stop the tool from processing documents.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/printprep/borderize/internal/border"
)

// Default values mirror the tool's long-standing behavior: a 3mm white
// border sampled from a 1mm edge strip at print resolution.
const (
	DefaultSuffix      = "_bordered"
	DefaultSolidColor  = "#FFFFFF"
	DefaultJPEGQuality = 85
	DefaultWorkers     = 2
	DefaultMaxFileMB   = 100

	maxBorderWidthMM = 50.0
	minDPI           = 72
	maxDPI           = 600
)

// Settings holds every persisted preference.
type Settings struct {
	BorderWidthMM      float64 `json:"border_width_mm"`
	SourceWidthMM      float64 `json:"source_width_mm"`
	Method             string  `json:"method"`
	OutputDPI          int     `json:"output_dpi"`
	SolidColor         string  `json:"solid_color"`
	EdgeFade           float64 `json:"edge_fade"`
	AutoDetectCutMarks bool    `json:"auto_detect_cut_marks"`
	BackupOriginal     bool    `json:"backup_original"`
	JPEGQuality        int     `json:"jpeg_quality"`
	FilenameSuffix     string  `json:"filename_suffix"`
	IncludeTimestamp   bool    `json:"include_timestamp"`
	OutputDir          string  `json:"output_dir"`
	MaxFileSizeMB      int     `json:"max_file_size_mb"`
	Workers            int     `json:"workers"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		BorderWidthMM:      border.DefaultBorderWidthMM,
		SourceWidthMM:      border.DefaultSourceWidthMM,
		Method:             string(border.MethodEdgeStretch),
		OutputDPI:          border.DefaultOutputDPI,
		SolidColor:         DefaultSolidColor,
		EdgeFade:           0,
		AutoDetectCutMarks: true,
		BackupOriginal:     true,
		JPEGQuality:        DefaultJPEGQuality,
		FilenameSuffix:     DefaultSuffix,
		IncludeTimestamp:   false,
		OutputDir:          "",
		MaxFileSizeMB:      DefaultMaxFileMB,
		Workers:            DefaultWorkers,
	}
}

// Path returns the settings file location under the platform config
// directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "borderize", "settings.json"), nil
}

// Load reads the settings file from its default location.
//
// A missing file yields the defaults with no error. A corrupt or unreadable
// file yields the defaults together with the error, so callers can warn and
// keep going.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path, merging the file over the
// defaults and clamping every field into its valid range.
func LoadFrom(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}

	s.Normalize()
	return s, nil
}

// Save writes the settings to their default location, creating the config
// directory if needed.
func (s Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo writes the settings as indented JSON to the given path. The write
// is atomic: data goes to a temp file in the same directory first, then a
// rename replaces the old file.
func (s Settings) SaveTo(path string) error {
	s.Normalize()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing settings file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}

// Normalize clamps every field into its valid range and replaces unusable
// values with the defaults. Load and Save apply it automatically; callers
// that set fields directly (flag overrides) apply it themselves.
func (s *Settings) Normalize() {
	if s.BorderWidthMM <= 0 {
		s.BorderWidthMM = border.DefaultBorderWidthMM
	} else if s.BorderWidthMM > maxBorderWidthMM {
		s.BorderWidthMM = maxBorderWidthMM
	}

	if s.SourceWidthMM <= 0 {
		s.SourceWidthMM = border.DefaultSourceWidthMM
	} else if s.SourceWidthMM > maxBorderWidthMM {
		s.SourceWidthMM = maxBorderWidthMM
	}

	s.Method = string(border.ParseMethod(s.Method))

	if s.OutputDPI < minDPI {
		if s.OutputDPI <= 0 {
			s.OutputDPI = border.DefaultOutputDPI
		} else {
			s.OutputDPI = minDPI
		}
	} else if s.OutputDPI > maxDPI {
		s.OutputDPI = maxDPI
	}

	if s.EdgeFade < 0 {
		s.EdgeFade = 0
	} else if s.EdgeFade > 0.9 {
		s.EdgeFade = 0.9
	}

	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		s.JPEGQuality = DefaultJPEGQuality
	}

	s.FilenameSuffix = sanitizeSuffix(s.FilenameSuffix)

	if s.MaxFileSizeMB <= 0 {
		s.MaxFileSizeMB = DefaultMaxFileMB
	}

	if s.Workers < 1 {
		s.Workers = DefaultWorkers
	}

	if _, err := colorful.Hex(s.SolidColor); err != nil {
		s.SolidColor = DefaultSolidColor
	}
}

// BorderColor parses the configured solid color. Invalid values fall back
// to white, matching the border engine's own defaulting.
func (s Settings) BorderColor() color.NRGBA {
	c, err := colorful.Hex(s.SolidColor)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// BorderConfig assembles the border engine configuration from the
// persisted preferences.
func (s Settings) BorderConfig() border.Config {
	return border.Config{
		Method:        border.ParseMethod(s.Method),
		BorderWidthMM: s.BorderWidthMM,
		SourceWidthMM: s.SourceWidthMM,
		OutputDPI:     s.OutputDPI,
		SolidColor:    s.BorderColor(),
		EdgeFade:      s.EdgeFade,
	}
}

// sanitizeSuffix strips characters that are not safe in a filename
// fragment. An empty result falls back to the default suffix.
func sanitizeSuffix(suffix string) string {
	var b strings.Builder
	for _, r := range suffix {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultSuffix
	}
	return b.String()
}
