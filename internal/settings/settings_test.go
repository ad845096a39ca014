package settings

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.BorderWidthMM != 3.0 {
		t.Errorf("BorderWidthMM: got %v, want 3.0", s.BorderWidthMM)
	}
	if s.SourceWidthMM != 1.0 {
		t.Errorf("SourceWidthMM: got %v, want 1.0", s.SourceWidthMM)
	}
	if s.Method != "edge_stretch" {
		t.Errorf("Method: got %q, want edge_stretch", s.Method)
	}
	if s.OutputDPI != 300 {
		t.Errorf("OutputDPI: got %d, want 300", s.OutputDPI)
	}
	if !s.AutoDetectCutMarks || !s.BackupOriginal {
		t.Error("Cut-mark detection and backups should default to on")
	}
	if s.FilenameSuffix != "_bordered" {
		t.Errorf("FilenameSuffix: got %q, want _bordered", s.FilenameSuffix)
	}
	if s.Workers != 2 {
		t.Errorf("Workers: got %d, want 2", s.Workers)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Missing file must not error, got %v", err)
	}
	if s != Default() {
		t.Errorf("Missing file should yield defaults, got %+v", s)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"border_width_mm": 5.5, "method": "solid_color"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if s.BorderWidthMM != 5.5 {
		t.Errorf("BorderWidthMM: got %v, want 5.5", s.BorderWidthMM)
	}
	if s.Method != "solid_color" {
		t.Errorf("Method: got %q, want solid_color", s.Method)
	}
	// Fields absent from the file keep their defaults.
	if s.OutputDPI != 300 || s.FilenameSuffix != "_bordered" || !s.BackupOriginal {
		t.Errorf("Unset fields should keep defaults, got %+v", s)
	}
}

func TestLoadFrom_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err == nil {
		t.Fatal("Corrupt file should report an error")
	}
	if s != Default() {
		t.Errorf("Corrupt file should yield defaults, got %+v", s)
	}
}

func TestLoadFrom_ClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	raw := `{
		"border_width_mm": 400,
		"source_width_mm": -2,
		"method": "hologram",
		"output_dpi": 10000,
		"solid_color": "not-a-color",
		"edge_fade": 3.5,
		"jpeg_quality": 0,
		"filename_suffix": "../..//evil suffix!",
		"workers": -4
	}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if s.BorderWidthMM != 50 {
		t.Errorf("BorderWidthMM: got %v, want cap 50", s.BorderWidthMM)
	}
	if s.SourceWidthMM != 1.0 {
		t.Errorf("SourceWidthMM: got %v, want default 1.0", s.SourceWidthMM)
	}
	if s.Method != "edge_stretch" {
		t.Errorf("Method: got %q, want edge_stretch fallback", s.Method)
	}
	if s.OutputDPI != 600 {
		t.Errorf("OutputDPI: got %d, want cap 600", s.OutputDPI)
	}
	if s.SolidColor != "#FFFFFF" {
		t.Errorf("SolidColor: got %q, want #FFFFFF fallback", s.SolidColor)
	}
	if s.EdgeFade != 0.9 {
		t.Errorf("EdgeFade: got %v, want cap 0.9", s.EdgeFade)
	}
	if s.JPEGQuality != 85 {
		t.Errorf("JPEGQuality: got %d, want default 85", s.JPEGQuality)
	}
	if s.FilenameSuffix != "....evilsuffix" {
		t.Errorf("FilenameSuffix: got %q, want sanitized %q", s.FilenameSuffix, "....evilsuffix")
	}
	if s.Workers != 2 {
		t.Errorf("Workers: got %d, want default 2", s.Workers)
	}
}

func TestSaveTo_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	s := Default()
	s.BorderWidthMM = 4.25
	s.Method = "gradient_fade"
	s.SolidColor = "#336699"
	s.Workers = 8

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got != s {
		t.Errorf("Roundtrip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestSaveTo_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	first := Default()
	if err := first.SaveTo(path); err != nil {
		t.Fatalf("first SaveTo failed: %v", err)
	}

	second := Default()
	second.OutputDPI = 150
	if err := second.SaveTo(path); err != nil {
		t.Fatalf("second SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.OutputDPI != 150 {
		t.Errorf("OutputDPI: got %d, want 150", got.OutputDPI)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the settings file, found %d entries", len(entries))
	}
}

func TestBorderColor(t *testing.T) {
	s := Default()
	s.SolidColor = "#336699"

	want := color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}
	if got := s.BorderColor(); got != want {
		t.Errorf("BorderColor: got %v, want %v", got, want)
	}

	s.SolidColor = "garbage"
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got := s.BorderColor(); got != white {
		t.Errorf("Invalid color should yield white, got %v", got)
	}
}

func TestBorderConfig(t *testing.T) {
	s := Default()
	s.Method = "solid_color"
	s.BorderWidthMM = 2.5
	s.OutputDPI = 150
	s.SolidColor = "#FF0000"

	cfg := s.BorderConfig()
	if string(cfg.Method) != "solid_color" {
		t.Errorf("Method: got %q, want solid_color", cfg.Method)
	}
	if cfg.BorderWidthMM != 2.5 || cfg.OutputDPI != 150 {
		t.Errorf("Geometry: got %v mm at %d dpi", cfg.BorderWidthMM, cfg.OutputDPI)
	}
	if cfg.SolidColor != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("SolidColor: got %v, want red", cfg.SolidColor)
	}
}

func TestSanitizeSuffix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"_bordered", "_bordered"},
		{"bleed-v2", "bleed-v2"},
		{"has spaces", "hasspaces"},
		{"a/b\\c", "abc"},
		{"", "_bordered"},
		{"///", "_bordered"},
	}

	for _, tt := range tests {
		if got := sanitizeSuffix(tt.in); got != tt.want {
			t.Errorf("sanitizeSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
