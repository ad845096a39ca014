package pdfdoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_MissingFile(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "absent.pdf"), 100)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestValidate_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Validate(path, 100)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("got %v, want ErrEmptyFile", err)
	}
}

func TestValidate_WrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Validate(path, 100)
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("got %v, want ErrNotPDF", err)
	}
}

func TestValidate_ExtensionCaseInsensitive(t *testing.T) {
	// An uppercase .PDF must pass the extension check and reach the
	// parser, which then rejects the garbage payload.
	path := filepath.Join(t.TempDir(), "CARD.PDF")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Validate(path, 100)
	if errors.Is(err, ErrNotPDF) {
		t.Errorf("uppercase extension rejected: %v", err)
	}
	if err == nil {
		t.Error("garbage payload should fail to parse")
	}
}

func TestValidate_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 2*1024*1024), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Validate(path, 1)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}

	// A zero limit disables the size check.
	if err := Validate(path, 0); errors.Is(err, ErrTooLarge) {
		t.Errorf("limit 0 should not enforce a size cap: %v", err)
	}
}

func TestOpen_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected parse error")
	}
}
