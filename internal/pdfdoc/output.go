package pdfdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// OutputPath builds the destination path for a processed document:
// <stem><suffix>[_<timestamp>].pdf, placed in outputDir when given and in
// the input's directory otherwise.
func OutputPath(inputPath, suffix string, timestamp bool, outputDir string, now time.Time) string {
	dir := filepath.Dir(inputPath)
	if outputDir != "" {
		dir = outputDir
	}

	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".pdf"
	}

	if timestamp {
		suffix = fmt.Sprintf("%s_%s", suffix, now.Format("20060102_150405"))
	}

	return filepath.Join(dir, stem+suffix+ext)
}

// BackupPath builds the sibling backup path: <stem>_backup.pdf.
func BackupPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"_backup"+ext)
}

// CreateBackup copies the input next to itself before processing and
// returns the backup path.
func CreateBackup(inputPath string) (string, error) {
	backupPath := BackupPath(inputPath)
	if err := copyFile(inputPath, backupPath); err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	return backupPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
