package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"plagcheck/internal/adapter/similarity"
)

// Writer stores formatted scores in result files.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteResult writes score with two decimals to path, creating parent
// directories. The write goes through a temp file and a rename, so path
// either holds the complete result or is untouched.
func (w *Writer) WriteResult(path string, score float64) error {
	if !HasTxtExt(path) {
		return fmt.Errorf("%w: %s", ErrNotTxt, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create result directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".result-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp result: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(similarity.Format(score)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write result: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write result: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
