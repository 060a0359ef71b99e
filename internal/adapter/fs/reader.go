package fs

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// HasTxtExt reports whether path ends in .txt, ignoring case.
func HasTxtExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

// Reader loads UTF-8 text documents.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDocument validates path and returns its content. A leading byte order
// mark is dropped.
func (r *Reader) ReadDocument(path string) (string, error) {
	if !HasTxtExt(path) {
		return "", fmt.Errorf("%w: %s", ErrNotTxt, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", classify(err, path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify(err, path)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, path)
	}
	return string(data), nil
}

func classify(err error, path string) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, iofs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
