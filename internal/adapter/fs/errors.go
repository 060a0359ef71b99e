package fs

import "errors"

// Failure kinds reported by the reader and writer. Returned errors wrap one
// of these together with the offending path.
var (
	ErrNotTxt     = errors.New("only .txt files are supported")
	ErrNotFound   = errors.New("file does not exist")
	ErrPermission = errors.New("file is not readable")
	ErrEncoding   = errors.New("file is not valid UTF-8")
	ErrIsDir      = errors.New("path is a directory")
)
