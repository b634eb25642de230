package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("failed to extract file into data frame")
	ErrMissingColumn     = errors.New("missing column")
	ErrEmptyTable        = errors.New("empty table")
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrRunNotFound       = errors.New("run not found")
)

// UnsupportedFormatError is returned by the extractor for a file whose
// extension has no reader. It matches ErrUnsupportedFormat with errors.Is.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported extension %q (%s)", ErrUnsupportedFormat, e.Ext, e.Path)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
