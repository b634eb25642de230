package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"ads-etl/internal/core/domain"
)

type readFunc func(path string) (domain.Table, error)

// Extractor reads flat files into tables, choosing a reader by file
// extension. It implements port.Extractor.
type Extractor struct {
	readers map[string]readFunc
}

// NewExtractor returns an extractor that understands .csv, .xls and .xlsx.
func NewExtractor() *Extractor {
	return &Extractor{
		readers: map[string]readFunc{
			".csv":  readCSV,
			".xls":  readXLS,
			".xlsx": readXLSX,
		},
	}
}

// Extract reads the file at path. The extension is matched
// case-insensitively; any other extension yields a
// *domain.UnsupportedFormatError and an empty table.
func (e *Extractor) Extract(path string) (domain.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	read, ok := e.readers[ext]
	if !ok {
		return domain.Table{}, &domain.UnsupportedFormatError{Path: path, Ext: ext}
	}

	t, err := read(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}
