package port

import "ads-etl/internal/core/domain"

// Extractor reads a source file into a table. Implementations return a
// *domain.UnsupportedFormatError for files they have no reader for.
type Extractor interface {
	Extract(path string) (domain.Table, error)
}
