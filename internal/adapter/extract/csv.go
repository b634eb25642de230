package extract

import (
	"encoding/csv"
	"os"

	"ads-etl/internal/core/domain"
)

// readCSV loads a comma separated file whose first line is the header.
// dataframe.ReadCSV rejects a file without data rows, so the records are
// read here and handed to fromRecords.
func readCSV(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return domain.Table{}, err
	}
	return fromRecords(records)
}
