package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"ads-etl/internal/core/domain"
)

// maxXLSColumns is the BIFF8 column limit.
const maxXLSColumns = 256

// readXLSX loads the first sheet of an Office Open XML workbook.
func readXLSX(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return fromRecords(rows)
}

// readXLS loads the first sheet of a legacy BIFF workbook.
func readXLS(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, err
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb == nil {
		return domain.Table{}, errors.New("failed to open workbook: no workbook stream")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return domain.Table{}, errors.New("workbook has no sheets")
	}

	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			continue
		}
		records = append(records, rowCells(row))
	}
	return fromRecords(records)
}

// sheetRow returns nil for a row the sheet does not hold.
// xls.WorkSheet.Row dereferences the missing map entry.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// rowCells reads the cells of a row. The width comes from the ROW record;
// rows written without one are scanned up to the format limit and
// trimmed.
func rowCells(row *xls.Row) []string {
	width := row.LastCol()
	if width <= 0 {
		width = maxXLSColumns
	}
	cells := make([]string, width)
	for j := range cells {
		cells[j] = row.Col(j)
	}
	for len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
