package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/plainsdata/licenseprep/internal/frame"
)

// ReadWorkbook reads every sheet of an xlsx workbook into a single frame.
// The sheets carry no header row, so the caller supplies the column names;
// each sheet must be shaped identically. Sheets are concatenated in
// workbook order. Rows with fewer cells than columns are right-padded with
// empty strings (trailing blank cells are not stored in the file); rows
// with more cells than columns are an error.
func ReadWorkbook(path string, cols []string) (*frame.Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer wb.Close()

	f := frame.New(cols)
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading %s sheet %q: %w", path, sheet, err)
		}
		for i, row := range rows {
			if isEmptyRow(row) {
				continue
			}
			if len(row) > len(cols) {
				return nil, fmt.Errorf("reading %s sheet %q row %d: %d cells, expected at most %d",
					path, sheet, i+1, len(row), len(cols))
			}
			for len(row) < len(cols) {
				row = append(row, "")
			}
			if err := f.Append(row); err != nil {
				return nil, fmt.Errorf("reading %s sheet %q row %d: %w", path, sheet, i+1, err)
			}
		}
	}
	return f, nil
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
