package tabular

import (
	"fmt"
	"strings"
)

const (
	// DefaultSheetIndex is the 0-based sheet used when no header row is found.
	DefaultSheetIndex = 2
	// DefaultHeaderRow is the 1-based header row used when no header row is found.
	DefaultHeaderRow = 13
)

// sheetKeywords select the sheets scanned for the header row.
var sheetKeywords = []string{"tocanonical", "mapping", "transform", "(t)"}

// LocateOptions is the manual fallback used when scanning finds nothing.
type LocateOptions struct {
	Sheet     string
	HeaderRow int
}

// Locate finds the field table inside a workbook.
//
// Sheets whose names contain one of the mapping keywords are scanned first
// (all sheets when none does) for the first row with a cell containing
// OccurrenceMarker. When scanning fails the configured sheet and header row
// are used, defaulting to the third sheet and row 13.
func Locate(wb Workbook, opts LocateOptions) (Table, error) {
	sheets := wb.Sheets()

	for _, sheet := range candidateSheets(sheets) {
		rows, err := wb.Rows(sheet)
		if err != nil {
			return Table{}, err
		}

		if idx := headerIndex(rows); idx >= 0 {
			t := New(rows[idx], rows[idx+1:])
			t.Sheet = sheet
			t.HeaderRow = idx + 1

			return t, nil
		}
	}

	return fallback(wb, sheets, opts)
}

func fallback(wb Workbook, sheets []string, opts LocateOptions) (Table, error) {
	sheet := opts.Sheet
	if sheet == "" {
		if len(sheets) <= DefaultSheetIndex {
			return Table{}, fmt.Errorf("%w: no marker in %d sheet(s) and no fallback sheet", ErrHeaderNotFound, len(sheets))
		}

		sheet = sheets[DefaultSheetIndex]
	}

	headerRow := opts.HeaderRow
	if headerRow <= 0 {
		headerRow = DefaultHeaderRow
	}

	rows, err := wb.Rows(sheet)
	if err != nil {
		return Table{}, err
	}

	if len(rows) < headerRow {
		return Table{}, fmt.Errorf("%w: sheet %q has %d row(s), header row is %d",
			ErrHeaderNotFound, sheet, len(rows), headerRow)
	}

	t := New(rows[headerRow-1], rows[headerRow:])
	t.Sheet = sheet
	t.HeaderRow = headerRow

	return t, nil
}

func candidateSheets(sheets []string) []string {
	var matched []string

	for _, s := range sheets {
		lower := strings.ToLower(s)
		for _, kw := range sheetKeywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, s)

				break
			}
		}
	}

	if len(matched) == 0 {
		return sheets
	}

	return matched
}

func headerIndex(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, OccurrenceMarker) {
				return i
			}
		}
	}

	return -1
}

// Read opens path, locates its field table and closes the workbook.
func Read(path string, opts LocateOptions) (Table, error) {
	wb, err := Open(path)
	if err != nil {
		return Table{}, err
	}
	defer wb.Close()

	t, err := Locate(wb, opts)
	if err != nil {
		return Table{}, fmt.Errorf("locating field table in %s: %w", path, err)
	}

	t.Source = path

	return t, nil
}
