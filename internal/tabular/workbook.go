package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view over a tabular container.
type Workbook interface {
	Sheets() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

// Open opens a workbook by extension: .csv is read as a single sheet, every
// other extension is handed to the XLSX reader.
func Open(path string) (Workbook, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return openCSV(path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}

	return &xlsxWorkbook{file: f}, nil
}

type xlsxWorkbook struct {
	file *excelize.File
}

func (w *xlsxWorkbook) Sheets() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return rows, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

type csvWorkbook struct {
	name string
	rows [][]string
}

func openCSV(path string) (*csvWorkbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &csvWorkbook{name: name, rows: rows}, nil
}

func (w *csvWorkbook) Sheets() []string {
	return []string{w.name}
}

func (w *csvWorkbook) Rows(sheet string) ([][]string, error) {
	if sheet != w.name {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	return w.rows, nil
}

func (w *csvWorkbook) Close() error {
	return nil
}
