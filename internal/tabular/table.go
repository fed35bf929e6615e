package tabular

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound is returned when no sheet contains a usable header row.
var ErrHeaderNotFound = errors.New("header row not found")

// OccurrenceMarker is the header text that separates hierarchy columns from
// attribute columns.
const OccurrenceMarker = "Source Occurs"

// Table is a located field table: the header row and every row below it.
// Rows are padded with empty cells to the header width.
type Table struct {
	Source    string
	Sheet     string
	HeaderRow int // 1-based row number of Header inside Sheet
	Header    []string
	Rows      [][]string
}

// New builds a table from a header and data rows, trimming header labels and
// padding short rows.
func New(header []string, rows [][]string) Table {
	h := make([]string, len(header))
	for i, v := range header {
		h[i] = strings.TrimSpace(v)
	}

	padded := make([][]string, 0, len(rows))
	for _, row := range rows {
		padded = append(padded, pad(row, len(h)))
	}

	return Table{Header: h, Rows: padded}
}

// Cells returns the header followed by all rows.
func (t Table) Cells() [][]string {
	cells := make([][]string, 0, len(t.Rows)+1)
	cells = append(cells, t.Header)
	cells = append(cells, t.Rows...)

	return cells
}

// OccurrenceColumn returns the index of the first header containing
// OccurrenceMarker, or -1.
func (t Table) OccurrenceColumn() int {
	for i, h := range t.Header {
		if strings.Contains(h, OccurrenceMarker) {
			return i
		}
	}

	return -1
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		out := make([]string, len(row))
		copy(out, row)

		return out
	}

	out := make([]string, width)
	copy(out, row)

	return out
}
