// Package tabular reads field-design workbooks and locates the header row of
// the field table inside them.
//
// Two containers are supported: XLSX workbooks (every sheet) and CSV files
// (a single sheet named after the file). The extraction code only consumes
// the resulting Table; it never sees the container.
package tabular
