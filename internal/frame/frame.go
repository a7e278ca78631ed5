// Package frame provides an in-memory table of string cells with ordered,
// named columns. It covers the operations the standardization pipeline
// needs: rename, drop, column-wide transforms, concatenation, exact-row
// deduplication, and reshaping to a fixed column order.
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is a columnar record set. All cells are strings; source files are
// read without type coercion so values like zip codes keep leading zeros.
type Frame struct {
	cols []string
	rows [][]string
}

// New returns an empty frame with the given column set.
func New(cols []string) *Frame {
	return &Frame{cols: append([]string(nil), cols...)}
}

// FromRows builds a frame from a header and data rows.
// Every row must have exactly one cell per column.
func FromRows(cols []string, rows [][]string) (*Frame, error) {
	f := New(cols)
	for i, row := range rows {
		if err := f.Append(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return f, nil
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Row returns the i'th data row. The slice is shared with the frame;
// callers must not modify it.
func (f *Frame) Row(i int) []string {
	return f.rows[i]
}

// Has reports whether the frame contains a column with the given name.
func (f *Frame) Has(col string) bool {
	return f.index(col) >= 0
}

// Cell returns the value at row i in the named column.
func (f *Frame) Cell(i int, col string) (string, error) {
	j := f.index(col)
	if j < 0 {
		return "", fmt.Errorf("no column %q", col)
	}
	return f.rows[i][j], nil
}

// Append adds a data row. The row must match the frame's width.
func (f *Frame) Append(row []string) error {
	if len(row) != len(f.cols) {
		return fmt.Errorf("row has %d cells, frame has %d columns", len(row), len(f.cols))
	}
	f.rows = append(f.rows, append([]string(nil), row...))
	return nil
}

// AddColumn appends a new column with every cell set to fill.
func (f *Frame) AddColumn(name, fill string) error {
	if f.Has(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	f.cols = append(f.cols, name)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], fill)
	}
	return nil
}

// SetColumn sets every cell of the named column to fill, appending the
// column first if the frame does not have it.
func (f *Frame) SetColumn(name, fill string) {
	j := f.index(name)
	if j < 0 {
		f.cols = append(f.cols, name)
		for i := range f.rows {
			f.rows[i] = append(f.rows[i], fill)
		}
		return
	}
	for i := range f.rows {
		f.rows[i][j] = fill
	}
}

// Rename changes column names according to mapping (old name -> new name).
// Every old name must exist in the frame.
func (f *Frame) Rename(mapping map[string]string) error {
	for old, next := range mapping {
		j := f.index(old)
		if j < 0 {
			return fmt.Errorf("no column %q to rename", old)
		}
		f.cols[j] = next
	}
	return nil
}

// Drop removes the named columns. It is an error for any of them to be
// absent; use DropIfPresent for columns that only some files carry.
func (f *Frame) Drop(cols ...string) error {
	for _, col := range cols {
		if !f.Has(col) {
			return fmt.Errorf("no column %q to drop", col)
		}
		f.dropAt(f.index(col))
	}
	return nil
}

// DropIfPresent removes any of the named columns that exist, silently
// skipping the rest.
func (f *Frame) DropIfPresent(cols ...string) {
	for _, col := range cols {
		if j := f.index(col); j >= 0 {
			f.dropAt(j)
		}
	}
}

// Map replaces every value in the named column with fn(value).
func (f *Frame) Map(col string, fn func(string) string) error {
	j := f.index(col)
	if j < 0 {
		return fmt.Errorf("no column %q to map", col)
	}
	for i := range f.rows {
		f.rows[i][j] = fn(f.rows[i][j])
	}
	return nil
}

// MapAll replaces every cell in the frame with fn(value).
func (f *Frame) MapAll(fn func(string) string) {
	for i := range f.rows {
		for j := range f.rows[i] {
			f.rows[i][j] = fn(f.rows[i][j])
		}
	}
}

// Reindex reshapes the frame to exactly the given columns, in the given
// order. Existing columns are carried over, missing ones are added with
// empty values, and columns not in the list are discarded.
func (f *Frame) Reindex(cols []string) {
	src := make([]int, len(cols))
	for k, col := range cols {
		src[k] = f.index(col)
	}
	rows := make([][]string, len(f.rows))
	for i, row := range f.rows {
		next := make([]string, len(cols))
		for k, j := range src {
			if j >= 0 {
				next[k] = row[j]
			}
		}
		rows[i] = next
	}
	f.cols = append([]string(nil), cols...)
	f.rows = rows
}

// DropDuplicates removes rows whose cells exactly match an earlier row,
// keeping the first occurrence and preserving order otherwise.
func (f *Frame) DropDuplicates() {
	seen := make(map[string]bool, len(f.rows))
	kept := f.rows[:0]
	for _, row := range f.rows {
		key := rowKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	f.rows = kept
}

// rowKey builds a duplicate-detection key. Cells are length-prefixed so
// no cell content, separator bytes included, can make two distinct rows
// produce the same key.
func rowKey(row []string) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(strconv.Itoa(len(cell)))
		b.WriteByte(':')
		b.WriteString(cell)
	}
	return b.String()
}

// Concat vertically concatenates frames with identical column sets,
// preserving input order. Concatenating zero frames yields a frame with no
// columns and no rows.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return New(nil), nil
	}
	out := New(frames[0].cols)
	for i, f := range frames {
		if !equalColumns(out.cols, f.cols) {
			return nil, fmt.Errorf("frame %d columns %v do not match %v", i+1, f.cols, out.cols)
		}
		for _, row := range f.rows {
			out.rows = append(out.rows, append([]string(nil), row...))
		}
	}
	return out, nil
}

func (f *Frame) index(col string) int {
	for j, c := range f.cols {
		if c == col {
			return j
		}
	}
	return -1
}

func (f *Frame) dropAt(j int) {
	f.cols = append(f.cols[:j], f.cols[j+1:]...)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i][:j], f.rows[i][j+1:]...)
	}
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
