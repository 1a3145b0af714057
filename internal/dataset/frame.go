// Package dataset provides the in-memory tabular frame shared by the
// preprocessing steps. Cells are kept as strings exactly as read from CSV;
// numeric interpretation happens at the point of use.
package dataset

// Frame is an ordered set of named columns with string-cell rows.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// NewFrame creates an empty frame with the given column order.
func NewFrame(columns []string) *Frame {
	return &Frame{
		Columns: append([]string(nil), columns...),
	}
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (f *Frame) ColumnIndex(name string) int {
	for i, col := range f.Columns {
		if col == name {
			return i
		}
	}

	return -1
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	return f.ColumnIndex(name) >= 0
}

// HasColumns reports whether every named column exists.
func (f *Frame) HasColumns(names ...string) bool {
	for _, name := range names {
		if !f.HasColumn(name) {
			return false
		}
	}

	return true
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// AppendRow adds a data row. The caller is responsible for matching the
// column count; CSV ingestion guarantees this for loaded frames.
func (f *Frame) AppendRow(cells []string) {
	f.Rows = append(f.Rows, cells)
}

// AddColumn appends a new column with the given per-row values.
func (f *Frame) AddColumn(name string, values []string) {
	f.Columns = append(f.Columns, name)
	for i := range f.Rows {
		val := ""
		if i < len(values) {
			val = values[i]
		}

		f.Rows[i] = append(f.Rows[i], val)
	}
}

// DropColumn removes the named column and its cells. Missing columns are
// ignored.
func (f *Frame) DropColumn(name string) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return
	}

	f.Columns = append(f.Columns[:idx], f.Columns[idx+1:]...)
	for i, row := range f.Rows {
		if idx < len(row) {
			f.Rows[i] = append(row[:idx], row[idx+1:]...)
		}
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := NewFrame(f.Columns)
	clone.Rows = make([][]string, 0, len(f.Rows))

	for _, row := range f.Rows {
		clone.Rows = append(clone.Rows, append([]string(nil), row...))
	}

	return clone
}
