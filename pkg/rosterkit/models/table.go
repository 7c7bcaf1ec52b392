// Package models defines data structures shared by the roster, head-to-head
// and player card pipelines.
package models

// Table represents a header row plus data rows read from a sheet or CSV file.
type Table struct {
	// Sheet is the source sheet name, empty for combined or CSV tables.
	Sheet string `json:"sheet,omitempty"`
	// Columns holds the header names in column order.
	Columns []string `json:"columns"`
	// Rows holds raw cell text, one slice per data row. Rows may be shorter
	// than Columns when trailing cells are empty.
	Rows [][]string `json:"rows"`
	// Kinds holds the stored type of each cell in Rows. It is nil for tables
	// read from text sources, where every cell is text.
	Kinds [][]CellKind `json:"-"`
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell of row i under the named column, or "" when either
// is absent.
func (t *Table) Value(i int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return ""
	}
	row := t.Rows[i]
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Kind returns the stored type of cell (i, j), KindText when unknown.
func (t *Table) Kind(i, j int) CellKind {
	if i < 0 || i >= len(t.Kinds) || j < 0 || j >= len(t.Kinds[i]) {
		return KindText
	}
	return t.Kinds[i][j]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Head returns at most n leading rows.
func (t *Table) Head(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Concat appends tables in order. The result columns are the union of all
// input columns in first-appearance order; cells for columns a table lacks
// are left empty. Cell kinds follow their cells.
func Concat(tables ...*Table) *Table {
	out := &Table{}
	index := make(map[string]int)
	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := index[c]; !ok {
				index[c] = len(out.Columns)
				out.Columns = append(out.Columns, c)
			}
		}
	}

	typed := false
	for _, t := range tables {
		typed = typed || t.Kinds != nil
	}

	for _, t := range tables {
		for r, row := range t.Rows {
			merged := make([]string, len(out.Columns))
			kinds := make([]CellKind, len(out.Columns))
			for i, cell := range row {
				if i >= len(t.Columns) {
					break
				}
				merged[index[t.Columns[i]]] = cell
				kinds[index[t.Columns[i]]] = t.Kind(r, i)
			}
			out.Rows = append(out.Rows, merged)
			if typed {
				out.Kinds = append(out.Kinds, kinds)
			}
		}
	}
	return out
}
