package parser

// Extent is the bounding box of non-empty cells, as 0-based indexes into the
// rows returned by GetRows. Row and column are -1 for an empty sheet.
type Extent struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether no cell holds data.
func (e Extent) Empty() bool {
	return e.MaxRow < 0
}

// DataExtent finds the bounding box of non-empty cells.
func DataExtent(rows [][]string) Extent {
	e := Extent{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if e.MinRow < 0 || rowIdx < e.MinRow {
				e.MinRow = rowIdx
			}
			if e.MaxRow < 0 || rowIdx > e.MaxRow {
				e.MaxRow = rowIdx
			}
			if e.MinCol < 0 || colIdx < e.MinCol {
				e.MinCol = colIdx
			}
			if e.MaxCol < 0 || colIdx > e.MaxCol {
				e.MaxCol = colIdx
			}
		}
	}

	return e
}
