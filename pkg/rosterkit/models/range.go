package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Range represents 1-based inclusive cell coordinate bounds, such as a merge.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// NewRange returns the range anchored at (row, col) spanning rows x cols cells.
func NewRange(row, col, rows, cols int) Range {
	return Range{R1: row, C1: col, R2: row + rows - 1, C2: col + cols - 1}
}

// Ref returns the range in A1:B2 notation.
func (r Range) Ref() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// TopLeft returns the anchor cell name.
func (r Range) TopLeft() string {
	cell, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	return cell
}

// BottomRight returns the last cell name.
func (r Range) BottomRight() string {
	cell, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return cell
}

// Contains reports whether the cell at (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// IsAnchor reports whether (row, col) is the top-left cell of the range.
func (r Range) IsAnchor(row, col int) bool {
	return row == r.R1 && col == r.C1
}

// IsSingleCell reports whether the range covers exactly one cell.
func (r Range) IsSingleCell() bool {
	return r.R1 == r.R2 && r.C1 == r.C2
}

// Overlaps reports whether the two ranges share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.R1 <= o.R2 && o.R1 <= r.R2 && r.C1 <= o.C2 && o.C1 <= r.C2
}

// Offset returns the range shifted by dr rows and dc columns.
func (r Range) Offset(dr, dc int) Range {
	return Range{R1: r.R1 + dr, C1: r.C1 + dc, R2: r.R2 + dr, C2: r.C2 + dc}
}
