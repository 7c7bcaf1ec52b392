package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet as a table whose header is on headerRow (1-based).
// Rows above the header are ignored and fully blank rows below it are dropped.
// The stored type of every kept cell is recorded in Table.Kinds.
func ReadTable(f *excelize.File, sheetName string, headerRow int) (*models.Table, error) {
	if headerRow < 1 {
		return nil, fmt.Errorf("header row must be 1 or greater, got %d", headerRow)
	}
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	table := &models.Table{Sheet: sheetName, Columns: []string{}, Rows: [][]string{}, Kinds: [][]models.CellKind{}}
	if len(rows) < headerRow {
		return table, nil
	}

	width := len(rows[headerRow-1])
	for _, row := range rows[headerRow:] {
		if last := lastNonEmpty(row); last+1 > width {
			width = last + 1
		}
	}
	table.Columns = headerNames(rows[headerRow-1], width)

	for i, row := range rows[headerRow:] {
		last := lastNonEmpty(row)
		if last < 0 {
			continue
		}
		cells := make([]string, last+1)
		copy(cells, row)
		kinds := make([]models.CellKind, last+1)
		for j, cell := range cells {
			if cell == "" {
				continue
			}
			if kinds[j], err = cellKind(f, sheetName, headerRow+i, j); err != nil {
				return nil, err
			}
		}
		table.Rows = append(table.Rows, cells)
		table.Kinds = append(table.Kinds, kinds)
	}

	return table, nil
}

// headerNames pads the header to width, naming empty cells "Unnamed: N" and
// suffixing repeated names with ".1", ".2" and so on.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool)
	next := make(map[string]int)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if !used[name] {
			used[name] = true
			names[i] = name
			continue
		}
		for {
			next[name]++
			candidate := fmt.Sprintf("%s.%d", name, next[name])
			if !used[candidate] {
				used[candidate] = true
				names[i] = candidate
				break
			}
		}
	}
	return names
}

// lastNonEmpty returns the index of the last non-blank cell, or -1.
func lastNonEmpty(row []string) int {
	for i := len(row) - 1; i >= 0; i-- {
		if strings.TrimSpace(row[i]) != "" {
			return i
		}
	}
	return -1
}

// cellKind reports the stored type of the cell at 0-based (rowIdx, colIdx).
func cellKind(f *excelize.File, sheetName string, rowIdx, colIdx int) (models.CellKind, error) {
	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return models.KindText, err
	}
	t, err := f.GetCellType(sheetName, ref)
	if err != nil {
		return models.KindText, err
	}
	return models.KindOf(t), nil
}

// TypedValue converts raw cell text back to its stored type: numbers through
// ParseValue, booleans from "1"/"0" (or "TRUE"/"FALSE"), text unchanged.
func TypedValue(raw string, kind models.CellKind) interface{} {
	switch kind {
	case models.KindNumber:
		return ParseValue(raw)
	case models.KindBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float, leaving words like "nan" and "inf" alone
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
