package parser

import (
	"strings"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMergeRanges returns the merged cell ranges of a sheet.
func ExtractMergeRanges(f *excelize.File, sheetName string) ([]models.Range, error) {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.Range
	for _, mc := range merges {
		if r := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis()); r != nil {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ParseRange parses a range string like $A$1:$D$10 or A1:D10. A single cell
// reference yields a one-cell range. Returns nil when the reference is invalid.
func ParseRange(rangeStr string) *models.Range {
	// Remove sheet prefix and $ signs
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Range{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
