package rosterkit

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/output"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/parser"
	"github.com/xuri/excelize/v2"
)

// CombineRosters reads every sheet of the roster workbook, stacks them into
// one table and writes it as a single sheet.
func CombineRosters(cfg CombineConfig, logger zerolog.Logger) (*models.CombineSummary, error) {
	if err := requireFile(cfg.Input); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	logger.Info().Int("sheets", len(sheetList)).Strs("names", sheetList).Msg("Found sheets")

	summary := &models.CombineSummary{Output: cfg.Output}
	tables := make([]*models.Table, 0, len(sheetList))
	for _, sheetName := range sheetList {
		table, err := parser.ReadTable(f, sheetName, cfg.HeaderRow)
		if err != nil {
			return nil, NewSheetError(sheetName, "read", err)
		}
		logger.Info().Str("sheet", sheetName).Int("players", table.Len()).Msg("Processed sheet")
		tables = append(tables, table)
		summary.Sheets = append(summary.Sheets, models.ValueCount{Name: sheetName, Count: table.Len()})
	}

	combined := models.Concat(tables...)
	summary.Columns = combined.Columns
	summary.Rows = combined.Len()
	summary.Head = combined.Head(cfg.Preview)

	if combined.ColumnIndex(cfg.TeamColumn) >= 0 {
		summary.TeamColumn = cfg.TeamColumn
		summary.Teams = ValueCounts(combined, cfg.TeamColumn)
	} else {
		logger.Warn().Str("column", cfg.TeamColumn).Msg("Team column not found, counting rows per sheet")
		summary.Teams = sortCounts(append([]models.ValueCount(nil), summary.Sheets...))
	}

	if err := writeTable(combined, cfg.Sheet, cfg.Output); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info().Str("output", cfg.Output).Int("rows", summary.Rows).Msg("Combined data saved")

	return summary, nil
}

// ValueCounts counts non-empty values of column, most frequent first. Ties
// keep first-appearance order.
func ValueCounts(t *models.Table, column string) []models.ValueCount {
	counts := []models.ValueCount{}
	pos := make(map[string]int)
	for i := range t.Rows {
		v := t.Value(i, column)
		if v == "" {
			continue
		}
		if p, ok := pos[v]; ok {
			counts[p].Count++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, models.ValueCount{Name: v, Count: 1})
	}
	return sortCounts(counts)
}

func sortCounts(counts []models.ValueCount) []models.ValueCount {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// writeTable writes t with a bold header row to a new workbook at path. Cells
// keep the type they had in the source sheet.
func writeTable(t *models.Table, sheetName, path string) error {
	out := excelize.NewFile()
	defer out.Close()

	if err := out.SetSheetName(out.GetSheetName(0), sheetName); err != nil {
		return err
	}
	headerStyle, err := out.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	sw, err := out.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = excelize.Cell{Value: name, StyleID: headerStyle}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			if cell == "" {
				values[j] = nil
				continue
			}
			values[j] = parser.TypedValue(cell, t.Kind(i, j))
		}
		ref, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(ref, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return output.SaveWorkbook(out, path)
}
