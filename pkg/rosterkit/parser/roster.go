package parser

import (
	"fmt"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/xuri/excelize/v2"
)

// ReadRoster reads player rows from firstRow (1-based) down to the last row
// holding data, mapping fields by column letter. Numeric and boolean source
// cells are recorded in RosterRow.Kinds.
func ReadRoster(f *excelize.File, sheetName string, firstRow int, cols models.RosterColumns) ([]models.RosterRow, error) {
	fields, err := rosterFields(cols)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	extent := DataExtent(rows)
	if extent.Empty() || extent.MaxRow < firstRow-1 {
		return nil, nil
	}

	var result []models.RosterRow
	for rowIdx := firstRow - 1; rowIdx <= extent.MaxRow; rowIdx++ {
		row := rows[rowIdx]
		player := models.RosterRow{Row: rowIdx + 1}
		for _, fld := range fields {
			if fld.index >= len(row) || row[fld.index] == "" {
				continue
			}
			*fld.dst(&player) = row[fld.index]

			kind, err := cellKind(f, sheetName, rowIdx, fld.index)
			if err != nil {
				return nil, err
			}
			if kind != models.KindText {
				if player.Kinds == nil {
					player.Kinds = make(map[string]models.CellKind)
				}
				player.Kinds[fld.name] = kind
			}
		}
		result = append(result, player)
	}

	return result, nil
}

type rosterField struct {
	name  string
	index int
	dst   func(*models.RosterRow) *string
}

// rosterFields converts column letters to 0-based indexes.
func rosterFields(cols models.RosterColumns) ([]rosterField, error) {
	fields := []struct {
		name   string
		letter string
		dst    func(*models.RosterRow) *string
	}{
		{"player", cols.Player, func(r *models.RosterRow) *string { return &r.Player }},
		{"age", cols.Age, func(r *models.RosterRow) *string { return &r.Age }},
		{"positions", cols.Positions, func(r *models.RosterRow) *string { return &r.Positions }},
		{"defense", cols.Defense, func(r *models.RosterRow) *string { return &r.Defense }},
		{"batter_rating", cols.BatterRating, func(r *models.RosterRow) *string { return &r.BatterRating }},
		{"batter_hit", cols.BatterHit, func(r *models.RosterRow) *string { return &r.BatterHit }},
		{"bats", cols.Bats, func(r *models.RosterRow) *string { return &r.Bats }},
		{"pitcher_rating", cols.PitcherRating, func(r *models.RosterRow) *string { return &r.PitcherRating }},
		{"control", cols.Control, func(r *models.RosterRow) *string { return &r.Control }},
		{"pitcher_hit", cols.PitcherHit, func(r *models.RosterRow) *string { return &r.PitcherHit }},
		{"throws", cols.Throws, func(r *models.RosterRow) *string { return &r.Throws }},
		{"primary", cols.Primary, func(r *models.RosterRow) *string { return &r.Primary }},
	}

	out := make([]rosterField, 0, len(fields))
	for _, fld := range fields {
		n, err := excelize.ColumnNameToNumber(fld.letter)
		if err != nil {
			return nil, fmt.Errorf("roster column %s: %w", fld.name, err)
		}
		out = append(out, rosterField{name: fld.name, index: n - 1, dst: fld.dst})
	}
	return out, nil
}
