package models

// ValueCount is a name with a row count.
type ValueCount struct {
	// Name is a sheet name or column value.
	Name string `json:"name"`
	// Count is the number of rows.
	Count int `json:"count"`
}

// CombineSummary describes a roster combine run.
type CombineSummary struct {
	// Output is the written workbook path.
	Output string `json:"output"`
	// Sheets lists data rows per source sheet in workbook order.
	Sheets []ValueCount `json:"sheets"`
	// Columns is the combined header.
	Columns []string `json:"columns"`
	// Rows is the total number of combined rows.
	Rows int `json:"rows"`
	// Head holds the first rows of the combined table.
	Head [][]string `json:"head,omitempty"`
	// TeamColumn is the column the team counts were taken from, empty when
	// the counts fall back to sheet counts.
	TeamColumn string `json:"team_column,omitempty"`
	// Teams lists rows per team, most rows first.
	Teams []ValueCount `json:"teams"`
}

// HeadToHeadSummary describes a head-to-head aggregation run.
type HeadToHeadSummary struct {
	// Output is the written CSV path.
	Output string `json:"output"`
	// InputRows is the number of play rows read.
	InputRows int `json:"input_rows"`
	// RegularSeasonRows is the number of rows kept after filtering.
	RegularSeasonRows int `json:"regular_season_rows"`
	// UnkeyedRows counts kept rows dropped for a blank batter or pitcher.
	UnkeyedRows int `json:"unkeyed_rows,omitempty"`
	// Pairs is the number of distinct batter/pitcher pairs.
	Pairs int `json:"pairs"`
	// TotalPA is the sum of plate appearances.
	TotalPA float64 `json:"total_pa"`
	// TotalAB is the sum of at-bats.
	TotalAB float64 `json:"total_ab"`
	// Head holds the first aggregated rows.
	Head []Matchup `json:"head,omitempty"`
	// Top holds the leading matchups by plate appearances.
	Top []Matchup `json:"top"`
}

// TeamCards describes the cards rendered for one team sheet.
type TeamCards struct {
	// Sheet is the source and output sheet name.
	Sheet string `json:"sheet"`
	// Header is the parsed title cell.
	Header TeamHeader `json:"header"`
	// BattersOnly counts batter-only players.
	BattersOnly int `json:"batters_only"`
	// PitcherBatters counts dual-role players.
	PitcherBatters int `json:"pitcher_batters"`
	// Pitchers counts players with a pitcher rating.
	Pitchers int `json:"pitchers"`
	// Cards is the number of cards emitted.
	Cards int `json:"cards"`
}

// CardsSummary describes a player card run.
type CardsSummary struct {
	// Output is the written workbook path.
	Output string `json:"output"`
	// Teams lists rendered team sheets in workbook order.
	Teams []TeamCards `json:"teams"`
	// Skipped lists sheets skipped because their header could not be parsed.
	Skipped []string `json:"skipped,omitempty"`
	// Fallbacks counts style attributes that fell back to a default.
	Fallbacks int `json:"fallbacks,omitempty"`
}
