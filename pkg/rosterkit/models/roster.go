package models

import "strings"

// TeamHeader is the season year and team name parsed from a team sheet's
// title cell.
type TeamHeader struct {
	// Year is the 4-digit season, empty when none was found.
	Year string `json:"year,omitempty"`
	// Team is the team name following the year, empty when absent.
	Team string `json:"team,omitempty"`
}

// OK reports whether both year and team are present.
func (h TeamHeader) OK() bool {
	return h.Year != "" && h.Team != ""
}

// RosterRow is one player's seasonal record on a team sheet.
type RosterRow struct {
	// Row is the 1-based source row.
	Row int `json:"row"`
	// Player is the player name (column B).
	Player string `json:"player"`
	// Age (column C).
	Age string `json:"age,omitempty"`
	// Positions lists every eligible position (column H).
	Positions string `json:"positions,omitempty"`
	// Defense is the defensive rating (column I).
	Defense string `json:"defense,omitempty"`
	// BatterRating (column J).
	BatterRating string `json:"batter_rating,omitempty"`
	// BatterHit is the batter probable-hit number (column K).
	BatterHit string `json:"batter_hit,omitempty"`
	// Bats is the batting hand (column L).
	Bats string `json:"bats,omitempty"`
	// PitcherRating (column M).
	PitcherRating string `json:"pitcher_rating,omitempty"`
	// Control is the pitcher control number (column N).
	Control string `json:"control,omitempty"`
	// PitcherHit is the pitcher probable-hit number (column O).
	PitcherHit string `json:"pitcher_hit,omitempty"`
	// Throws is the throwing hand (column P).
	Throws string `json:"throws,omitempty"`
	// Primary is the primary position (column Q).
	Primary string `json:"primary,omitempty"`
	// Kinds records the stored type of each non-blank field, keyed by
	// RosterColumns yaml name. Absent fields are text.
	Kinds map[string]CellKind `json:"-"`
}

// Kind returns the stored type of the named field.
func (r RosterRow) Kind(field string) CellKind {
	return r.Kinds[field]
}

// HasBatterRating reports whether the batter rating is non-blank.
func (r RosterRow) HasBatterRating() bool {
	return strings.TrimSpace(r.BatterRating) != ""
}

// HasPitcherRating reports whether the pitcher rating is non-blank.
func (r RosterRow) HasPitcherRating() bool {
	return strings.TrimSpace(r.PitcherRating) != ""
}

// RosterColumns maps RosterRow fields to sheet column letters.
type RosterColumns struct {
	Player        string `yaml:"player" json:"player"`
	Age           string `yaml:"age" json:"age"`
	Positions     string `yaml:"positions" json:"positions"`
	Defense       string `yaml:"defense" json:"defense"`
	BatterRating  string `yaml:"batter_rating" json:"batter_rating"`
	BatterHit     string `yaml:"batter_hit" json:"batter_hit"`
	Bats          string `yaml:"bats" json:"bats"`
	PitcherRating string `yaml:"pitcher_rating" json:"pitcher_rating"`
	Control       string `yaml:"control" json:"control"`
	PitcherHit    string `yaml:"pitcher_hit" json:"pitcher_hit"`
	Throws        string `yaml:"throws" json:"throws"`
	Primary       string `yaml:"primary" json:"primary"`
}

// DefaultRosterColumns returns the formatted roster workbook layout.
func DefaultRosterColumns() RosterColumns {
	return RosterColumns{
		Player:        "B",
		Age:           "C",
		Positions:     "H",
		Defense:       "I",
		BatterRating:  "J",
		BatterHit:     "K",
		Bats:          "L",
		PitcherRating: "M",
		Control:       "N",
		PitcherHit:    "O",
		Throws:        "P",
		Primary:       "Q",
	}
}
