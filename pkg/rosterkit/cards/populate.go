package cards

import (
	"strings"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/parser"
)

// label is fixed card text written when the card structure is created.
type label struct {
	text       string
	row, col   int
	span       int
	horizontal string
}

// field maps a player attribute to an offset inside the card.
type field struct {
	name       string
	row, col   int
	span       int
	horizontal string
	text       bool
	value      func(models.RosterRow, models.TeamHeader) string
}

var commonLabels = []label{
	{text: "Age:", row: 2, col: 0, span: 2, horizontal: "right"},
	{text: "Positions:", row: 2, col: 3, span: 1},
	{text: "Bats:", row: 3, col: 0, span: 2, horizontal: "right"},
	{text: "Throws:", row: 3, col: 3, span: 1},
	{text: "DEFENSE:", row: 4, col: 0, span: 2, horizontal: "right"},
}

var batterLabels = append(append([]label(nil), commonLabels...),
	label{text: "OFFENSE:", row: 5, col: 0, span: 1},
	label{text: "PROBABLE HIT:", row: 6, col: 0, span: 1},
)

var pitcherLabels = append(append([]label(nil), commonLabels...),
	label{text: "PITCHING:", row: 5, col: 0, span: 1},
	label{text: "CONTROL #:", row: 6, col: 0, span: 1},
	label{text: "PROBABLE HIT:", row: 7, col: 0, span: 1},
)

func teamField(_ models.RosterRow, h models.TeamHeader) string { return h.Team }
func yearField(_ models.RosterRow, h models.TeamHeader) string { return h.Year }

var headerFields = []field{
	{name: "year", row: 7, col: 6, span: 1, text: true, value: yearField},
	{name: "team", row: 0, col: 0, span: 7, text: true, value: teamField},
	{name: "player", row: 1, col: 0, span: 5, text: true, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Player }},
	{name: "primary", row: 1, col: 5, span: 2, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Primary }},
	{name: "age", row: 2, col: 2, span: 1, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Age }},
	{name: "positions", row: 2, col: 5, span: 2, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Positions }},
	{name: "bats", row: 3, col: 2, span: 1, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Bats }},
	{name: "throws", row: 3, col: 5, span: 1, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Throws }},
}

var batterFields = append(append([]field(nil), headerFields...),
	field{name: "defense", row: 4, col: 3, span: 4, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Defense }},
	field{name: "batter_rating", row: 5, col: 3, span: 4, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.BatterRating }},
	field{name: "batter_hit", row: 6, col: 3, span: 1, value: func(p models.RosterRow, _ models.TeamHeader) string { return p.BatterHit }},
)

var pitcherFields = append(append([]field(nil), headerFields...),
	field{name: "defense", row: 4, col: 3, span: 4, horizontal: "left", value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Defense }},
	field{name: "pitcher_rating", row: 5, col: 3, span: 4, horizontal: "left", value: func(p models.RosterRow, _ models.TeamHeader) string { return p.PitcherRating }},
	field{name: "control", row: 6, col: 3, span: 1, horizontal: "left", value: func(p models.RosterRow, _ models.TeamHeader) string { return p.Control }},
	field{name: "pitcher_hit", row: 7, col: 3, span: 1, horizontal: "left", value: func(p models.RosterRow, _ models.TeamHeader) string { return p.PitcherHit }},
)

func labelsFor(kind models.CardKind) []label {
	if kind == models.CardPitcher {
		return pitcherLabels
	}
	return batterLabels
}

func fieldsFor(kind models.CardKind) []field {
	if kind == models.CardPitcher {
		return pitcherFields
	}
	return batterFields
}

// WriteLabels writes the fixed labels of a card anchored at (row, col).
// Labels with an alignment are restyled and merged over their span.
func WriteLabels(s *Sheet, kind models.CardKind, row, col int) error {
	for _, l := range labelsFor(kind) {
		r, c := row+l.row, col+l.col
		written, err := s.SetValue(r, c, l.text)
		if err != nil {
			return err
		}
		if written && l.horizontal != "" {
			if err := s.Align(r, c, l.horizontal); err != nil {
				return err
			}
		}
		if err := s.Merge(models.NewRange(r, c, 1, l.span)); err != nil {
			return err
		}
	}
	return nil
}

// Populate writes player and team values into a card anchored at (row, col).
// A value whose cell is covered by another cell's merge is skipped. Values
// keep the type of their source cell. Field alignment applies to every cell
// that is not a merge member, blank or not.
func Populate(s *Sheet, kind models.CardKind, row, col int, player models.RosterRow, header models.TeamHeader) error {
	for _, fld := range fieldsFor(kind) {
		r, c := row+fld.row, col+fld.col
		value := fld.value(player, header)
		if strings.TrimSpace(value) != "" {
			var v interface{} = value
			if !fld.text {
				v = parser.TypedValue(value, player.Kind(fld.name))
			}
			if _, err := s.SetValue(r, c, v); err != nil {
				return err
			}
		}
		if fld.horizontal != "" && !s.IsMergeMember(r, c) {
			if err := s.Align(r, c, fld.horizontal); err != nil {
				return err
			}
		}
		if err := s.Merge(models.NewRange(r, c, 1, fld.span)); err != nil {
			return err
		}
	}
	return nil
}
