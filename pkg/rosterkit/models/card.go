package models

// CardKind selects the card layout and template.
type CardKind string

const (
	// CardBatter renders offense ratings.
	CardBatter CardKind = "batter"
	// CardPitcher renders pitching ratings.
	CardPitcher CardKind = "pitcher"
)

// Card is one allocated card region on an output sheet.
type Card struct {
	// Index is the emission index that determines the card position.
	Index int `json:"index"`
	// Kind is the card layout.
	Kind CardKind `json:"kind"`
	// Player is the roster row rendered on the card.
	Player RosterRow `json:"player"`
	// Area is the card region on the output sheet.
	Area Range `json:"area"`
}
