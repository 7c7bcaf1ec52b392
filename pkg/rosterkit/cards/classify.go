package cards

import "github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"

// Groups partitions a team's roster by rating.
type Groups struct {
	// BattersOnly have a batter rating and no pitcher rating.
	BattersOnly []models.RosterRow
	// PitcherBatters have both ratings.
	PitcherBatters []models.RosterRow
	// Pitchers have a pitcher rating, pitcher-batters included.
	Pitchers []models.RosterRow
}

// Classify splits rows into groups, keeping input order within each group.
// Rows with neither rating belong to no group.
func Classify(rows []models.RosterRow) Groups {
	var g Groups
	for _, row := range rows {
		batter, pitcher := row.HasBatterRating(), row.HasPitcherRating()
		switch {
		case batter && pitcher:
			g.PitcherBatters = append(g.PitcherBatters, row)
		case batter:
			g.BattersOnly = append(g.BattersOnly, row)
		}
		if pitcher {
			g.Pitchers = append(g.Pitchers, row)
		}
	}
	return g
}

// Plan assigns card indices in emission order: batter cards for batters-only,
// then batter cards for pitcher-batters, then pitcher cards for every pitcher.
// A pitcher-batter therefore gets two cards.
func Plan(g Groups, layout Layout) []models.Card {
	cards := make([]models.Card, 0, len(g.BattersOnly)+len(g.PitcherBatters)+len(g.Pitchers))
	emit := func(rows []models.RosterRow, kind models.CardKind) {
		for _, row := range rows {
			index := len(cards)
			cards = append(cards, models.Card{
				Index:  index,
				Kind:   kind,
				Player: row,
				Area:   layout.Area(index),
			})
		}
	}

	emit(g.BattersOnly, models.CardBatter)
	emit(g.PitcherBatters, models.CardBatter)
	emit(g.Pitchers, models.CardPitcher)
	return cards
}
