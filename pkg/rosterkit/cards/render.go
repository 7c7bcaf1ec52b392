package cards

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
)

// Renderer draws cards for one team at a time onto card sheets.
type Renderer struct {
	Layout  Layout
	Batter  *BoundTemplate
	Pitcher *BoundTemplate
	Logger  zerolog.Logger
}

// RenderTeam classifies rows, then clones, labels and populates one card per
// planned slot on s.
func (r *Renderer) RenderTeam(s *Sheet, header models.TeamHeader, rows []models.RosterRow) (models.TeamCards, error) {
	groups := Classify(rows)
	summary := models.TeamCards{
		Sheet:          s.Name(),
		Header:         header,
		BattersOnly:    len(groups.BattersOnly),
		PitcherBatters: len(groups.PitcherBatters),
		Pitchers:       len(groups.Pitchers),
	}

	r.Logger.Info().
		Str("sheet", s.Name()).
		Int("batters", len(groups.BattersOnly)+len(groups.PitcherBatters)).
		Int("batters_only", summary.BattersOnly).
		Int("pitcher_batters", summary.PitcherBatters).
		Int("pitchers", summary.Pitchers).
		Msg("Classified roster")

	for _, card := range Plan(groups, r.Layout) {
		if err := r.renderCard(s, card, header); err != nil {
			return summary, fmt.Errorf("card %d (%s, row %d): %w", card.Index, card.Kind, card.Player.Row, err)
		}
		summary.Cards++
	}
	return summary, nil
}

func (r *Renderer) renderCard(s *Sheet, card models.Card, header models.TeamHeader) error {
	tmpl := r.Batter
	if card.Kind == models.CardPitcher {
		tmpl = r.Pitcher
	}
	row, col := card.Area.R1, card.Area.C1

	if err := tmpl.CloneTo(s, row, col); err != nil {
		return err
	}
	if err := WriteLabels(s, card.Kind, row, col); err != nil {
		return err
	}
	return Populate(s, card.Kind, row, col, card.Player, header)
}
