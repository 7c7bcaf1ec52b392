package rosterkit

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/h2h"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/output"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/parser"
)

// HeadToHead sums regular season play-by-play stats per batter/pitcher pair
// and writes them as CSV.
func HeadToHead(cfg HeadToHeadConfig, logger zerolog.Logger) (*models.HeadToHeadSummary, error) {
	if err := requireFile(cfg.Input); err != nil {
		return nil, err
	}

	plays, err := parser.ReadCSVFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.Input, err)
	}

	res, err := h2h.Aggregate(plays, cfg.Excluded, cfg.Stats)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", cfg.Input, err)
	}
	logger.Info().
		Int("rows", plays.Len()).
		Int("regular_season_rows", res.Kept).
		Int("unkeyed_rows", res.Unkeyed).
		Int("pairs", len(res.Matchups)).
		Msg("Aggregated plays")

	if err := output.SaveCSV(cfg.Output, h2h.Records(res.Matchups, cfg.Stats)); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info().Str("output", cfg.Output).Msg("Head-to-head data saved")

	head := res.Matchups
	if cfg.Preview >= 0 && cfg.Preview < len(head) {
		head = head[:cfg.Preview]
	}
	return &models.HeadToHeadSummary{
		Output:            cfg.Output,
		InputRows:         plays.Len(),
		RegularSeasonRows: res.Kept,
		UnkeyedRows:       res.Unkeyed,
		Pairs:             len(res.Matchups),
		TotalPA:           h2h.Sum(res.Matchups, "pa"),
		TotalAB:           h2h.Sum(res.Matchups, "ab"),
		Head:              head,
		Top:               h2h.Top(res.Matchups, "pa", cfg.Top),
	}, nil
}
