// Package h2h aggregates play-by-play rows into batter versus pitcher totals.
package h2h

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
)

// Column names of the play-by-play table.
const (
	GameTypeColumn = "gametype"
	BatterColumn   = "batter"
	PitcherColumn  = "pitcher"
)

// ErrMissingColumn indicates a required column is absent from the input.
var ErrMissingColumn = errors.New("missing column")

// DefaultStats returns the summed stat columns.
func DefaultStats() []string {
	return []string{"pa", "ab", "single", "double", "triple", "hr", "sh", "sf", "hbp", "walk", "iw", "k", "xi"}
}

// DefaultExcluded returns the game types left out of regular season totals.
func DefaultExcluded() []string {
	return []string{"lcs", "worldseries", "allstar"}
}

// Result is the outcome of an aggregation.
type Result struct {
	// Matchups are sorted by batter, then pitcher.
	Matchups []models.Matchup
	// Kept is the number of rows that passed the game type filter.
	Kept int
	// Unkeyed counts kept rows dropped for a blank batter or pitcher.
	Unkeyed int
}

// Aggregate drops rows whose game type is excluded, groups the rest by
// (batter, pitcher) and sums the stat columns. Rows with a blank batter or
// pitcher belong to no pair and are dropped. Blank stat cells count as 0.
func Aggregate(plays *models.Table, excluded, stats []string) (*Result, error) {
	required := append([]string{GameTypeColumn, BatterColumn, PitcherColumn}, stats...)
	idx := make(map[string]int, len(required))
	for _, name := range required {
		i := plays.ColumnIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		idx[name] = i
	}

	skip := make(map[string]bool, len(excluded))
	for _, g := range excluded {
		skip[g] = true
	}

	type key struct{ batter, pitcher string }
	totals := make(map[key][]float64)
	result := &Result{}

	for n, row := range plays.Rows {
		cell := func(name string) string {
			if i := idx[name]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		if skip[cell(GameTypeColumn)] {
			continue
		}
		result.Kept++

		k := key{cell(BatterColumn), cell(PitcherColumn)}
		if k.batter == "" || k.pitcher == "" {
			result.Unkeyed++
			continue
		}
		sums, ok := totals[k]
		if !ok {
			sums = make([]float64, len(stats))
			totals[k] = sums
		}
		for i, stat := range stats {
			raw := cell(stat)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", n+2, stat, err)
			}
			sums[i] += v
		}
	}

	for k, sums := range totals {
		result.Matchups = append(result.Matchups, models.Matchup{
			Batter:  k.batter,
			Pitcher: k.pitcher,
			Columns: stats,
			Totals:  sums,
		})
	}
	sort.Slice(result.Matchups, func(i, j int) bool {
		a, b := result.Matchups[i], result.Matchups[j]
		if a.Batter != b.Batter {
			return a.Batter < b.Batter
		}
		return a.Pitcher < b.Pitcher
	})

	return result, nil
}

// Top returns the n matchups with the largest stat total. Ties keep their
// input order.
func Top(matchups []models.Matchup, stat string, n int) []models.Matchup {
	sorted := append([]models.Matchup(nil), matchups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stat(stat) > sorted[j].Stat(stat)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Sum returns the stat total across matchups.
func Sum(matchups []models.Matchup, stat string) float64 {
	var total float64
	for _, m := range matchups {
		total += m.Stat(stat)
	}
	return total
}

// FormatNumber renders a total without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Records renders matchups as CSV records with a header row.
func Records(matchups []models.Matchup, stats []string) [][]string {
	records := make([][]string, 0, len(matchups)+1)
	records = append(records, append([]string{BatterColumn, PitcherColumn}, stats...))
	for _, m := range matchups {
		rec := make([]string, 0, len(stats)+2)
		rec = append(rec, m.Batter, m.Pitcher)
		for _, stat := range stats {
			rec = append(rec, FormatNumber(m.Stat(stat)))
		}
		records = append(records, rec)
	}
	return records
}
