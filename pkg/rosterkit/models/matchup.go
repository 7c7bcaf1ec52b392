package models

import (
	"encoding/json"
	"sort"
)

// Matchup holds summed statistics for one batter/pitcher pair.
type Matchup struct {
	// Batter is the batter identifier.
	Batter string
	// Pitcher is the pitcher identifier.
	Pitcher string
	// Columns names each entry of Totals.
	Columns []string
	// Totals holds the summed stats aligned with Columns.
	Totals []float64
}

// Stat returns the total for the named column, or 0 when absent.
func (m Matchup) Stat(name string) float64 {
	for i, c := range m.Columns {
		if c == name && i < len(m.Totals) {
			return m.Totals[i]
		}
	}
	return 0
}

type matchupJSON struct {
	Batter  string             `json:"batter"`
	Pitcher string             `json:"pitcher"`
	Stats   map[string]float64 `json:"stats"`
}

// MarshalJSON writes the totals keyed by stat name.
func (m Matchup) MarshalJSON() ([]byte, error) {
	out := matchupJSON{Batter: m.Batter, Pitcher: m.Pitcher, Stats: make(map[string]float64, len(m.Columns))}
	for i, c := range m.Columns {
		if i < len(m.Totals) {
			out.Stats[c] = m.Totals[i]
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads totals written by MarshalJSON. Columns come back in
// name order.
func (m *Matchup) UnmarshalJSON(data []byte) error {
	var in matchupJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	m.Batter, m.Pitcher = in.Batter, in.Pitcher
	m.Columns = m.Columns[:0]
	for c := range in.Stats {
		m.Columns = append(m.Columns, c)
	}
	sort.Strings(m.Columns)
	m.Totals = make([]float64, len(m.Columns))
	for i, c := range m.Columns {
		m.Totals[i] = in.Stats[c]
	}
	return nil
}
