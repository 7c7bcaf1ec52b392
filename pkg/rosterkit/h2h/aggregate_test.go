package h2h

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
)

func playTable(rows ...[]string) *models.Table {
	return &models.Table{
		Columns: []string{"gametype", "batter", "pitcher", "pa", "ab", "hr"},
		Rows:    rows,
	}
}

func TestAggregateExcludesPostseason(t *testing.T) {
	plays := playTable(
		[]string{"regular", "X", "Y", "4", "3", "1"},
		[]string{"regular", "X", "Y", "3", "3", ""},
		[]string{"allstar", "X", "Y", "99", "99", "9"},
		[]string{"worldseries", "X", "Z", "5", "5", "0"},
		[]string{"regular", "A", "Y", "1", "1", "0"},
	)

	res, err := Aggregate(plays, DefaultExcluded(), []string{"pa", "ab", "hr"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Kept)
	require.Len(t, res.Matchups, 2)

	assert.Equal(t, "A", res.Matchups[0].Batter)
	xy := res.Matchups[1]
	assert.Equal(t, "X", xy.Batter)
	assert.Equal(t, "Y", xy.Pitcher)
	assert.Equal(t, 7.0, xy.Stat("pa"))
	assert.Equal(t, 6.0, xy.Stat("ab"))
	assert.Equal(t, 1.0, xy.Stat("hr"))
}

func TestAggregateDropsBlankKeys(t *testing.T) {
	plays := playTable(
		[]string{"regular", "X", "Y", "4", "4", "0"},
		[]string{"regular", "", "Y", "1", "1", "0"},
		[]string{"regular", "X", " ", "1", "1", "0"},
		[]string{"allstar", "", "", "9", "9", "0"},
	)

	res, err := Aggregate(plays, DefaultExcluded(), []string{"pa", "ab"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Kept)
	assert.Equal(t, 2, res.Unkeyed)
	require.Len(t, res.Matchups, 1)
	assert.Equal(t, "X", res.Matchups[0].Batter)
	assert.Equal(t, 4.0, Sum(res.Matchups, "pa"))
}

func TestAggregateMissingColumn(t *testing.T) {
	plays := playTable()
	_, err := Aggregate(plays, DefaultExcluded(), []string{"pa", "xi"})
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorContains(t, err, `"xi"`)
}

func TestAggregateRejectsNonNumeric(t *testing.T) {
	plays := playTable([]string{"regular", "X", "Y", "four", "3", "1"})
	_, err := Aggregate(plays, DefaultExcluded(), []string{"pa"})
	assert.ErrorContains(t, err, `row 2 column "pa"`)
}

func TestTop(t *testing.T) {
	stats := []string{"pa"}
	m := func(b string, pa float64) models.Matchup {
		return models.Matchup{Batter: b, Pitcher: "P", Columns: stats, Totals: []float64{pa}}
	}
	in := []models.Matchup{m("a", 3), m("b", 9), m("c", 3), m("d", 12)}

	got := Top(in, "pa", 3)
	var names []string
	for _, x := range got {
		names = append(names, x.Batter)
	}
	assert.Equal(t, []string{"d", "b", "a"}, names)
	assert.Len(t, Top(in, "pa", 10), 4)
	assert.Equal(t, 27.0, Sum(in, "pa"))
}

func TestRecords(t *testing.T) {
	stats := []string{"pa", "ab"}
	got := Records([]models.Matchup{
		{Batter: "X", Pitcher: "Y", Columns: stats, Totals: []float64{7, 2.5}},
	}, stats)

	want := [][]string{
		{"batter", "pitcher", "pa", "ab"},
		{"X", "Y", "7", "2.5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}
