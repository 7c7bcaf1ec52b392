package rosterkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data/1977 rosters formatted.xlsx", cfg.Combine.Input)
	assert.Equal(t, "All Teams", cfg.Combine.Sheet)
	assert.Equal(t, []string{"lcs", "worldseries", "allstar"}, cfg.HeadToHead.Excluded)
	assert.Len(t, cfg.HeadToHead.Stats, 13)
	assert.Equal(t, []string{"TOT"}, cfg.Cards.SkipSheets)
	assert.Equal(t, 3, cfg.Cards.Layout.CardsPerRow)
	assert.Equal(t, "J", cfg.Cards.Columns.BatterRating)
	assert.Equal(t, "M", cfg.Cards.Columns.PitcherRating)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosterkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
h2h:
  input: plays.csv
  top: 3
cards:
  skip_sheets: [TOT, NOTES]
  layout:
    cards_per_row: 4
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "plays.csv", cfg.HeadToHead.Input)
	assert.Equal(t, 3, cfg.HeadToHead.Top)
	assert.Equal(t, "data/1995 batter h2h.csv", cfg.HeadToHead.Output)
	assert.Equal(t, []string{"TOT", "NOTES"}, cfg.Cards.SkipSheets)
	assert.Equal(t, 4, cfg.Cards.Layout.CardsPerRow)
	assert.Equal(t, 8, cfg.Cards.Layout.CardHeight)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards:\n  layout:\n    card_width: 0\n"), 0644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "invalid card layout")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"", "debug", "info", "warn", "warning", "error", "disabled"} {
		_, ok := parseLevel(s)
		assert.True(t, ok, s)
	}
	_, ok := parseLevel("loud")
	assert.False(t, ok)
}
