// Package rosterkit provides the roster combine, head-to-head and player card
// batch pipelines.
package rosterkit

import (
	"fmt"
	"os"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/cards"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/h2h"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of every pipeline. It lives for a single run.
type Config struct {
	Combine    CombineConfig    `yaml:"combine" json:"combine"`
	HeadToHead HeadToHeadConfig `yaml:"h2h" json:"h2h"`
	Cards      CardsConfig      `yaml:"cards" json:"cards"`
}

// CombineConfig configures the roster combiner.
type CombineConfig struct {
	// Input is the roster workbook with one sheet per team.
	Input string `yaml:"input" json:"input"`
	// Output is the combined workbook path.
	Output string `yaml:"output" json:"output"`
	// Sheet is the combined sheet name.
	Sheet string `yaml:"sheet" json:"sheet"`
	// HeaderRow is the 1-based header row of each input sheet.
	HeaderRow int `yaml:"header_row" json:"header_row"`
	// TeamColumn is counted for the per-team summary.
	TeamColumn string `yaml:"team_column" json:"team_column"`
	// Preview is the number of combined rows echoed in the summary.
	Preview int `yaml:"preview" json:"preview"`
}

// HeadToHeadConfig configures the head-to-head aggregator.
type HeadToHeadConfig struct {
	// Input is the play-by-play CSV.
	Input string `yaml:"input" json:"input"`
	// Output is the aggregated CSV path.
	Output string `yaml:"output" json:"output"`
	// Excluded lists game types dropped before grouping.
	Excluded []string `yaml:"excluded" json:"excluded"`
	// Stats lists the summed columns.
	Stats []string `yaml:"stats" json:"stats"`
	// Top is the number of leading matchups by plate appearances to report.
	Top int `yaml:"top" json:"top"`
	// Preview is the number of aggregated rows echoed in the summary.
	Preview int `yaml:"preview" json:"preview"`
}

// CardsConfig configures the player card renderer.
type CardsConfig struct {
	// Input is the roster workbook with one sheet per team.
	Input string `yaml:"input" json:"input"`
	// Template is the workbook holding the card template sheets.
	Template string `yaml:"template" json:"template"`
	// Output is the card workbook path.
	Output string `yaml:"output" json:"output"`
	// BatterTemplate and PitcherTemplate name the template sheets.
	BatterTemplate  string `yaml:"batter_template" json:"batter_template"`
	PitcherTemplate string `yaml:"pitcher_template" json:"pitcher_template"`
	// SkipSheets lists input sheets that are not teams.
	SkipSheets []string `yaml:"skip_sheets" json:"skip_sheets"`
	// HeaderCell holds the "<year> <team>" title of each team sheet.
	HeaderCell string `yaml:"header_cell" json:"header_cell"`
	// FirstDataRow is the 1-based first player row.
	FirstDataRow int                  `yaml:"first_data_row" json:"first_data_row"`
	Columns      models.RosterColumns `yaml:"columns" json:"columns"`
	Layout       cards.Layout         `yaml:"layout" json:"layout"`
	Sheet        cards.SheetOptions   `yaml:"sheet" json:"sheet"`
}

// DefaultConfig returns the settings of the 1977/1995 season workflow.
func DefaultConfig() Config {
	return Config{
		Combine: CombineConfig{
			Input:      "data/1977 rosters formatted.xlsx",
			Output:     "data/1977 all ratings.xlsx",
			Sheet:      "All Teams",
			HeaderRow:  2,
			TeamColumn: "Team",
			Preview:    5,
		},
		HeadToHead: HeadToHeadConfig{
			Input:    "data/1995plays.csv",
			Output:   "data/1995 batter h2h.csv",
			Excluded: h2h.DefaultExcluded(),
			Stats:    h2h.DefaultStats(),
			Top:      10,
			Preview:  10,
		},
		Cards: CardsConfig{
			Input:           "../data/1995 rosters updated formatted v3.xlsx",
			Template:        "../data/Player Cards Template.xlsx",
			Output:          "../data/1995 Player Cards v3.xlsx",
			BatterTemplate:  cards.BatterTemplateSheet,
			PitcherTemplate: cards.PitcherTemplateSheet,
			SkipSheets:      []string{"TOT"},
			HeaderCell:      "A1",
			FirstDataRow:    3,
			Columns:         models.DefaultRosterColumns(),
			Layout:          cards.DefaultLayout(),
			Sheet:           cards.DefaultSheetOptions(),
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail mid-run.
func (c Config) Validate() error {
	if c.Combine.HeaderRow < 1 {
		return fmt.Errorf("combine.header_row must be 1 or greater")
	}
	if c.Cards.FirstDataRow < 1 {
		return fmt.Errorf("cards.first_data_row must be 1 or greater")
	}
	if len(c.HeadToHead.Stats) == 0 {
		return fmt.Errorf("h2h.stats must not be empty")
	}
	return c.Cards.Layout.Validate()
}
