package rosterkit

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/cards"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/output"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/parser"
	"github.com/xuri/excelize/v2"
)

// RenderCards writes one card sheet per team sheet of the roster workbook.
// Sheets whose title cell has no year and team are skipped with a warning.
func RenderCards(cfg CardsConfig, logger zerolog.Logger) (*models.CardsSummary, error) {
	if err := requireFile(cfg.Input); err != nil {
		return nil, err
	}
	if err := requireFile(cfg.Template); err != nil {
		return nil, err
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}

	tf, err := excelize.OpenFile(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer tf.Close()

	batter, err := cards.LoadTemplate(tf, cfg.BatterTemplate, cfg.Layout.CardHeight, cfg.Layout.CardWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}
	pitcher, err := cards.LoadTemplate(tf, cfg.PitcherTemplate, cfg.Layout.CardHeight, cfg.Layout.CardWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}
	logger.Info().Str("template", cfg.Template).Msg("Loaded templates")

	df, err := excelize.OpenFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer df.Close()

	out := excelize.NewFile()
	defer out.Close()
	defaultSheet := out.GetSheetName(0)

	summary := &models.CardsSummary{Output: cfg.Output}
	renderer := &cards.Renderer{Layout: cfg.Layout, Logger: logger}
	var report cards.CloneReport
	var rep cards.CloneReport
	if renderer.Batter, rep, err = batter.Bind(out); err != nil {
		return nil, err
	}
	report.Add(rep)
	if renderer.Pitcher, rep, err = pitcher.Bind(out); err != nil {
		return nil, err
	}
	report.Add(rep)
	if report.Total() > 0 {
		logger.Debug().Interface("report", report).Msg("Template styles fell back to defaults")
	}
	summary.Fallbacks = report.Total()

	skip := make(map[string]bool, len(cfg.SkipSheets))
	for _, s := range cfg.SkipSheets {
		skip[s] = true
	}

	for _, sheetName := range df.GetSheetList() {
		if skip[sheetName] {
			logger.Debug().Str("sheet", sheetName).Msg("Skipping sheet")
			continue
		}
		logger.Info().Str("sheet", sheetName).Msg("Processing team")

		title, err := df.GetCellValue(sheetName, cfg.HeaderCell)
		if err != nil {
			return nil, NewSheetError(sheetName, "header", err)
		}
		header := parser.ParseTeamHeader(title)
		if !header.OK() {
			logger.Warn().Str("sheet", sheetName).Str("cell", cfg.HeaderCell).Msg("Could not extract year/team, skipping sheet")
			summary.Skipped = append(summary.Skipped, sheetName)
			continue
		}

		rows, err := parser.ReadRoster(df, sheetName, cfg.FirstDataRow, cfg.Columns)
		if err != nil {
			return nil, NewSheetError(sheetName, "roster", err)
		}

		s, err := cards.NewSheet(out, sheetName, cfg.Sheet)
		if err != nil {
			return nil, NewSheetError(sheetName, "render", err)
		}
		team, err := renderer.RenderTeam(s, header, rows)
		if err != nil {
			return nil, NewSheetError(sheetName, "render", err)
		}
		logger.Info().Str("sheet", sheetName).Int("cards", team.Cards).Msg("Rendered cards")
		summary.Teams = append(summary.Teams, team)
	}

	if err := finalizeSheets(out, defaultSheet, summary.Teams); err != nil {
		return nil, err
	}
	if err := output.SaveWorkbook(out, cfg.Output); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info().Str("output", cfg.Output).Msg("Player cards saved")

	return summary, nil
}

// finalizeSheets drops the new workbook's default sheet unless a team took
// its name, and activates the first team sheet.
func finalizeSheets(out *excelize.File, defaultSheet string, teams []models.TeamCards) error {
	if len(teams) == 0 {
		return nil
	}
	used := false
	for _, t := range teams {
		if t.Sheet == defaultSheet {
			used = true
		}
	}
	if !used {
		if err := out.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}
	idx, err := out.GetSheetIndex(teams[0].Sheet)
	if err != nil {
		return err
	}
	out.SetActiveSheet(idx)
	return nil
}
