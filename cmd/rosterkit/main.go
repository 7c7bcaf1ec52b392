// Package main provides the CLI entry point for rosterkit.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/output"
)

var (
	configPath string
	jsonOut    bool
	pretty     bool
	inputPath  string
	outputPath string
	template   string
	top        int
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var logger zerolog.Logger

	rootCmd := &cobra.Command{
		Use:   "rosterkit",
		Short: "Season roster and play-by-play spreadsheet tools",
		Long: `rosterkit combines per-team roster sheets, aggregates batter vs pitcher
head-to-head totals from play-by-play data and renders printable player cards.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = rosterkit.SetupLogging(logOut)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: built-in season paths)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print the run summary as JSON")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	combineCmd := &cobra.Command{
		Use:   "combine",
		Short: "Stack every roster sheet into one sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			summary, err := rosterkit.CombineRosters(cfg.Combine, logger)
			if err != nil {
				return fmt.Errorf("combine failed: %w", err)
			}
			return report(cmd.OutOrStdout(), summary, printCombine)
		},
	}

	h2hCmd := &cobra.Command{
		Use:   "h2h",
		Short: "Sum regular season batter vs pitcher stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			summary, err := rosterkit.HeadToHead(cfg.HeadToHead, logger)
			if err != nil {
				return fmt.Errorf("head-to-head failed: %w", err)
			}
			return report(cmd.OutOrStdout(), summary, printHeadToHead)
		},
	}
	h2hCmd.Flags().IntVar(&top, "top", 10, "Number of leading matchups to report")

	cardsCmd := &cobra.Command{
		Use:   "cards",
		Short: "Render player cards for every team sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			summary, err := rosterkit.RenderCards(cfg.Cards, logger)
			if err != nil {
				return fmt.Errorf("card rendering failed: %w", err)
			}
			return report(cmd.OutOrStdout(), summary, printCards)
		},
	}
	cardsCmd.Flags().StringVarP(&template, "template", "t", "", "Card template workbook")

	for _, c := range []*cobra.Command{combineCmd, h2hCmd, cardsCmd} {
		c.Flags().StringVarP(&inputPath, "input", "i", "", "Input file")
		c.Flags().StringVarP(&outputPath, "output", "o", "", "Output file")
		rootCmd.AddCommand(c)
	}
	return rootCmd
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (rosterkit.Config, error) {
	cfg, err := rosterkit.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	switch cmd.Name() {
	case "combine":
		if flags.Changed("input") {
			cfg.Combine.Input = inputPath
		}
		if flags.Changed("output") {
			cfg.Combine.Output = outputPath
		}
	case "h2h":
		if flags.Changed("input") {
			cfg.HeadToHead.Input = inputPath
		}
		if flags.Changed("output") {
			cfg.HeadToHead.Output = outputPath
		}
		if flags.Changed("top") {
			cfg.HeadToHead.Top = top
		}
	case "cards":
		if flags.Changed("input") {
			cfg.Cards.Input = inputPath
		}
		if flags.Changed("output") {
			cfg.Cards.Output = outputPath
		}
		if flags.Changed("template") {
			cfg.Cards.Template = template
		}
	}
	return cfg, nil
}

func report[T any](w io.Writer, summary *T, text func(io.Writer, *T)) error {
	if !jsonOut {
		text(w, summary)
		return nil
	}
	jsonData, err := output.ToJSON(summary, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func printCombine(w io.Writer, s *models.CombineSummary) {
	for _, sheet := range s.Sheets {
		fmt.Fprintf(w, "Processed %s: %d players\n", sheet.Name, sheet.Count)
	}
	fmt.Fprintf(w, "\nCombined data saved to %s\n", s.Output)
	fmt.Fprintf(w, "Total players: %d\n", s.Rows)
	fmt.Fprintf(w, "Columns: %s\n", strings.Join(s.Columns, ", "))

	fmt.Fprintln(w, "\nFirst rows:")
	for _, row := range s.Head {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	fmt.Fprintln(w, "\nPlayers per team:")
	for _, team := range s.Teams {
		fmt.Fprintf(w, "%-20s %d\n", team.Name, team.Count)
	}
}

func printHeadToHead(w io.Writer, s *models.HeadToHeadSummary) {
	fmt.Fprintf(w, "Play rows: %d\n", s.InputRows)
	fmt.Fprintf(w, "Regular season rows: %d\n", s.RegularSeasonRows)
	if s.UnkeyedRows > 0 {
		fmt.Fprintf(w, "Rows without batter or pitcher: %d\n", s.UnkeyedRows)
	}
	fmt.Fprintf(w, "Batter/pitcher pairs: %d\n", s.Pairs)
	fmt.Fprintf(w, "Total PA: %g\n", s.TotalPA)
	fmt.Fprintf(w, "Total AB: %g\n", s.TotalAB)
	fmt.Fprintf(w, "\nHead-to-head data saved to %s\n", s.Output)

	fmt.Fprintf(w, "\nTop %d matchups by PA:\n", len(s.Top))
	for _, m := range s.Top {
		fmt.Fprintf(w, "%-12s %-12s %g\n", m.Batter, m.Pitcher, m.Stat("pa"))
	}
}

func printCards(w io.Writer, s *models.CardsSummary) {
	for _, team := range s.Teams {
		fmt.Fprintf(w, "%s: %s %s, %d batters, %d pitcher-batters, %d pitchers, %d cards\n",
			team.Sheet, team.Header.Year, team.Header.Team,
			team.BattersOnly, team.PitcherBatters, team.Pitchers, team.Cards)
	}
	for _, sheet := range s.Skipped {
		fmt.Fprintf(w, "Skipped %s: no year/team in header\n", sheet)
	}
	if s.Fallbacks > 0 {
		fmt.Fprintf(w, "Style attributes replaced by defaults: %d\n", s.Fallbacks)
	}
	fmt.Fprintf(w, "\nPlayer cards saved to %s\n", s.Output)
}
