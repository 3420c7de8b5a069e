// ABOUTME: CLI command for rendering a session's derived-metrics report.
// ABOUTME: Color-banded terminal dashboard of strength, jump, and asymmetry data.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/scurfo/perfdash/internal/csvload"
	"github.com/scurfo/perfdash/internal/engine"
	"github.com/scurfo/perfdash/internal/models"
	"github.com/spf13/cobra"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   "report <athlete>",
	Short: "Show the derived-metrics report for a session",
	Long: `Compute and render the derived-metrics report for an athlete's session.

Defaults to the most recent session; use --date to pick an earlier one.

Each test shows the left/right derived values, their percent of the clinical
target, and the between-side asymmetry. Colors follow the usual bands:
green at target (or under 10% asymmetry), amber above 70% of target (or
under 20% asymmetry), red below that.

EXAMPLES:

  perfdash report jane
  perfdash report jane --date 2024-03-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		athlete := args[0]

		session, err := findSession(athlete, reportDate)
		if err != nil {
			return err
		}

		report, err := engine.ComputeSession(session, targetTable)
		if err != nil {
			return fmt.Errorf("failed to compute report: %w", err)
		}

		renderReport(report)
		return nil
	},
}

func findSession(athlete, date string) (*models.Session, error) {
	if date == "" {
		s, err := repo.LatestSession(athlete)
		if err != nil {
			return nil, fmt.Errorf("no sessions for %s: %w", athlete, err)
		}
		return s, nil
	}

	day, err := time.Parse(csvload.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}
	sessions, err := repo.ListSessions(athlete, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Date.Year() == day.Year() && s.Date.YearDay() == day.YearDay() {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no session for %s on %s", athlete, date)
}

func renderReport(r *engine.SessionReport) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("%s", r.Athlete)
	fmt.Printf("  %s", r.Date.Format(csvload.DateLayout))
	if r.AgeYears > 0 {
		faint.Printf("  age %.1f", r.AgeYears)
	}
	if r.WeeksSinceInjury != 0 {
		faint.Printf("  week %.1f post-injury", r.WeeksSinceInjury)
	}
	fmt.Println()
	fmt.Println()

	for _, t := range r.Tests {
		bold.Printf("  %s\n", t.Test)
		renderSide(t.Left, "left ")
		renderSide(t.Right, "right")
		if t.Asymmetry != nil {
			c := bandColor(t.AsymmetryBand)
			fmt.Printf("    asym   %s\n", c.Sprintf("%+.1f%%", *t.Asymmetry))
		} else {
			fmt.Printf("    asym   %s\n", faint.Sprint("n/a"))
		}
	}

	if len(r.Problems) > 0 {
		fmt.Println()
		for _, p := range r.Problems {
			color.Yellow("  ! %s", p)
		}
	}
}

func renderSide(s engine.SideScore, label string) {
	c := bandColor(s.Score.Band)
	fmt.Printf("    %s  %8.2f %-9s %s\n",
		label, s.Metric.Value, s.Metric.Unit,
		c.Sprintf("%.1f%% of target", s.Score.Raw))
}

func bandColor(b engine.Band) *color.Color {
	switch b {
	case engine.BandGreen:
		return color.New(color.FgGreen)
	case engine.BandAmber:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func init() {
	reportCmd.Flags().StringVarP(&reportDate, "date", "d", "", "Session date (YYYY-MM-DD)")
	rootCmd.AddCommand(reportCmd)
}
