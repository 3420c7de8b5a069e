// ABOUTME: CLI command for importing session data from CSV.
// ABOUTME: Parses the dashboard CSV column layout and stores each row.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scurfo/perfdash/internal/csvload"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import test sessions from a CSV file",
	Long: `Import test sessions from a CSV export.

The file must have a header row with these columns:

  athlete, date, date_of_birth, injury_date, body_mass,
  knee_extension_force_left/right, knee_extension_lever_left/right,
  knee_flexion_force_left/right, knee_flexion_lever_left/right,
  calf_force_left/right, sl_jump_height_left/right, rsid_left/right

Dates use YYYY-MM-DD. Rows with an empty athlete are skipped.

EXAMPLES:

  perfdash import data.csv
  perfdash import exports/march-testing.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := csvload.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to load csv: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found in file.")
			return nil
		}

		for _, s := range sessions {
			if err := repo.CreateSession(s); err != nil {
				return fmt.Errorf("failed to store session for %s on %s: %w",
					s.Athlete, s.Date.Format(csvload.DateLayout), err)
			}
		}

		color.Green("✓ Imported %d sessions", len(sessions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
