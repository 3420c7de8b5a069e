// ABOUTME: CLI command for listing test sessions.
// ABOUTME: Supports filtering by athlete and limiting results.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scurfo/perfdash/internal/csvload"
	"github.com/spf13/cobra"
)

var (
	listAthlete string
	listLimit   int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List test sessions",
	Long: `List recent test sessions.

OUTPUT FORMAT:

  Each line shows: ID  DATE  ATHLETE  BODY_MASS

  The ID is an 8-character prefix you can use with delete and report commands.

EXAMPLES:

  perfdash list                     # Show last 20 sessions (all athletes)
  perfdash list --athlete jane      # Show only jane's sessions
  perfdash list -a jane -n 50       # Show jane's last 50 sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(listAthlete, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			fmt.Printf("%s %s %s %.1f kg\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.Date.Format(csvload.DateLayout)),
				padRight(s.Athlete, 16),
				s.BodyMass)
		}

		return nil
	},
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	listCmd.Flags().StringVarP(&listAthlete, "athlete", "a", "", "Filter by athlete")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Maximum sessions to show")
	rootCmd.AddCommand(listCmd)
}
