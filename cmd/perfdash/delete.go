// ABOUTME: CLI command for deleting test sessions.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scurfo/perfdash/internal/csvload"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a test session",
	Long: `Delete a test session by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'perfdash list' output.

CAUTION:

  This permanently deletes the session. There is no undo.
  If the prefix matches multiple sessions, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// First, fetch the session to show what we're deleting
		session, err := repo.GetSession(idOrPrefix)
		if err != nil {
			return fmt.Errorf("session not found: %s", idOrPrefix)
		}

		if err := repo.DeleteSession(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Yellow("✗ Deleted session")
		fmt.Printf("  %s %s %s\n",
			color.New(color.Faint).Sprint(session.ID.String()[:8]),
			session.Athlete,
			session.Date.Format(csvload.DateLayout))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
