// ABOUTME: CLI command for listing athletes.
// ABOUTME: Shows distinct athlete names with session counts.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var athletesCmd = &cobra.Command{
	Use:   "athletes",
	Short: "List athletes with recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		athletes, err := repo.ListAthletes()
		if err != nil {
			return fmt.Errorf("failed to list athletes: %w", err)
		}

		if len(athletes) == 0 {
			fmt.Println("No athletes found. Run 'perfdash import' first.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range athletes {
			sessions, err := repo.ListSessions(a, 0)
			if err != nil {
				return fmt.Errorf("failed to list sessions for %s: %w", a, err)
			}
			fmt.Printf("%s %s\n", padRight(a, 20), faint.Sprintf("%d sessions", len(sessions)))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(athletesCmd)
}
