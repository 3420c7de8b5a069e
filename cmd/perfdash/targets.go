// ABOUTME: CLI command for showing the active clinical target table.
// ABOUTME: Prints target value, unit, and amber threshold per test.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scurfo/perfdash/internal/models"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show the active clinical target table",
	Long: `Show the target value and amber threshold used to score each test.

Built-in defaults apply unless the config's "targets" field points at a
YAML override file, e.g.:

  knee_extension:
    value: 3.5
    threshold: 0.8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, tt := range models.AllTestTypes {
			tgt, err := targetTable.Get(tt)
			if err != nil {
				fmt.Printf("%s %s\n", padRight(string(tt), 16), faint.Sprint("no target"))
				continue
			}
			fmt.Printf("%s %8.2f %-9s %s\n",
				padRight(string(tt), 16),
				tgt.Value, tgt.Unit,
				faint.Sprintf("amber below %.0f%%", tgt.GetThreshold()*100))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
