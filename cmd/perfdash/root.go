// ABOUTME: Root Cobra command for perfdash CLI.
// ABOUTME: Handles config, storage, and target-table lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/scurfo/perfdash/internal/config"
	"github.com/scurfo/perfdash/internal/storage"
	"github.com/scurfo/perfdash/internal/targets"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	repo        storage.Repository
	targetTable targets.Table
)

var rootCmd = &cobra.Command{
	Use:   "perfdash",
	Short: "Athlete performance metrics dashboard",
	Long: `Perfdash tracks athlete test sessions and derives rehab metrics from them.

WHAT IT COMPUTES:

  Strength   knee extension and flexion torque normalized to body mass,
             calf strength as percent of bodyweight
  Jumps      single-leg jump height and reactive strength index
  Indices    left/right asymmetry percentage per test
  Scoring    percent of clinical target per side, with green/amber/red bands
  Timeline   age and weeks since injury per session

QUICK START:

  $ perfdash import data.csv            # Load test sessions from CSV
  $ perfdash athletes                   # See who has sessions recorded
  $ perfdash report jane                # Render jane's latest session report
  $ perfdash report jane --date 2024-03-15
  $ perfdash list --athlete jane        # List jane's sessions

TARGETS:

  Scoring uses built-in clinical targets (e.g. knee extension 3.3 N.m.kg⁻¹,
  calf strength 200 %BW). Override them with a YAML file referenced from the
  config's "targets" field. 'perfdash targets' shows the active table.

MCP INTEGRATION:

  Run 'perfdash mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "perfdash": { "command": "perfdash", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Sessions are stored in SQLite (default) or Badger under
  ~/.local/share/perfdash. Select the backend in
  ~/.config/perfdash/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		targetTable, err = cfg.LoadTargets()
		if err != nil {
			return fmt.Errorf("failed to load targets: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
