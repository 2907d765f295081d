// ABOUTME: Root Cobra command for lifeos CLI.
// ABOUTME: Loads config and handles the storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/lifeos/internal/config"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo    storage.Repository
	cfg     *config.Config
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lifeos"})
	verbose bool
)

// commands that never touch storage
var noStorage = map[string]bool{
	"help":          true,
	"version":       true,
	"install-skill": true,
	"completion":    true,
}

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Personal health score and life tracker",
	Long: `lifeos tracks meals, workouts, and body measurements and turns them into a
daily health score out of 100.

SCORING:

  Nutrition (70)  calories 25, protein 30, carbs 10, fat 5
                  full points within 10% of the goal, less the further off you are
  Workout (30)    full points on planned workout days when you trained,
                  and on every day when no workout days are planned

QUICK START:

  $ lifeos meal add lunch "chicken salad" 520 --protein 45 --carbs 20 --fat 25
  $ lifeos workout add run --duration 35
  $ lifeos measure add 81.4 --body-fat 18
  $ lifeos score                     # Today's score
  $ lifeos history --range 7         # Last week, day by day
  $ lifeos analytics --range 30      # Averages, best day, weight trend
  $ lifeos dashboard                 # Everything at a glance

GOALS:

  $ lifeos settings goals --calories 2000 --protein 140
  $ lifeos settings workout-days mon wed fri

MCP INTEGRATION:

  Run 'lifeos mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "lifeos": { "command": "lifeos", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/lifeos (SQLite by default). Choose a backend in
  ~/.config/lifeos/config.json, a .env file next to it, or LIFEOS_BACKEND.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		if skipsStorage(cmd) {
			return nil
		}

		if repo != nil {
			_ = repo.Close()
			repo = nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage(storage.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
		}
		logger.Debug("opened storage", "backend", cfg.GetBackend(), "dir", cfg.GetDataDir())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

func skipsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if noStorage[c.Name()] {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
