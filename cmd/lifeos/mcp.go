// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lifeos/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log meals and workouts and read your
scores through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "lifeos": {
        "command": "lifeos",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_meal            Log a food item with calories and macros
  list_meals          List a day's food items with totals
  delete_meal         Delete a food item
  log_workout         Log a workout session
  list_workouts       List recent workouts
  delete_workout      Delete a workout
  add_measurement     Record a weigh-in
  list_measurements   Weigh-ins with changes
  daily_score         Score for one day
  score_history       Scores for a 7/30/90/all window
  analytics           Averages, best day, weight trend
  get_settings        Current goals and workout days
  update_goals        Change goals and workout days

AVAILABLE RESOURCES:

  lifeos://today       Today's meals, workouts, and score
  lifeos://history     Last 30 days of scores plus summary
  lifeos://dashboard   Cross-collection overview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		logger.Debug("serving MCP over stdio")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
