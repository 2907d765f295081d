// ABOUTME: CLI commands for exporting, importing, and resetting lifeos data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/score"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportRange  string
	exportFrom   string
	exportTo     string
	resetConfirm bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export lifeos data",
	Long: `Export lifeos data in various formats.

FORMATS:

  json       Full document (suitable for backup/restore with 'lifeos import')
  yaml       Same document as YAML (human-readable)
  markdown   Goals, daily score table, summary, and weight table

OPTIONS:

  --output, -o   Write to file instead of stdout
  --range, -r    Score window for markdown: 7, 30, 90, or all (default 30)
  --from, --to   Explicit markdown date range (YYYY-MM-DD) instead of --range

EXAMPLES:

  lifeos export json -o backup.json
  lifeos export yaml
  lifeos export markdown --range 90
  lifeos export markdown --from 2025-01-01 --to 2025-03-31`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := storage.ParseFormat(args[0])
		if err != nil {
			return err
		}

		doc, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		var data []byte
		switch format {
		case storage.FormatJSON:
			data, err = storage.EncodeJSON(doc)
		case storage.FormatYAML:
			data, err = storage.EncodeYAML(doc)
		case storage.FormatMarkdown:
			now := time.Now()
			span, serr := score.ParseSpan(exportRange, exportFrom, exportTo, now)
			if serr != nil {
				return serr
			}
			var md string
			md, err = storage.RenderMarkdown(doc, span, now)
			data = []byte(md)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data from a JSON backup",
	Long: `Import a JSON document previously written by 'lifeos export json'.

The import replaces everything currently stored, settings included.
Collections missing from the file are reset to empty. A collection with the
wrong shape is reset too and reported. A file that is not a JSON object is
rejected and nothing is changed.

EXAMPLES:

  lifeos import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		skipped, err := repo.Import(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		doc, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		for _, key := range skipped {
			color.Yellow("! Skipped malformed %s, reset to defaults", key)
		}
		printCounts(doc.Counts())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and restore default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			ok, err := confirm(os.Stdin, os.Stdout, "Delete ALL lifeos data? This cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Reset canceled.")
				return nil
			}
		}

		if err := repo.Clear(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Yellow("✗ All data deleted")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportRange, "range", "r", "30", "score window for markdown: 7, 30, 90, or all")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "first day of a markdown date range (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "last day of a markdown date range (default today)")

	resetCmd.Flags().BoolVarP(&resetConfirm, "yes", "y", false, "skip confirmation prompt")

	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
}
