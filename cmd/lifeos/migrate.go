// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies the whole document from the configured backend to another one.
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/config"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateForce  bool
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy all lifeos data from the configured backend to another one.

BACKENDS:

  sqlite   ~/.local/share/lifeos/lifeos.db (default)
  badger   ~/.local/share/lifeos/badger/

The destination must be empty unless --force is given. After migrating,
switch backends in ~/.config/lifeos/config.json or with LIFEOS_BACKEND.

EXAMPLES:

  lifeos migrate --to badger --dry-run
  lifeos migrate --to badger
  LIFEOS_BACKEND=badger lifeos migrate --to sqlite --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		to := strings.ToLower(migrateTo)
		if !slices.Contains(config.Backends, to) {
			return fmt.Errorf("unknown backend: %s (use %s)", migrateTo, strings.Join(config.Backends, ", "))
		}
		if to == config.BackendMemory {
			return fmt.Errorf("the memory backend cannot be a migration target")
		}
		from := cfg.GetBackend()
		if to == from {
			return fmt.Errorf("already using the %s backend", to)
		}

		if migrateDryRun {
			return previewMigration(from, to)
		}

		dst, err := cfg.OpenBackend(to, storage.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", to, err)
		}
		defer dst.Close()

		has, err := dst.HasData()
		if err != nil {
			return fmt.Errorf("failed to inspect %s storage: %w", to, err)
		}
		if has && !migrateForce {
			return fmt.Errorf("%s storage at %s already has data (use --force to overwrite)", to, cfg.BackendPath(to))
		}

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d records from %s to %s", summary.Total, from, to)
		printCounts(summary.Counts)
		fmt.Println()
		fmt.Printf("Set \"backend\": %q in %s to switch.\n", to, config.GetConfigPath())
		return nil
	},
}

func previewMigration(from, to string) error {
	color.Yellow("Dry run mode - no changes will be made")
	fmt.Println()

	doc, err := repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	fmt.Printf("Would copy from %s to %s (%s):\n", from, to, cfg.BackendPath(to))
	printCounts(doc.Counts())

	exists, err := destinationExists(to)
	if err != nil {
		return err
	}
	if exists {
		fmt.Println()
		color.Yellow("Note: %s already exists; migrating will require --force if it holds data.", cfg.BackendPath(to))
	}
	return nil
}

func destinationExists(backend string) (bool, error) {
	path := cfg.BackendPath(backend)
	if backend == config.BackendBadger {
		return storage.IsDirNonEmpty(path)
	}
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

func printCounts(counts map[string]int) {
	faint := color.New(color.Faint)
	for _, name := range models.CollectionNames {
		fmt.Printf("  %s %d\n", faint.Sprint(padRight(name, 18)), counts[name])
	}
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (sqlite or badger)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite a destination that already has data")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
