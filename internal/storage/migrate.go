// ABOUTME: Data migration between lifeos storage backends.
// ABOUTME: Copies the whole document, settings included, from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated records per collection.
type MigrateSummary struct {
	Counts map[string]int
	Total  int
}

// MigrateData copies all data from src to dst storage.
// The destination should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	doc, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load source document: %w", err)
	}

	if err := dst.Replace(doc); err != nil {
		return nil, fmt.Errorf("write destination document: %w", err)
	}

	summary := &MigrateSummary{Counts: doc.Counts()}
	for _, n := range summary.Counts {
		summary.Total += n
	}
	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
