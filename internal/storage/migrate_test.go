// ABOUTME: Tests for data migration between storage backends.
// ABOUTME: Covers sqlite-to-badger, badger-to-sqlite, and settings carry-over.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/lifeos/internal/models"
)

func populate(t *testing.T, s *Store) {
	t.Helper()
	if err := s.AddCalorieEntry(models.NewCalorieEntry(models.MealLunch, "rice bowl", 650).WithDate("2025-01-06").WithMacros(35, 80, 15)); err != nil {
		t.Fatalf("AddCalorieEntry failed: %v", err)
	}
	if err := s.AddWorkoutEntry(models.NewWorkoutEntry("cycle", 60).WithDate("2025-01-06")); err != nil {
		t.Fatalf("AddWorkoutEntry failed: %v", err)
	}
	if err := s.SetJournalEntries([]models.JournalEntry{{ID: "j1", Date: "2025-01-06", Content: "good day", Mood: models.MoodHappy}}); err != nil {
		t.Fatalf("SetJournalEntries failed: %v", err)
	}
	settings := models.DefaultSettings()
	settings.DailyCalorieGoal = 2100
	if err := s.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
}

func TestMigrateDataSQLiteToBadger(t *testing.T) {
	src := setupTestStore(t)
	populate(t, src)

	bdg, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	dst := NewStore(bdg)
	defer dst.Close()

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
	if summary.Counts["calorieEntries"] != 1 || summary.Counts["journalEntries"] != 1 {
		t.Errorf("Counts = %v", summary.Counts)
	}

	srcJSON, _ := src.Export()
	dstJSON, _ := dst.Export()
	if string(srcJSON) != string(dstJSON) {
		t.Errorf("destination differs from source:\n%s\n---\n%s", srcJSON, dstJSON)
	}
	settings, _ := dst.Settings()
	if settings.DailyCalorieGoal != 2100 {
		t.Errorf("DailyCalorieGoal = %v, want 2100", settings.DailyCalorieGoal)
	}
}

func TestMigrateDataBadgerToSQLite(t *testing.T) {
	kv, err := OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("OpenBadgerInMemory failed: %v", err)
	}
	src := NewStore(kv)
	defer src.Close()
	populate(t, src)

	dst := setupTestStore(t)
	if _, err := MigrateData(src, dst); err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}

	meals, _ := dst.CalorieEntries()
	if len(meals) != 1 || meals[0].Food != "rice bowl" {
		t.Errorf("meals = %+v", meals)
	}
	has, _ := dst.HasData()
	if !has {
		t.Error("destination should have data")
	}
}

func TestMigrateEmptySource(t *testing.T) {
	summary, err := MigrateData(NewMemoryStore(), NewMemoryStore())
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("Total = %d, want 0", summary.Total)
	}
}
