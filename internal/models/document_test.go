// ABOUTME: Tests for document and settings decoding.
// ABOUTME: Verifies per-field defaults, shape errors, and settings validation.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Theme != ThemeLight {
		t.Errorf("Theme = %s, want light", s.Theme)
	}
	if s.DailyCalorieGoal != 1700 || s.DailyProteinGoal != 120 || s.DailyCarbsGoal != 150 || s.DailyFatGoal != 50 {
		t.Errorf("nutrition goals = %+v", s.NutritionGoal)
	}
	if s.YearlyBookGoal != 50 || s.WeeklyWorkoutGoal != 2 || s.MonthlyWorkoutGoal != 8 {
		t.Errorf("other goals = %v/%v/%v", s.YearlyBookGoal, s.WeeklyWorkoutGoal, s.MonthlyWorkoutGoal)
	}
	if s.WorkoutDays == nil || len(s.WorkoutDays) != 0 {
		t.Errorf("WorkoutDays = %v, want empty non-nil", s.WorkoutDays)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSettingsJSONIsFlat(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"dailyCalorieGoal":1700`, `"workoutDays":[]`, `"theme":"light"`} {
		if !strings.Contains(s, key) {
			t.Errorf("settings JSON %s missing %s", s, key)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"unknown theme", func(s *Settings) { s.Theme = "blue" }},
		{"negative calories", func(s *Settings) { s.DailyCalorieGoal = -1 }},
		{"negative monthly", func(s *Settings) { s.MonthlyWorkoutGoal = -3 }},
		{"day out of range", func(s *Settings) { s.WorkoutDays = []int{7} }},
		{"duplicate day", func(s *Settings) { s.WorkoutDays = []int{1, 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestWithWorkoutDaysSortsAndDedupes(t *testing.T) {
	s := DefaultSettings().WithWorkoutDays([]time.Weekday{time.Friday, time.Monday, time.Friday})

	want := []int{1, 5}
	if len(s.WorkoutDays) != len(want) {
		t.Fatalf("WorkoutDays = %v, want %v", s.WorkoutDays, want)
	}
	for i := range want {
		if s.WorkoutDays[i] != want[i] {
			t.Errorf("WorkoutDays = %v, want %v", s.WorkoutDays, want)
		}
	}
	if !s.Includes(time.Monday) || s.Includes(time.Tuesday) {
		t.Error("Includes disagrees with WorkoutDays")
	}
}

func TestDecodeDocumentFillsDefaults(t *testing.T) {
	doc, skipped, err := DecodeDocument([]byte(`{"tasks":[{"id":"t1","title":"x"}],"settings":{"dailyCalorieGoal":2000}}`))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
	if len(doc.Tasks) != 1 {
		t.Errorf("Tasks = %d, want 1", len(doc.Tasks))
	}
	if doc.CalorieEntries == nil || doc.Goals == nil {
		t.Error("missing collections should decode as empty slices")
	}
	if doc.Settings.DailyCalorieGoal != 2000 {
		t.Errorf("DailyCalorieGoal = %v, want 2000", doc.Settings.DailyCalorieGoal)
	}
	if doc.Settings.DailyProteinGoal != DefaultProteinGoal {
		t.Errorf("DailyProteinGoal = %v, want default", doc.Settings.DailyProteinGoal)
	}
}

func TestDecodeDocumentSkipsMalformedCollections(t *testing.T) {
	doc, skipped, err := DecodeDocument([]byte(`{"workoutEntries":"oops","books":null,"settings":[1]}`))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if len(skipped) != 2 || skipped[0] != "workoutEntries" || skipped[1] != "settings" {
		t.Errorf("skipped = %v, want [workoutEntries settings]", skipped)
	}
	if doc.WorkoutEntries == nil || len(doc.WorkoutEntries) != 0 {
		t.Errorf("WorkoutEntries = %v, want empty", doc.WorkoutEntries)
	}
	if doc.Books == nil {
		t.Error("null collection should decode as empty slice")
	}
	if doc.Settings.Theme != ThemeLight {
		t.Errorf("Theme = %s, want default", doc.Settings.Theme)
	}
}

func TestDecodeDocumentRejectsNonObjects(t *testing.T) {
	for _, in := range []string{`not json`, `[]`, `null`, `"str"`, `{"tasks":`} {
		if _, _, err := DecodeDocument([]byte(in)); err == nil {
			t.Errorf("DecodeDocument(%q) = nil error, want error", in)
		}
	}
}

func TestDocumentCounts(t *testing.T) {
	doc := DefaultDocument()
	if !doc.IsEmpty() {
		t.Error("default document should be empty")
	}
	doc.Goals = append(doc.Goals, Goal{ID: "g"})
	if doc.IsEmpty() {
		t.Error("document with a goal should not be empty")
	}
	if doc.Counts()["goals"] != 1 {
		t.Errorf("goals count = %d, want 1", doc.Counts()["goals"])
	}
	if len(doc.Counts()) != len(CollectionNames) {
		t.Errorf("Counts has %d keys, want %d", len(doc.Counts()), len(CollectionNames))
	}
}
