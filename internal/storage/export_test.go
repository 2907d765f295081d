// ABOUTME: Tests for export functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
	"gopkg.in/yaml.v3"
)

func exportDocument() *models.Document {
	doc := models.DefaultDocument()
	doc.Settings.WorkoutDays = []int{1, 4}
	doc.CalorieEntries = []models.CalorieEntry{
		{ID: "c1", Date: "2025-01-06", Time: "08:00", Meal: models.MealBreakfast, Food: "eggs", Calories: 1700, Protein: 120, Carbs: 150, Fat: 50},
		{ID: "c2", Date: "2025-01-08", Time: "12:00", Meal: models.MealLunch, Food: "wrap", Calories: 850, Protein: 60, Carbs: 75, Fat: 25},
	}
	doc.WorkoutEntries = []models.WorkoutEntry{
		{ID: "w1", Date: "2025-01-06", Type: "run", Duration: 30},
	}
	doc.BodyMeasurements = []models.BodyMeasurement{
		{ID: "m1", Date: "2025-01-01", Weight: 82},
		{ID: "m2", Date: "2025-01-08", Weight: 81.2},
	}
	return doc
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	data, err := EncodeJSON(exportDocument())
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	doc, skipped, err := models.DecodeDocument(data)
	if err != nil || len(skipped) != 0 {
		t.Fatalf("DecodeDocument = %v, skipped %v", err, skipped)
	}
	if len(doc.CalorieEntries) != 2 || doc.Settings.WorkoutDays[1] != 4 {
		t.Errorf("decoded %+v", doc)
	}
	if !strings.Contains(string(data), "\n  \"tasks\": []") {
		t.Errorf("expected two-space indent and empty tasks array, got:\n%s", data)
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("not a JSON object: %v", err)
	}
	settings := generic["settings"].(map[string]any)
	if _, ok := settings["dailyCalorieGoal"]; !ok {
		t.Error("settings should be a flat object with dailyCalorieGoal")
	}
}

func TestEncodeYAML(t *testing.T) {
	data, err := EncodeYAML(exportDocument())
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	entries, ok := parsed["calorieEntries"].([]any)
	if !ok || len(entries) != 2 {
		t.Errorf("calorieEntries = %v, want 2 entries", parsed["calorieEntries"])
	}
	settings, ok := parsed["settings"].(map[string]any)
	if !ok {
		t.Fatalf("settings = %v, want mapping", parsed["settings"])
	}
	if fmt.Sprint(settings["dailyCalorieGoal"]) != "1700" {
		t.Errorf("settings.dailyCalorieGoal = %v, want inline 1700", settings["dailyCalorieGoal"])
	}
}

func TestRenderMarkdown(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	md, err := RenderMarkdown(exportDocument(), score.Span{Window: score.Week}, now)
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	for _, want := range []string{
		"# LifeOS Health Export - 2025-01-10",
		"Range: last 7 days",
		"| 1700 kcal | 120 g | 150 g | 50 g | Mon, Thu |",
		"| 2025-01-06 | Mon | 100 (excellent) | 70 | 30 | 1700 | 120 | 150 | 50 | yes |",
		"| 2025-01-08 | Wed | 66 (good) | 36 | 30 | 850 | 60 | 75 | 25 | no |",
		"- Average score: 83",
		"- Best day: 2025-01-06 (100)",
		"| 2025-01-08 | 81.2 kg | -0.8 | -0.8 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	md, err := RenderMarkdown(models.DefaultDocument(), score.Span{Window: score.All}, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	if !strings.Contains(md, "No days with logged meals or workouts.") {
		t.Errorf("expected empty notice, got:\n%s", md)
	}
	if !strings.Contains(md, "Range: all") {
		t.Errorf("expected all range, got:\n%s", md)
	}
	if strings.Contains(md, "## Weight") {
		t.Error("weight section should be omitted without measurements")
	}
}

func TestRenderMarkdownDateRange(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	span := score.Span{From: "2025-01-07", To: "2025-01-08"}
	md, err := RenderMarkdown(exportDocument(), span, now)
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	if !strings.Contains(md, "Range: 2025-01-07 to 2025-01-08") {
		t.Errorf("expected explicit range heading, got:\n%s", md)
	}
	if !strings.Contains(md, "| 2025-01-08 | Wed | 66 (good) |") {
		t.Errorf("expected 2025-01-08 row, got:\n%s", md)
	}
	if strings.Contains(md, "| 2025-01-06 |") {
		t.Errorf("2025-01-06 is outside the range:\n%s", md)
	}
	if !strings.Contains(md, "- Days tracked: 1") {
		t.Errorf("expected one tracked day, got:\n%s", md)
	}

	if _, err := RenderMarkdown(exportDocument(), score.Span{From: "2025-02-01", To: "2025-01-01"}, now); err == nil {
		t.Error("expected error for reversed range")
	}
}

func TestSignedDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.26, "+1.3"},
		{0, "0.0"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		if got := SignedDelta(tt.in); got != tt.want {
			t.Errorf("SignedDelta(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
