// ABOUTME: Tests for the analytics summary.
// ABOUTME: Covers averages, best-day ties, workout counts, and the weight table.
package score

import (
	"math"
	"testing"

	"github.com/harperreed/lifeos/internal/models"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)

	if s.AverageScore != 0 || s.BestDay != nil || s.WorkoutCount != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero values", s)
	}
	if s.FirstWeight != 0 || s.LatestWeight != 0 || s.TotalWeightChange != 0 {
		t.Errorf("weights = %v/%v/%v, want 0", s.FirstWeight, s.LatestWeight, s.TotalWeightChange)
	}
	if s.WeightTable == nil || len(s.WeightTable) != 0 {
		t.Errorf("WeightTable = %v, want empty", s.WeightTable)
	}
}

func TestSummarizeScores(t *testing.T) {
	scores := []DailyScore{
		{Date: "2025-01-01", TotalScore: 60, NutritionScore: 30, WorkoutScore: 30, CalorieIntake: 1000, WorkedOut: true},
		{Date: "2025-01-02", TotalScore: 90, NutritionScore: 60, WorkoutScore: 30, CalorieIntake: 2000},
		{Date: "2025-01-03", TotalScore: 90, NutritionScore: 70, WorkoutScore: 20, CalorieIntake: 1500, WorkedOut: true},
	}

	s := Summarize(scores, nil)

	if s.AverageScore != 80 {
		t.Errorf("AverageScore = %v, want 80", s.AverageScore)
	}
	if s.AverageCalories != 1500 {
		t.Errorf("AverageCalories = %v, want 1500", s.AverageCalories)
	}
	if s.BestDay == nil || s.BestDay.Date != "2025-01-02" {
		t.Errorf("BestDay = %+v, want first maximum 2025-01-02", s.BestDay)
	}
	if s.WorkoutCount != 2 {
		t.Errorf("WorkoutCount = %d, want 2", s.WorkoutCount)
	}
	if s.Days != 3 {
		t.Errorf("Days = %d, want 3", s.Days)
	}
}

func TestSummarizeWeightTable(t *testing.T) {
	fat := 20.0
	measurements := []models.BodyMeasurement{
		{ID: "c", Date: "2025-01-15", Weight: 79.5},
		{ID: "a", Date: "2025-01-01", Weight: 82, BodyFat: &fat},
		{ID: "b", Date: "2025-01-08", Weight: 80.5},
	}

	s := Summarize(nil, measurements)

	if s.FirstWeight != 82 || s.LatestWeight != 79.5 {
		t.Errorf("first/latest = %v/%v, want 82/79.5", s.FirstWeight, s.LatestWeight)
	}
	if s.TotalWeightChange != -2.5 {
		t.Errorf("TotalWeightChange = %v, want -2.5", s.TotalWeightChange)
	}

	want := []WeightRow{
		{Date: "2025-01-01", Weight: 82, BodyFat: 20, Change: 0, TotalChange: 0},
		{Date: "2025-01-08", Weight: 80.5, Change: -1.5, TotalChange: -1.5},
		{Date: "2025-01-15", Weight: 79.5, Change: -1, TotalChange: -2.5},
	}
	if len(s.WeightTable) != len(want) {
		t.Fatalf("WeightTable has %d rows, want %d", len(s.WeightTable), len(want))
	}
	for i, w := range want {
		got := s.WeightTable[i]
		if got.Date != w.Date || got.Weight != w.Weight || got.BodyFat != w.BodyFat ||
			math.Abs(got.Change-w.Change) > 1e-9 || math.Abs(got.TotalChange-w.TotalChange) > 1e-9 {
			t.Errorf("row %d = %+v, want %+v", i, got, w)
		}
	}

	if measurements[0].ID != "c" {
		t.Error("Summarize reordered its input")
	}
}

func TestSummarizeSameDayMeasurementsKeepOrder(t *testing.T) {
	measurements := []models.BodyMeasurement{
		{ID: "morning", Date: "2025-01-01", Weight: 80},
		{ID: "evening", Date: "2025-01-01", Weight: 81},
	}

	s := Summarize(nil, measurements)

	if s.FirstWeight != 80 || s.LatestWeight != 81 {
		t.Errorf("first/latest = %v/%v, want 80/81", s.FirstWeight, s.LatestWeight)
	}
}
