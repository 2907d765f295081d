// ABOUTME: Export functionality for the lifeos document.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
	"gopkg.in/yaml.v3"
)

// Format is an export output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, yaml/yml, and markdown/md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", s)
}

// EncodeJSON renders the document as indented JSON in the persisted shape.
func EncodeJSON(doc *models.Document) ([]byte, error) {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return data, nil
}

// EncodeYAML renders the same document as YAML.
func EncodeYAML(doc *models.Document) ([]byte, error) {
	doc.Normalize()
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return data, nil
}

// RenderMarkdown renders the score history over span, the analytics summary,
// and the weight table.
func RenderMarkdown(doc *models.Document, span score.Span, now time.Time) (string, error) {
	settings := doc.Settings
	scores, err := span.Scores(now, doc.CalorieEntries, doc.WorkoutEntries, settings)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	summary := score.Summarize(scores, doc.BodyMeasurements)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# LifeOS Health Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Range: %s\n\n", span))

	sb.WriteString("## Goals\n\n")
	sb.WriteString("| Calories | Protein | Carbs | Fat | Workout days |\n")
	sb.WriteString("|----------|---------|-------|-----|--------------|\n")
	sb.WriteString(fmt.Sprintf("| %.0f kcal | %.0f g | %.0f g | %.0f g | %s |\n\n",
		settings.DailyCalorieGoal, settings.DailyProteinGoal, settings.DailyCarbsGoal,
		settings.DailyFatGoal, WeekdayList(settings.WorkoutDays)))

	sb.WriteString("## Daily Scores\n\n")
	if len(scores) == 0 {
		sb.WriteString("No days with logged meals or workouts.\n\n")
	} else {
		sb.WriteString("| Date | Day | Total | Nutrition | Workout | Calories | Protein | Carbs | Fat | Worked out |\n")
		sb.WriteString("|------|-----|-------|-----------|---------|----------|---------|-------|-----|------------|\n")
		for _, ds := range scores {
			day := ""
			if wd, err := models.Weekday(ds.Date); err == nil {
				day = wd.String()[:3]
			}
			worked := "no"
			if ds.WorkedOut {
				worked = "yes"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %d (%s) | %d | %d | %.0f | %.0f | %.0f | %.0f | %s |\n",
				ds.Date, day, ds.TotalScore, ds.Band(), ds.NutritionScore, ds.WorkoutScore,
				ds.CalorieIntake, ds.ProteinIntake, ds.CarbsIntake, ds.FatIntake, worked))
		}
		sb.WriteString("\n")

		sb.WriteString("## Summary\n\n")
		sb.WriteString(fmt.Sprintf("- Days tracked: %d\n", summary.Days))
		sb.WriteString(fmt.Sprintf("- Average score: %.0f\n", summary.AverageScore))
		if summary.BestDay != nil {
			sb.WriteString(fmt.Sprintf("- Best day: %s (%d)\n", summary.BestDay.Date, summary.BestDay.TotalScore))
		}
		sb.WriteString(fmt.Sprintf("- Days worked out: %d\n\n", summary.WorkoutCount))
	}

	if len(summary.WeightTable) > 0 {
		sb.WriteString("## Weight\n\n")
		sb.WriteString("| Date | Weight | Change | Total |\n")
		sb.WriteString("|------|--------|--------|-------|\n")
		for _, row := range summary.WeightTable {
			sb.WriteString(fmt.Sprintf("| %s | %.1f kg | %s | %s |\n",
				row.Date, row.Weight, SignedDelta(row.Change), SignedDelta(row.TotalChange)))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// SignedDelta formats a weight change with an explicit sign.
func SignedDelta(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// WeekdayList renders weekday indices as short names, or "none".
func WeekdayList(days []int) string {
	if len(days) == 0 {
		return "none"
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		names = append(names, time.Weekday(d).String()[:3])
	}
	return strings.Join(names, ", ")
}
