// ABOUTME: CLI commands for the daily score, score history, and analytics.
// ABOUTME: Renders score breakdowns, per-day tables, and window summaries.
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	historyRange   string
	historyFrom    string
	historyTo      string
	analyticsRange string
	analyticsFrom  string
	analyticsTo    string
)

var scoreCmd = &cobra.Command{
	Use:   "score [date]",
	Short: "Show the health score for a day",
	Long: `Show the 0-100 health score for a day (default today).

The date can be today, yesterday, or YYYY-MM-DD.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		date, err := resolveDate(arg, time.Now())
		if err != nil {
			return err
		}

		doc, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		ds := score.Calculate(date, doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
		printScore(ds, doc.Settings)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show daily scores over a window",
	Long: `Show daily scores for days with at least one logged meal or workout.

RANGES:

  7, 30 (default), 90, all (the last year)

Use --from and --to (YYYY-MM-DD) for an explicit date range instead. Without
--to the range runs through today.

EXAMPLES:

  lifeos history --range 7
  lifeos history --from 2025-01-01 --to 2025-01-31`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		span, err := score.ParseSpan(historyRange, historyFrom, historyTo, now)
		if err != nil {
			return err
		}

		doc, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		scores, err := span.Scores(now, doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
		if err != nil {
			return err
		}
		if len(scores) == 0 {
			fmt.Println("No days with logged meals or workouts.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println(faint.Sprint("DATE       DAY  SCORE  NUTR  WORK  KCAL   PROT  CARB  FAT"))
		for _, ds := range scores {
			wd, _ := models.Weekday(ds.Date)
			worked := " "
			if ds.WorkedOut {
				worked = "✓"
			}
			fmt.Printf("%s %s  %s  %4d  %4d  %5.0f  %4.0f  %4.0f  %3.0f %s\n",
				ds.Date,
				wd.String()[:3],
				bandColor(ds.Band()).Sprintf("%5d", ds.TotalScore),
				ds.NutritionScore,
				ds.WorkoutScore,
				ds.CalorieIntake,
				ds.ProteinIntake,
				ds.CarbsIntake,
				ds.FatIntake,
				worked)
		}

		return nil
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarize scores and weight over a window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		span, err := score.ParseSpan(analyticsRange, analyticsFrom, analyticsTo, now)
		if err != nil {
			return err
		}

		doc, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		scores, err := span.Scores(now, doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
		if err != nil {
			return err
		}
		s := score.Summarize(scores, doc.BodyMeasurements)

		color.New(color.Bold).Printf("Analytics (%s)\n\n", span)

		if s.Days == 0 {
			fmt.Println("No days with logged meals or workouts.")
		} else {
			fmt.Printf("Days tracked:     %d\n", s.Days)
			fmt.Printf("Average score:    %s\n", bandColor(score.Classify(int(math.Round(s.AverageScore)))).Sprintf("%.0f", s.AverageScore))
			fmt.Printf("  Nutrition:      %.1f / %d\n", s.AverageNutrition, score.NutritionMax)
			fmt.Printf("  Workout:        %.1f / %d\n", s.AverageWorkout, score.WorkoutBudget)
			fmt.Printf("Average intake:   %.0f kcal  P %.0fg  C %.0fg  F %.0fg\n",
				s.AverageCalories, s.AverageProtein, s.AverageCarbs, s.AverageFat)
			if s.BestDay != nil {
				fmt.Printf("Best day:         %s (%d)\n", s.BestDay.Date, s.BestDay.TotalScore)
			}
			fmt.Printf("Workout days:     %d\n", s.WorkoutCount)
		}

		if len(s.WeightTable) > 0 {
			fmt.Println()
			fmt.Printf("Weight:           %.1f kg -> %.1f kg (%s)\n",
				s.FirstWeight, s.LatestWeight, storage.SignedDelta(s.TotalWeightChange))
		}

		return nil
	},
}

func printScore(ds score.DailyScore, settings models.Settings) {
	band := ds.Band()
	fmt.Printf("%s  %s %s\n",
		color.New(color.Bold).Sprint(ds.Date),
		bandColor(band).Sprintf("%d/100", ds.TotalScore),
		color.New(color.Faint).Sprintf("(%s)", band))
	fmt.Println()
	fmt.Printf("Nutrition  %2d/%d\n", ds.NutritionScore, score.NutritionMax)
	printMacro("Calories", ds.CalorieIntake, settings.DailyCalorieGoal, "kcal", score.CalorieBudget)
	printMacro("Protein", ds.ProteinIntake, settings.DailyProteinGoal, "g", score.ProteinBudget)
	printMacro("Carbs", ds.CarbsIntake, settings.DailyCarbsGoal, "g", score.CarbsBudget)
	printMacro("Fat", ds.FatIntake, settings.DailyFatGoal, "g", score.FatBudget)

	workout := "no workout"
	if ds.WorkedOut {
		workout = "worked out"
	}
	plan := "no workout days planned"
	if !settings.WorkoutPlan.IsEmpty() {
		plan = "plan: " + storage.WeekdayList(settings.WorkoutDays)
	}
	fmt.Printf("Workout    %2d/%d  %s, %s\n", ds.WorkoutScore, score.WorkoutBudget, workout, plan)
}

func printMacro(name string, actual, goal float64, unit string, budget int) {
	fmt.Printf("  %s %6.0f / %-6.0f %-4s %2d/%d\n",
		padRight(name, 9), actual, goal, unit, score.Proximity(actual, goal, budget), budget)
}

func init() {
	historyCmd.Flags().StringVarP(&historyRange, "range", "r", "30", "window: 7, 30, 90, or all")
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "first day of an explicit range (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "last day of an explicit range (default today)")
	analyticsCmd.Flags().StringVarP(&analyticsRange, "range", "r", "30", "window: 7, 30, 90, or all")
	analyticsCmd.Flags().StringVar(&analyticsFrom, "from", "", "first day of an explicit range (YYYY-MM-DD)")
	analyticsCmd.Flags().StringVar(&analyticsTo, "to", "", "last day of an explicit range (default today)")

	rootCmd.AddCommand(scoreCmd, historyCmd, analyticsCmd)
}
