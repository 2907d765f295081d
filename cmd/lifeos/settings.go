// ABOUTME: CLI commands for viewing and changing settings.
// ABOUTME: Covers nutrition goals, planned workout days, and theme.
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	goalCalories      float64
	goalProtein       float64
	goalCarbs         float64
	goalFat           float64
	goalBooks         float64
	goalWeeklyWorkout float64
	goalMonthWorkout  float64
)

var goalFlags = []string{"calories", "protein", "carbs", "fat", "books", "weekly-workouts", "monthly-workouts"}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change settings",
	Long: `View and change goals and preferences.

EXAMPLES:

  lifeos settings show
  lifeos settings goals --calories 2000 --protein 140
  lifeos settings workout-days mon wed fri
  lifeos settings workout-days none
  lifeos settings theme dark`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		printSettings(s)
		return nil
	},
}

var settingsGoalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Set nutrition and activity goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		flags := cmd.Flags()
		if !slices.ContainsFunc(goalFlags, flags.Changed) {
			return fmt.Errorf("no goals given (see --help)")
		}
		if flags.Changed("calories") {
			s.DailyCalorieGoal = goalCalories
		}
		if flags.Changed("protein") {
			s.DailyProteinGoal = goalProtein
		}
		if flags.Changed("carbs") {
			s.DailyCarbsGoal = goalCarbs
		}
		if flags.Changed("fat") {
			s.DailyFatGoal = goalFat
		}
		if flags.Changed("books") {
			s.YearlyBookGoal = goalBooks
		}
		if flags.Changed("weekly-workouts") {
			s.WeeklyWorkoutGoal = goalWeeklyWorkout
		}
		if flags.Changed("monthly-workouts") {
			s.MonthlyWorkoutGoal = goalMonthWorkout
		}

		if err := repo.SaveSettings(s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ Goals updated")
		printSettings(s)
		return nil
	},
}

var settingsWorkoutDaysCmd = &cobra.Command{
	Use:   "workout-days <day>...",
	Short: "Set planned workout days",
	Long: `Set the weekdays you plan to work out. Days are names (mon, tuesday) or
indices 0-6 where 0 is Sunday. Use "none" to clear the plan.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := models.ParseWeekdays(args)
		if err != nil {
			return err
		}

		s, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		s = s.WithWorkoutDays(days)

		if err := repo.SaveSettings(s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ Workout days: %s", storage.WeekdayList(s.WorkoutDays))
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <light|dark>",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.ThemeLight), string(models.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		s.Theme = models.Theme(strings.ToLower(args[0]))

		if err := repo.SaveSettings(s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ Theme: %s", s.Theme)
		return nil
	},
}

func printSettings(s models.Settings) {
	faint := color.New(color.Faint)
	fmt.Printf("Calories         %.0f kcal\n", s.DailyCalorieGoal)
	fmt.Printf("Protein          %.0f g\n", s.DailyProteinGoal)
	fmt.Printf("Carbs            %.0f g\n", s.DailyCarbsGoal)
	fmt.Printf("Fat              %.0f g\n", s.DailyFatGoal)
	fmt.Printf("Workout days     %s\n", storage.WeekdayList(s.WorkoutDays))
	fmt.Printf("Weekly workouts  %.0f\n", s.WeeklyWorkoutGoal)
	fmt.Printf("Monthly workouts %.0f\n", s.MonthlyWorkoutGoal)
	fmt.Printf("Books per year   %.0f\n", s.YearlyBookGoal)
	fmt.Printf("Theme            %s\n", faint.Sprint(s.Theme))
}

func init() {
	settingsGoalsCmd.Flags().Float64Var(&goalCalories, "calories", 0, "daily calorie goal (kcal)")
	settingsGoalsCmd.Flags().Float64Var(&goalProtein, "protein", 0, "daily protein goal (g)")
	settingsGoalsCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "daily carbohydrate goal (g)")
	settingsGoalsCmd.Flags().Float64Var(&goalFat, "fat", 0, "daily fat goal (g)")
	settingsGoalsCmd.Flags().Float64Var(&goalBooks, "books", 0, "books per year")
	settingsGoalsCmd.Flags().Float64Var(&goalWeeklyWorkout, "weekly-workouts", 0, "workouts per week")
	settingsGoalsCmd.Flags().Float64Var(&goalMonthWorkout, "monthly-workouts", 0, "workouts per month")

	settingsCmd.AddCommand(settingsShowCmd, settingsGoalsCmd, settingsWorkoutDaysCmd, settingsThemeCmd)
	rootCmd.AddCommand(settingsCmd)
}
