// ABOUTME: CLI commands for logging meals.
// ABOUTME: Supports add, list, edit, and delete with ID prefixes.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	mealProtein float64
	mealCarbs   float64
	mealFat     float64
	mealDate    string
	mealTime    string
	mealFood    string
	mealKind    string
	mealKcal    float64
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m", "food"},
	Short:   "Log meals",
	Long: `Log what you eat. Each item records calories and macros and counts toward
the nutrition part of that day's score.

MEALS:

  breakfast, lunch, dinner, snack

EXAMPLES:

  lifeos meal add breakfast oats 380 --protein 14 --carbs 62 --fat 7
  lifeos meal add snack apple 95 --date yesterday
  lifeos meal list
  lifeos meal edit abc12345 --calories 420
  lifeos meal delete abc12345`,
}

var mealAddCmd = &cobra.Command{
	Use:   "add <meal> <food> <calories>",
	Short: "Log a food item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := strings.ToLower(args[0])
		if !models.IsValidMealKind(kind) {
			return fmt.Errorf("unknown meal: %s (use breakfast, lunch, dinner, or snack)", args[0])
		}

		kcal, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[2])
		}

		now := time.Now()
		date, err := resolveDate(mealDate, now)
		if err != nil {
			return err
		}

		e := models.NewCalorieEntry(models.MealKind(kind), args[1], kcal).
			WithDate(date).
			WithMacros(mealProtein, mealCarbs, mealFat)
		if mealTime != "" {
			e.WithTime(mealTime)
		}

		if err := repo.AddCalorieEntry(e); err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		color.Green("✓ Logged %s", e.Meal)
		fmt.Printf("  %s %s %.0f kcal  P %.0fg  C %.0fg  F %.0fg\n",
			color.New(color.Faint).Sprint(shortID(e.ID)),
			e.Food, e.Calories, e.Protein, e.Carbs, e.Fat)

		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(mealDate, time.Now())
		if err != nil {
			return err
		}

		entries, err := repo.CalorieEntries()
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		var day []models.CalorieEntry
		for _, e := range models.NewestMealsFirst(entries) {
			if e.Date == date {
				day = append(day, e)
			}
		}

		if len(day) == 0 {
			fmt.Printf("No meals logged on %s.\n", date)
			return nil
		}

		faint := color.New(color.Faint)
		var kcal, protein, carbs, fat float64
		for _, e := range day {
			fmt.Printf("%s %s %s %s %6.0f kcal\n",
				faint.Sprint(shortID(e.ID)),
				faint.Sprint(e.Time),
				padRight(string(e.Meal), 10),
				padRight(truncate(e.Food, 28), 28),
				e.Calories)
			kcal += e.Calories
			protein += e.Protein
			carbs += e.Carbs
			fat += e.Fat
		}
		fmt.Println()
		fmt.Printf("Total %s: %.0f kcal  P %.0fg  C %.0fg  F %.0fg\n", date, kcal, protein, carbs, fat)

		return nil
	},
}

var mealEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a logged food item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := repo.GetCalorieEntry(args[0])
		if err != nil {
			return fmt.Errorf("failed to get meal: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("meal") {
			kind := strings.ToLower(mealKind)
			if !models.IsValidMealKind(kind) {
				return fmt.Errorf("unknown meal: %s (use breakfast, lunch, dinner, or snack)", mealKind)
			}
			e.Meal = models.MealKind(kind)
		}
		if flags.Changed("food") {
			e.Food = mealFood
		}
		if flags.Changed("calories") {
			e.Calories = mealKcal
		}
		if flags.Changed("protein") {
			e.Protein = mealProtein
		}
		if flags.Changed("carbs") {
			e.Carbs = mealCarbs
		}
		if flags.Changed("fat") {
			e.Fat = mealFat
		}
		if flags.Changed("date") {
			date, err := resolveDate(mealDate, time.Now())
			if err != nil {
				return err
			}
			e.Date = date
		}
		if flags.Changed("time") {
			e.Time = mealTime
		}

		if err := repo.UpdateCalorieEntry(e); err != nil {
			return fmt.Errorf("failed to update meal: %w", err)
		}

		color.Green("✓ Updated %s", e.Food)
		fmt.Printf("  %s %s %s %.0f kcal\n",
			color.New(color.Faint).Sprint(shortID(e.ID)),
			e.Date, e.Meal, e.Calories)

		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged food item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := repo.DeleteCalorieEntry(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted %s", e.Food)
		fmt.Printf("  %s %s %s %.0f kcal\n",
			color.New(color.Faint).Sprint(shortID(e.ID)),
			e.Date, e.Meal, e.Calories)

		return nil
	},
}

func init() {
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "protein in grams")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "carbohydrates in grams")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "fat in grams")
	mealAddCmd.Flags().StringVarP(&mealDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "", "time of day (HH:MM)")

	mealListCmd.Flags().StringVarP(&mealDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")

	mealEditCmd.Flags().StringVar(&mealKind, "meal", "", "meal slot")
	mealEditCmd.Flags().StringVar(&mealFood, "food", "", "food description")
	mealEditCmd.Flags().Float64Var(&mealKcal, "calories", 0, "energy in kcal")
	mealEditCmd.Flags().Float64Var(&mealProtein, "protein", 0, "protein in grams")
	mealEditCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "carbohydrates in grams")
	mealEditCmd.Flags().Float64Var(&mealFat, "fat", 0, "fat in grams")
	mealEditCmd.Flags().StringVarP(&mealDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")
	mealEditCmd.Flags().StringVar(&mealTime, "time", "", "time of day (HH:MM)")

	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealEditCmd, mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
