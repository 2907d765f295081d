// ABOUTME: CLI command for the lifeos dashboard.
// ABOUTME: Shows today's intake and score, training progress, and life counts.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/dashboard"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "today"},
	Short:   "Show today at a glance",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := repo.Load()
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}

		st := dashboard.Compute(doc, doc.Settings, time.Now())
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Today %s  ", st.Today.Date)
		fmt.Println(bandColor(st.Today.Score.Band()).Sprintf("%d/100", st.Today.Score.TotalScore))
		printIntake("Calories", st.Today.Calories, "kcal")
		printIntake("Protein", st.Today.Protein, "g")
		printIntake("Carbs", st.Today.Carbs, "g")
		printIntake("Fat", st.Today.Fat, "g")
		fmt.Printf("  %d meals logged\n", st.Today.Meals)
		fmt.Println()

		bold.Printf("This week %s\n", faint.Sprintf("(%s to %s)", st.Week.Start, st.Week.End))
		fmt.Printf("  Workouts  %d / %.0f\n", st.Week.Workouts, st.Week.Goal)
		fmt.Printf("  Minutes   %.0f\n", st.Week.Minutes)
		fmt.Printf("  Burned    %.0f kcal\n", st.Week.CaloriesBurned)
		fmt.Printf("  Month     %d / %.0f workouts\n", st.Month.Workouts, st.Month.Goal)
		if st.Weight != nil {
			fmt.Printf("  Weight    %.1f kg %s\n", st.Weight.Weight, faint.Sprintf("(%s)", st.Weight.Date))
		}
		fmt.Println()

		bold.Println("Life")
		fmt.Printf("  Tasks     %d active, %d new today\n", st.ActiveTasks, st.Today.NewTasks)
		fmt.Printf("  Projects  %d active\n", st.ActiveProjects)
		fmt.Printf("  Goals     %d active\n", st.ActiveGoals)
		fmt.Printf("  Books     %d reading, %d / %.0f this year\n", st.BooksReading, st.BooksThisYear, st.BookGoal)
		fmt.Printf("  Recipes   %d favorites\n", st.FavoriteRecipes)
		journal := "not yet"
		if st.Today.Journal {
			journal = "written"
		}
		fmt.Printf("  Journal   %s\n", journal)
		if st.Portfolio.Cost > 0 || st.Portfolio.Value > 0 {
			profit := color.New(color.FgGreen)
			if st.Portfolio.Profit < 0 {
				profit = color.New(color.FgRed)
			}
			fmt.Printf("  Portfolio %.2f %s\n", st.Portfolio.Value,
				profit.Sprintf("(%+.2f, %+.1f%%)", st.Portfolio.Profit, st.Portfolio.ProfitPercent))
		}

		return nil
	},
}

func printIntake(name string, in dashboard.Intake, unit string) {
	fmt.Printf("  %s %6.0f / %-6.0f %-4s %s\n",
		padRight(name, 9), in.Consumed, in.Goal, unit,
		color.New(color.Faint).Sprintf("%.0f left", in.Remaining()))
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
