// ABOUTME: CLI commands for logging workouts.
// ABOUTME: Supports add, list, edit, and delete with ID prefixes.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutDuration float64
	workoutBurned   float64
	workoutNotes    string
	workoutDate     string
	workoutType     string
	workoutLimit    int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log workouts",
	Long: `Track workout sessions. A day with at least one workout earns the workout
part of the score when it is a planned workout day.

The workout type is freeform - use whatever makes sense for you:
  run, lift, swim, cycle, yoga, hiit, walk, climb, etc.

EXAMPLES:

  lifeos workout add run --duration 35 --burned 320
  lifeos workout add lift --duration 50 --notes "Leg day" --date yesterday
  lifeos workout list --type run
  lifeos workout edit abc12345 --duration 40 --type "trail run"
  lifeos workout delete abc12345`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(workoutDate, time.Now())
		if err != nil {
			return err
		}

		w := models.NewWorkoutEntry(args[0], workoutDuration).
			WithDate(date).
			WithCaloriesBurned(workoutBurned).
			WithNotes(workoutNotes)

		if err := repo.AddWorkoutEntry(w); err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		color.Green("✓ Added %s workout", w.Type)
		fmt.Printf("  ID: %s\n", shortID(w.ID))
		fmt.Printf("  Date: %s\n", w.Date)
		if w.Duration > 0 {
			fmt.Printf("  Duration: %.0f min\n", w.Duration)
		}
		if w.CaloriesBurned > 0 {
			fmt.Printf("  Burned: %.0f kcal\n", w.CaloriesBurned)
		}

		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.WorkoutEntries()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		var shown []models.WorkoutEntry
		for _, w := range models.NewestWorkoutsFirst(workouts) {
			if workoutType != "" && !strings.EqualFold(w.Type, workoutType) {
				continue
			}
			shown = append(shown, w)
			if workoutLimit > 0 && len(shown) == workoutLimit {
				break
			}
		}

		if len(shown) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range shown {
			notes := ""
			if w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(w.Notes, 30))
			}
			fmt.Printf("%s %s %s %4.0f min %5.0f kcal%s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.Date),
				padRight(w.Type, 12),
				w.Duration,
				w.CaloriesBurned,
				notes)
		}

		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkoutEntry(args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("type") {
			w.Type = workoutType
		}
		if flags.Changed("duration") {
			w.Duration = workoutDuration
		}
		if flags.Changed("burned") {
			w.CaloriesBurned = workoutBurned
		}
		if flags.Changed("notes") {
			w.Notes = workoutNotes
		}
		if flags.Changed("date") {
			date, err := resolveDate(workoutDate, time.Now())
			if err != nil {
				return err
			}
			w.Date = date
		}

		if err := repo.UpdateWorkoutEntry(w); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}

		color.Green("✓ Updated %s workout", w.Type)
		fmt.Printf("  %s %s %.0f min %.0f kcal\n",
			color.New(color.Faint).Sprint(shortID(w.ID)),
			w.Date, w.Duration, w.CaloriesBurned)

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.DeleteWorkoutEntry(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted %s workout", w.Type)
		fmt.Printf("  %s %s %.0f min\n",
			color.New(color.Faint).Sprint(shortID(w.ID)),
			w.Date, w.Duration)

		return nil
	},
}

func init() {
	workoutAddCmd.Flags().Float64Var(&workoutDuration, "duration", 0, "duration in minutes")
	workoutAddCmd.Flags().Float64Var(&workoutBurned, "burned", 0, "calories burned")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "workout notes")
	workoutAddCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")

	workoutListCmd.Flags().StringVarP(&workoutType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutEditCmd.Flags().StringVarP(&workoutType, "type", "t", "", "workout type")
	workoutEditCmd.Flags().Float64Var(&workoutDuration, "duration", 0, "duration in minutes")
	workoutEditCmd.Flags().Float64Var(&workoutBurned, "burned", 0, "calories burned")
	workoutEditCmd.Flags().StringVar(&workoutNotes, "notes", "", "workout notes")
	workoutEditCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")

	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutEditCmd, workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
