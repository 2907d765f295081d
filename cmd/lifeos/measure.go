// ABOUTME: CLI commands for body measurements.
// ABOUTME: Records weigh-ins with optional body fat and circumferences.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
	"github.com/harperreed/lifeos/internal/storage"
	"github.com/spf13/cobra"
)

var (
	measureBodyFat float64
	measureChest   float64
	measureWaist   float64
	measureHips    float64
	measureArms    float64
	measureDate    string
	measureWeight  float64
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"weight"},
	Short:   "Record body measurements",
	Long: `Record weigh-ins. Weight is in kilograms, circumferences in centimeters.

EXAMPLES:

  lifeos measure add 81.4
  lifeos measure add 81.1 --body-fat 18.2 --waist 86
  lifeos measure list
  lifeos measure edit abc12345 --weight 80.9 --hips 98
  lifeos measure delete abc12345`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a weigh-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		date, err := resolveDate(measureDate, time.Now())
		if err != nil {
			return err
		}

		m := models.NewBodyMeasurement(weight).WithDate(date)
		if cmd.Flags().Changed("body-fat") {
			m.WithBodyFat(measureBodyFat)
		}
		m.WithMeasurements(models.Measurements{
			Chest: changed(cmd, "chest", measureChest),
			Waist: changed(cmd, "waist", measureWaist),
			Hips:  changed(cmd, "hips", measureHips),
			Arms:  changed(cmd, "arms", measureArms),
		})

		if err := repo.AddBodyMeasurement(m); err != nil {
			return fmt.Errorf("failed to add measurement: %w", err)
		}

		color.Green("✓ Recorded %.1f kg", m.Weight)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(shortID(m.ID)), m.Date)

		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List weigh-ins with changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := repo.BodyMeasurements()
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}

		if len(ms) == 0 {
			fmt.Println("No measurements recorded.")
			return nil
		}

		sorted := models.MeasurementsByDate(ms)
		summary := score.Summarize(nil, ms)
		faint := color.New(color.Faint)
		for i, row := range summary.WeightTable {
			bodyFat := ""
			if row.BodyFat > 0 {
				bodyFat = fmt.Sprintf("  %.1f%%", row.BodyFat)
			}
			fmt.Printf("%s %s %6.1f kg  %s  %s%s\n",
				faint.Sprint(shortID(sorted[i].ID)),
				row.Date,
				row.Weight,
				padRight(storage.SignedDelta(row.Change), 6),
				faint.Sprint(storage.SignedDelta(row.TotalChange)),
				bodyFat)
		}
		fmt.Println()
		fmt.Printf("%.1f kg -> %.1f kg (%s)\n", summary.FirstWeight, summary.LatestWeight, storage.SignedDelta(summary.TotalWeightChange))

		return nil
	},
}

var measureEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a weigh-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.GetBodyMeasurement(args[0])
		if err != nil {
			return fmt.Errorf("failed to get measurement: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("weight") {
			m.Weight = measureWeight
		}
		if flags.Changed("body-fat") {
			m.WithBodyFat(measureBodyFat)
		}
		if flags.Changed("date") {
			date, err := resolveDate(measureDate, time.Now())
			if err != nil {
				return err
			}
			m.Date = date
		}

		var circ models.Measurements
		if m.Measurements != nil {
			circ = *m.Measurements
		}
		if v := changed(cmd, "chest", measureChest); v != nil {
			circ.Chest = v
		}
		if v := changed(cmd, "waist", measureWaist); v != nil {
			circ.Waist = v
		}
		if v := changed(cmd, "hips", measureHips); v != nil {
			circ.Hips = v
		}
		if v := changed(cmd, "arms", measureArms); v != nil {
			circ.Arms = v
		}
		m.WithMeasurements(circ)

		if err := repo.UpdateBodyMeasurement(m); err != nil {
			return fmt.Errorf("failed to update measurement: %w", err)
		}

		color.Green("✓ Updated %.1f kg", m.Weight)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(shortID(m.ID)), m.Date)

		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a weigh-in",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.DeleteBodyMeasurement(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete measurement: %w", err)
		}

		color.Yellow("✗ Deleted %.1f kg", m.Weight)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(shortID(m.ID)), m.Date)

		return nil
	},
}

// changed returns a pointer to v only when the flag was given.
func changed(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func init() {
	measureAddCmd.Flags().Float64Var(&measureBodyFat, "body-fat", 0, "body fat percentage")
	measureAddCmd.Flags().Float64Var(&measureChest, "chest", 0, "chest in cm")
	measureAddCmd.Flags().Float64Var(&measureWaist, "waist", 0, "waist in cm")
	measureAddCmd.Flags().Float64Var(&measureHips, "hips", 0, "hips in cm")
	measureAddCmd.Flags().Float64Var(&measureArms, "arms", 0, "arms in cm")
	measureAddCmd.Flags().StringVarP(&measureDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")

	measureEditCmd.Flags().Float64Var(&measureWeight, "weight", 0, "weight in kg")
	measureEditCmd.Flags().Float64Var(&measureBodyFat, "body-fat", 0, "body fat percentage")
	measureEditCmd.Flags().Float64Var(&measureChest, "chest", 0, "chest in cm")
	measureEditCmd.Flags().Float64Var(&measureWaist, "waist", 0, "waist in cm")
	measureEditCmd.Flags().Float64Var(&measureHips, "hips", 0, "hips in cm")
	measureEditCmd.Flags().Float64Var(&measureArms, "arms", 0, "arms in cm")
	measureEditCmd.Flags().StringVarP(&measureDate, "date", "d", "", "day (today, yesterday, or YYYY-MM-DD)")

	measureCmd.AddCommand(measureAddCmd, measureListCmd, measureEditCmd, measureDeleteCmd)
	rootCmd.AddCommand(measureCmd)
}
