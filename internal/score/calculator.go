// ABOUTME: Daily health score: nutrition proximity to goals plus workout-plan adherence.
// ABOUTME: Pure functions; goals arrive as an explicit Settings value.
package score

import (
	"math"

	"github.com/harperreed/lifeos/internal/models"
)

// Point budgets per axis. Nutrition totals 70 and workout 30.
const (
	CalorieBudget = 25
	ProteinBudget = 30
	CarbsBudget   = 10
	FatBudget     = 5
	WorkoutBudget = 30

	NutritionMax = CalorieBudget + ProteinBudget + CarbsBudget + FatBudget
	TotalMax     = NutritionMax + WorkoutBudget
)

// Intake within this fraction of the goal earns the full budget.
const tolerance = 0.1

// DailyScore is the derived score for one calendar day. It is never stored.
type DailyScore struct {
	Date           string  `json:"date"`
	NutritionScore int     `json:"nutritionScore"`
	WorkoutScore   int     `json:"workoutScore"`
	TotalScore     int     `json:"totalScore"`
	CalorieIntake  float64 `json:"calorieIntake"`
	ProteinIntake  float64 `json:"proteinIntake"`
	CarbsIntake    float64 `json:"carbsIntake"`
	FatIntake      float64 `json:"fatIntake"`
	WorkedOut      bool    `json:"workedOut"`
}

// Band returns the quality band of the day's total.
func (d DailyScore) Band() Band {
	return Classify(d.TotalScore)
}

// Proximity scores actual intake against goal on a budget of points.
// A zero goal means no constraint and earns the whole budget.
func Proximity(actual, goal float64, budget int) int {
	if goal == 0 {
		return budget
	}
	ratio := actual / goal
	if ratio >= 1-tolerance && ratio <= 1+tolerance {
		return budget
	}
	distance := math.Abs(1 - ratio)
	return int(math.Round(math.Max(0, float64(budget)*(1-distance))))
}

// Calculate scores date from the given entries. Entries on other dates are ignored.
func Calculate(date string, calories []models.CalorieEntry, workouts []models.WorkoutEntry, settings models.Settings) DailyScore {
	ds := DailyScore{Date: date}
	for _, c := range calories {
		if c.Date != date {
			continue
		}
		ds.CalorieIntake += c.Calories
		ds.ProteinIntake += c.Protein
		ds.CarbsIntake += c.Carbs
		ds.FatIntake += c.Fat
	}

	ds.NutritionScore = Proximity(ds.CalorieIntake, settings.DailyCalorieGoal, CalorieBudget) +
		Proximity(ds.ProteinIntake, settings.DailyProteinGoal, ProteinBudget) +
		Proximity(ds.CarbsIntake, settings.DailyCarbsGoal, CarbsBudget) +
		Proximity(ds.FatIntake, settings.DailyFatGoal, FatBudget)

	for _, w := range workouts {
		if w.Date == date {
			ds.WorkedOut = true
			break
		}
	}
	ds.WorkoutScore = workoutScore(date, ds.WorkedOut, settings.WorkoutPlan)
	ds.TotalScore = ds.NutritionScore + ds.WorkoutScore
	return ds
}

// workoutScore only penalizes a missed planned day. Off-plan workouts earn no bonus.
func workoutScore(date string, workedOut bool, plan models.WorkoutPlan) int {
	if plan.IsEmpty() {
		return WorkoutBudget
	}
	wd, err := models.Weekday(date)
	if err != nil || !plan.Includes(wd) {
		return WorkoutBudget
	}
	if workedOut {
		return WorkoutBudget
	}
	return 0
}
