// ABOUTME: Summary statistics over a score series plus the body weight trend table.
// ABOUTME: Inputs are read-only; sorting happens on copies.
package score

import (
	"github.com/harperreed/lifeos/internal/models"
)

// Band is the quality class of a day's total score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandPoor      Band = "poor"
)

// Classify maps a total score to its band.
func Classify(total int) Band {
	switch {
	case total >= 80:
		return BandExcellent
	case total >= 60:
		return BandGood
	default:
		return BandPoor
	}
}

// WeightRow is one line of the weight trend table.
type WeightRow struct {
	Date        string  `json:"date"`
	Weight      float64 `json:"weight"`
	BodyFat     float64 `json:"bodyFat,omitempty"`
	Change      float64 `json:"change"`
	TotalChange float64 `json:"totalChange"`
}

// Summary is the analytics view over a score series and the weigh-ins.
type Summary struct {
	Days             int         `json:"days"`
	AverageScore     float64     `json:"averageScore"`
	AverageNutrition float64     `json:"averageNutrition"`
	AverageWorkout   float64     `json:"averageWorkout"`
	AverageCalories  float64     `json:"averageCalories"`
	AverageProtein   float64     `json:"averageProtein"`
	AverageCarbs     float64     `json:"averageCarbs"`
	AverageFat       float64     `json:"averageFat"`
	BestDay          *DailyScore `json:"bestDay,omitempty"`
	WorkoutCount     int         `json:"workoutCount"`

	FirstWeight       float64     `json:"firstWeight"`
	LatestWeight      float64     `json:"latestWeight"`
	TotalWeightChange float64     `json:"totalWeightChange"`
	WeightTable       []WeightRow `json:"weightTable"`
}

// Summarize reduces scores and measurements to a Summary. With no scores the
// averages are 0 and BestDay is nil; with no measurements the weights are 0.
func Summarize(scores []DailyScore, measurements []models.BodyMeasurement) Summary {
	s := Summary{Days: len(scores), WeightTable: []WeightRow{}}

	if len(scores) > 0 {
		var total, nutrition, workout, kcal, protein, carbs, fat float64
		best := scores[0]
		for _, d := range scores {
			total += float64(d.TotalScore)
			nutrition += float64(d.NutritionScore)
			workout += float64(d.WorkoutScore)
			kcal += d.CalorieIntake
			protein += d.ProteinIntake
			carbs += d.CarbsIntake
			fat += d.FatIntake
			if d.WorkedOut {
				s.WorkoutCount++
			}
			if d.TotalScore > best.TotalScore {
				best = d
			}
		}
		n := float64(len(scores))
		s.AverageScore = total / n
		s.AverageNutrition = nutrition / n
		s.AverageWorkout = workout / n
		s.AverageCalories = kcal / n
		s.AverageProtein = protein / n
		s.AverageCarbs = carbs / n
		s.AverageFat = fat / n
		s.BestDay = &best
	}

	sorted := models.MeasurementsByDate(measurements)
	if len(sorted) == 0 {
		return s
	}
	s.FirstWeight = sorted[0].Weight
	s.LatestWeight = sorted[len(sorted)-1].Weight
	s.TotalWeightChange = s.LatestWeight - s.FirstWeight

	prev := s.FirstWeight
	for _, m := range sorted {
		row := WeightRow{
			Date:        m.Date,
			Weight:      m.Weight,
			Change:      m.Weight - prev,
			TotalChange: m.Weight - s.FirstWeight,
		}
		if m.BodyFat != nil {
			row.BodyFat = *m.BodyFat
		}
		s.WeightTable = append(s.WeightTable, row)
		prev = m.Weight
	}
	return s
}
