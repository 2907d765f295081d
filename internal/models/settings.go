// ABOUTME: User settings: nutrition goals, the weekly workout plan, and display theme.
// ABOUTME: Settings are passed explicitly into scoring so goal changes rescore history.
package models

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrInvalidSettings is returned when settings fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Theme is the UI color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Default goal values used when nothing is configured.
const (
	DefaultCalorieGoal        = 1700
	DefaultProteinGoal        = 120
	DefaultCarbsGoal          = 150
	DefaultFatGoal            = 50
	DefaultYearlyBookGoal     = 50
	DefaultWeeklyWorkoutGoal  = 2
	DefaultMonthlyWorkoutGoal = 8
)

// NutritionGoal holds the daily macro targets. A zero goal means no constraint.
type NutritionGoal struct {
	DailyCalorieGoal float64 `json:"dailyCalorieGoal" yaml:"dailyCalorieGoal"`
	DailyProteinGoal float64 `json:"dailyProteinGoal" yaml:"dailyProteinGoal"`
	DailyCarbsGoal   float64 `json:"dailyCarbsGoal" yaml:"dailyCarbsGoal"`
	DailyFatGoal     float64 `json:"dailyFatGoal" yaml:"dailyFatGoal"`
}

// WorkoutPlan is the set of weekdays (0=Sunday..6=Saturday) the user plans to train.
// An empty plan means there is no fixed schedule.
type WorkoutPlan struct {
	WorkoutDays []int `json:"workoutDays" yaml:"workoutDays"`
}

// IsEmpty reports whether no workout day is planned.
func (p WorkoutPlan) IsEmpty() bool {
	return len(p.WorkoutDays) == 0
}

// Includes reports whether wd is a planned workout day.
func (p WorkoutPlan) Includes(wd time.Weekday) bool {
	return slices.Contains(p.WorkoutDays, int(wd))
}

// Settings is the full user configuration. NutritionGoal and WorkoutPlan are
// embedded so the persisted JSON stays a single flat object.
type Settings struct {
	Theme Theme `json:"theme" yaml:"theme"`

	NutritionGoal `yaml:",inline"`

	YearlyBookGoal    float64 `json:"yearlyBookGoal" yaml:"yearlyBookGoal"`
	WeeklyWorkoutGoal float64 `json:"weeklyWorkoutGoal" yaml:"weeklyWorkoutGoal"`

	WorkoutPlan `yaml:",inline"`

	MonthlyWorkoutGoal float64 `json:"monthlyWorkoutGoal" yaml:"monthlyWorkoutGoal"`
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeLight,
		NutritionGoal: NutritionGoal{
			DailyCalorieGoal: DefaultCalorieGoal,
			DailyProteinGoal: DefaultProteinGoal,
			DailyCarbsGoal:   DefaultCarbsGoal,
			DailyFatGoal:     DefaultFatGoal,
		},
		YearlyBookGoal:     DefaultYearlyBookGoal,
		WeeklyWorkoutGoal:  DefaultWeeklyWorkoutGoal,
		WorkoutPlan:        WorkoutPlan{WorkoutDays: []int{}},
		MonthlyWorkoutGoal: DefaultMonthlyWorkoutGoal,
	}
}

// Normalize replaces a missing workout day list with an empty one.
func (s *Settings) Normalize() {
	if s.WorkoutDays == nil {
		s.WorkoutDays = []int{}
	}
}

// Validate rejects negative goals, unknown themes, and out-of-range workout days.
func (s Settings) Validate() error {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, s.Theme)
	}
	goals := map[string]float64{
		"dailyCalorieGoal":   s.DailyCalorieGoal,
		"dailyProteinGoal":   s.DailyProteinGoal,
		"dailyCarbsGoal":     s.DailyCarbsGoal,
		"dailyFatGoal":       s.DailyFatGoal,
		"yearlyBookGoal":     s.YearlyBookGoal,
		"weeklyWorkoutGoal":  s.WeeklyWorkoutGoal,
		"monthlyWorkoutGoal": s.MonthlyWorkoutGoal,
	}
	for name, v := range goals {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidSettings, name)
		}
	}
	seen := make(map[int]bool, len(s.WorkoutDays))
	for _, d := range s.WorkoutDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: workout day %d out of range 0-6", ErrInvalidSettings, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: workout day %d listed twice", ErrInvalidSettings, d)
		}
		seen[d] = true
	}
	return nil
}

// WithWorkoutDays returns a copy with the given weekdays as the plan, sorted and de-duplicated.
func (s Settings) WithWorkoutDays(days []time.Weekday) Settings {
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, int(d))
	}
	slices.Sort(out)
	s.WorkoutDays = slices.Compact(out)
	return s
}
