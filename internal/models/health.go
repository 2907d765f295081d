// ABOUTME: Nutrition, workout, and body measurement records for health tracking.
// ABOUTME: These are the inputs of the daily score engine and the analytics views.
package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidRecord is returned when a record fails validation.
var ErrInvalidRecord = errors.New("invalid record")

// MealKind is the meal slot a calorie entry belongs to.
type MealKind string

const (
	MealBreakfast MealKind = "breakfast"
	MealLunch     MealKind = "lunch"
	MealDinner    MealKind = "dinner"
	MealSnack     MealKind = "snack"
)

// AllMealKinds lists the valid meal slots in display order.
var AllMealKinds = []MealKind{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealKind checks if a string is a valid meal slot.
func IsValidMealKind(s string) bool {
	return slices.Contains(AllMealKinds, MealKind(s))
}

// CalorieEntry is one logged food item.
type CalorieEntry struct {
	ID       string   `json:"id" yaml:"id"`
	Date     string   `json:"date" yaml:"date"`
	Time     string   `json:"time" yaml:"time"`
	Meal     MealKind `json:"meal" yaml:"meal"`
	Food     string   `json:"food" yaml:"food"`
	Calories float64  `json:"calories" yaml:"calories"`
	Protein  float64  `json:"protein" yaml:"protein"`
	Carbs    float64  `json:"carbs" yaml:"carbs"`
	Fat      float64  `json:"fat" yaml:"fat"`
}

// NewCalorieEntry creates a calorie entry for now with a generated ID.
func NewCalorieEntry(meal MealKind, food string, calories float64) *CalorieEntry {
	now := time.Now()
	return &CalorieEntry{
		ID:       uuid.New().String(),
		Date:     FormatDate(now),
		Time:     now.Format(TimeLayout),
		Meal:     meal,
		Food:     food,
		Calories: calories,
	}
}

// WithDate sets the calendar day.
func (e *CalorieEntry) WithDate(date string) *CalorieEntry {
	e.Date = date
	return e
}

// WithTime sets the HH:MM time of day.
func (e *CalorieEntry) WithTime(hhmm string) *CalorieEntry {
	e.Time = hhmm
	return e
}

// WithMacros sets protein, carbs, and fat grams.
func (e *CalorieEntry) WithMacros(protein, carbs, fat float64) *CalorieEntry {
	e.Protein = protein
	e.Carbs = carbs
	e.Fat = fat
	return e
}

// RecordID returns the entry ID.
func (e CalorieEntry) RecordID() string { return e.ID }

// Validate checks the fields a user can get wrong.
func (e CalorieEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: calorie entry has no id", ErrInvalidRecord)
	}
	if _, err := ParseDate(e.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if e.Time != "" && !ValidTime(e.Time) {
		return fmt.Errorf("%w: invalid time %q (use HH:MM)", ErrInvalidRecord, e.Time)
	}
	if !IsValidMealKind(string(e.Meal)) {
		return fmt.Errorf("%w: unknown meal %q", ErrInvalidRecord, e.Meal)
	}
	if strings.TrimSpace(e.Food) == "" {
		return fmt.Errorf("%w: food is required", ErrInvalidRecord)
	}
	if e.Calories < 0 || e.Protein < 0 || e.Carbs < 0 || e.Fat < 0 {
		return fmt.Errorf("%w: calories and macros must not be negative", ErrInvalidRecord)
	}
	return nil
}

// WorkoutEntry is one logged exercise session.
type WorkoutEntry struct {
	ID             string  `json:"id" yaml:"id"`
	Date           string  `json:"date" yaml:"date"`
	Type           string  `json:"type" yaml:"type"`
	Duration       float64 `json:"duration" yaml:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned" yaml:"caloriesBurned"`
	Notes          string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewWorkoutEntry creates a workout for today with a generated ID.
func NewWorkoutEntry(workoutType string, minutes float64) *WorkoutEntry {
	return &WorkoutEntry{
		ID:       uuid.New().String(),
		Date:     Today(),
		Type:     workoutType,
		Duration: minutes,
	}
}

// WithDate sets the calendar day.
func (w *WorkoutEntry) WithDate(date string) *WorkoutEntry {
	w.Date = date
	return w
}

// WithCaloriesBurned sets the estimated energy expenditure.
func (w *WorkoutEntry) WithCaloriesBurned(kcal float64) *WorkoutEntry {
	w.CaloriesBurned = kcal
	return w
}

// WithNotes sets notes on the workout.
func (w *WorkoutEntry) WithNotes(notes string) *WorkoutEntry {
	w.Notes = notes
	return w
}

// RecordID returns the workout ID.
func (w WorkoutEntry) RecordID() string { return w.ID }

// Validate checks the fields a user can get wrong.
func (w WorkoutEntry) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("%w: workout has no id", ErrInvalidRecord)
	}
	if _, err := ParseDate(w.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if strings.TrimSpace(w.Type) == "" {
		return fmt.Errorf("%w: workout type is required", ErrInvalidRecord)
	}
	if w.Duration < 0 || w.CaloriesBurned < 0 {
		return fmt.Errorf("%w: duration and calories burned must not be negative", ErrInvalidRecord)
	}
	return nil
}

// Measurements holds optional body circumferences in centimeters.
type Measurements struct {
	Chest *float64 `json:"chest,omitempty" yaml:"chest,omitempty"`
	Waist *float64 `json:"waist,omitempty" yaml:"waist,omitempty"`
	Hips  *float64 `json:"hips,omitempty" yaml:"hips,omitempty"`
	Arms  *float64 `json:"arms,omitempty" yaml:"arms,omitempty"`
}

// IsEmpty reports whether no circumference is set.
func (m Measurements) IsEmpty() bool {
	return m.Chest == nil && m.Waist == nil && m.Hips == nil && m.Arms == nil
}

// BodyMeasurement is a weigh-in with optional body composition.
type BodyMeasurement struct {
	ID           string        `json:"id" yaml:"id"`
	Date         string        `json:"date" yaml:"date"`
	Weight       float64       `json:"weight" yaml:"weight"`
	BodyFat      *float64      `json:"bodyFat,omitempty" yaml:"bodyFat,omitempty"`
	Measurements *Measurements `json:"measurements,omitempty" yaml:"measurements,omitempty"`
}

// NewBodyMeasurement creates a weigh-in for today with a generated ID.
func NewBodyMeasurement(weight float64) *BodyMeasurement {
	return &BodyMeasurement{
		ID:     uuid.New().String(),
		Date:   Today(),
		Weight: weight,
	}
}

// WithDate sets the calendar day.
func (b *BodyMeasurement) WithDate(date string) *BodyMeasurement {
	b.Date = date
	return b
}

// WithBodyFat sets the body fat percentage.
func (b *BodyMeasurement) WithBodyFat(pct float64) *BodyMeasurement {
	b.BodyFat = &pct
	return b
}

// WithMeasurements attaches circumferences; an empty set is dropped.
func (b *BodyMeasurement) WithMeasurements(m Measurements) *BodyMeasurement {
	if m.IsEmpty() {
		b.Measurements = nil
		return b
	}
	b.Measurements = &m
	return b
}

// RecordID returns the measurement ID.
func (b BodyMeasurement) RecordID() string { return b.ID }

// Validate checks the fields a user can get wrong.
func (b BodyMeasurement) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: measurement has no id", ErrInvalidRecord)
	}
	if _, err := ParseDate(b.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if b.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidRecord)
	}
	if b.BodyFat != nil && (*b.BodyFat < 0 || *b.BodyFat > 100) {
		return fmt.Errorf("%w: body fat must be between 0 and 100", ErrInvalidRecord)
	}
	return nil
}

// NewestMealsFirst returns a copy of entries ordered by date and time, latest first.
func NewestMealsFirst(entries []CalorieEntry) []CalorieEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b CalorieEntry) int {
		return strings.Compare(b.Date+" "+b.Time, a.Date+" "+a.Time)
	})
	return out
}

// NewestWorkoutsFirst returns a copy of workouts ordered by date, latest first.
func NewestWorkoutsFirst(workouts []WorkoutEntry) []WorkoutEntry {
	out := slices.Clone(workouts)
	slices.SortStableFunc(out, func(a, b WorkoutEntry) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// MeasurementsByDate returns a copy of measurements ordered by date, oldest first.
// Measurements on the same day keep their stored order.
func MeasurementsByDate(ms []BodyMeasurement) []BodyMeasurement {
	out := slices.Clone(ms)
	slices.SortStableFunc(out, func(a, b BodyMeasurement) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}
