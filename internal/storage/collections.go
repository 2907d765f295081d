// ABOUTME: Typed get/set for each collection of the document.
// ABOUTME: Each setter replaces one collection and leaves the rest untouched.
package storage

import (
	"github.com/harperreed/lifeos/internal/models"
)

func collection[T any](s *Store, pick func(*models.Document) []T) ([]T, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return pick(doc), nil
}

func setCollection[T any](s *Store, items []T, put func(*models.Document, []T)) error {
	if items == nil {
		items = []T{}
	}
	return s.update(func(doc *models.Document) error {
		put(doc, items)
		return nil
	})
}

// Tasks returns all tasks.
func (s *Store) Tasks() ([]models.Task, error) {
	return collection(s, func(d *models.Document) []models.Task { return d.Tasks })
}

// SetTasks replaces all tasks.
func (s *Store) SetTasks(items []models.Task) error {
	return setCollection(s, items, func(d *models.Document, v []models.Task) { d.Tasks = v })
}

// Projects returns all projects.
func (s *Store) Projects() ([]models.Project, error) {
	return collection(s, func(d *models.Document) []models.Project { return d.Projects })
}

// SetProjects replaces all projects.
func (s *Store) SetProjects(items []models.Project) error {
	return setCollection(s, items, func(d *models.Document, v []models.Project) { d.Projects = v })
}

// CalorieEntries returns all calorie entries.
func (s *Store) CalorieEntries() ([]models.CalorieEntry, error) {
	return collection(s, func(d *models.Document) []models.CalorieEntry { return d.CalorieEntries })
}

// SetCalorieEntries replaces all calorie entries.
func (s *Store) SetCalorieEntries(items []models.CalorieEntry) error {
	return setCollection(s, items, func(d *models.Document, v []models.CalorieEntry) { d.CalorieEntries = v })
}

// WorkoutEntries returns all workout entries.
func (s *Store) WorkoutEntries() ([]models.WorkoutEntry, error) {
	return collection(s, func(d *models.Document) []models.WorkoutEntry { return d.WorkoutEntries })
}

// SetWorkoutEntries replaces all workout entries.
func (s *Store) SetWorkoutEntries(items []models.WorkoutEntry) error {
	return setCollection(s, items, func(d *models.Document, v []models.WorkoutEntry) { d.WorkoutEntries = v })
}

// BodyMeasurements returns all body measurements.
func (s *Store) BodyMeasurements() ([]models.BodyMeasurement, error) {
	return collection(s, func(d *models.Document) []models.BodyMeasurement { return d.BodyMeasurements })
}

// SetBodyMeasurements replaces all body measurements.
func (s *Store) SetBodyMeasurements(items []models.BodyMeasurement) error {
	return setCollection(s, items, func(d *models.Document, v []models.BodyMeasurement) { d.BodyMeasurements = v })
}

// Recipes returns all recipes.
func (s *Store) Recipes() ([]models.Recipe, error) {
	return collection(s, func(d *models.Document) []models.Recipe { return d.Recipes })
}

// SetRecipes replaces all recipes.
func (s *Store) SetRecipes(items []models.Recipe) error {
	return setCollection(s, items, func(d *models.Document, v []models.Recipe) { d.Recipes = v })
}

// HealthProducts returns all health products.
func (s *Store) HealthProducts() ([]models.HealthProduct, error) {
	return collection(s, func(d *models.Document) []models.HealthProduct { return d.HealthProducts })
}

// SetHealthProducts replaces all health products.
func (s *Store) SetHealthProducts(items []models.HealthProduct) error {
	return setCollection(s, items, func(d *models.Document, v []models.HealthProduct) { d.HealthProducts = v })
}

// Books returns all books.
func (s *Store) Books() ([]models.Book, error) {
	return collection(s, func(d *models.Document) []models.Book { return d.Books })
}

// SetBooks replaces all books.
func (s *Store) SetBooks(items []models.Book) error {
	return setCollection(s, items, func(d *models.Document, v []models.Book) { d.Books = v })
}

// JournalEntries returns all journal entries.
func (s *Store) JournalEntries() ([]models.JournalEntry, error) {
	return collection(s, func(d *models.Document) []models.JournalEntry { return d.JournalEntries })
}

// SetJournalEntries replaces all journal entries.
func (s *Store) SetJournalEntries(items []models.JournalEntry) error {
	return setCollection(s, items, func(d *models.Document, v []models.JournalEntry) { d.JournalEntries = v })
}

// Investments returns all investments.
func (s *Store) Investments() ([]models.Investment, error) {
	return collection(s, func(d *models.Document) []models.Investment { return d.Investments })
}

// SetInvestments replaces all investments.
func (s *Store) SetInvestments(items []models.Investment) error {
	return setCollection(s, items, func(d *models.Document, v []models.Investment) { d.Investments = v })
}

// Schedule returns all schedule.
func (s *Store) Schedule() ([]models.ScheduleEntry, error) {
	return collection(s, func(d *models.Document) []models.ScheduleEntry { return d.Schedule })
}

// SetSchedule replaces all schedule.
func (s *Store) SetSchedule(items []models.ScheduleEntry) error {
	return setCollection(s, items, func(d *models.Document, v []models.ScheduleEntry) { d.Schedule = v })
}

// Goals returns all goals.
func (s *Store) Goals() ([]models.Goal, error) {
	return collection(s, func(d *models.Document) []models.Goal { return d.Goals })
}

// SetGoals replaces all goals.
func (s *Store) SetGoals(items []models.Goal) error {
	return setCollection(s, items, func(d *models.Document, v []models.Goal) { d.Goals = v })
}
