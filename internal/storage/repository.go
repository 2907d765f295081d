// ABOUTME: Repository interface for lifeos document storage.
// ABOUTME: Typed per-collection access, record CRUD for health logs and recipes, and whole-document import.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/lifeos/internal/models"
)

var (
	// ErrNotFound is returned when no record matches an ID or prefix.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousID is returned when a prefix matches more than one record.
	ErrAmbiguousID = errors.New("ambiguous prefix")
)

// Repository defines the storage interface for the lifeos document.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Whole document
	Load() (*models.Document, error)
	Replace(doc *models.Document) error
	HasData() (bool, error)
	Clear() error

	// Settings
	Settings() (models.Settings, error)
	SaveSettings(s models.Settings) error

	// Collections
	Tasks() ([]models.Task, error)
	SetTasks(items []models.Task) error
	Projects() ([]models.Project, error)
	SetProjects(items []models.Project) error
	CalorieEntries() ([]models.CalorieEntry, error)
	SetCalorieEntries(items []models.CalorieEntry) error
	WorkoutEntries() ([]models.WorkoutEntry, error)
	SetWorkoutEntries(items []models.WorkoutEntry) error
	BodyMeasurements() ([]models.BodyMeasurement, error)
	SetBodyMeasurements(items []models.BodyMeasurement) error
	Recipes() ([]models.Recipe, error)
	SetRecipes(items []models.Recipe) error
	HealthProducts() ([]models.HealthProduct, error)
	SetHealthProducts(items []models.HealthProduct) error
	Books() ([]models.Book, error)
	SetBooks(items []models.Book) error
	JournalEntries() ([]models.JournalEntry, error)
	SetJournalEntries(items []models.JournalEntry) error
	Investments() ([]models.Investment, error)
	SetInvestments(items []models.Investment) error
	Schedule() ([]models.ScheduleEntry, error)
	SetSchedule(items []models.ScheduleEntry) error
	Goals() ([]models.Goal, error)
	SetGoals(items []models.Goal) error

	// Calorie entry operations
	AddCalorieEntry(e *models.CalorieEntry) error
	GetCalorieEntry(idOrPrefix string) (*models.CalorieEntry, error)
	UpdateCalorieEntry(e *models.CalorieEntry) error
	DeleteCalorieEntry(idOrPrefix string) (*models.CalorieEntry, error)

	// Workout entry operations
	AddWorkoutEntry(w *models.WorkoutEntry) error
	GetWorkoutEntry(idOrPrefix string) (*models.WorkoutEntry, error)
	UpdateWorkoutEntry(w *models.WorkoutEntry) error
	DeleteWorkoutEntry(idOrPrefix string) (*models.WorkoutEntry, error)

	// Body measurement operations
	AddBodyMeasurement(m *models.BodyMeasurement) error
	GetBodyMeasurement(idOrPrefix string) (*models.BodyMeasurement, error)
	UpdateBodyMeasurement(m *models.BodyMeasurement) error
	DeleteBodyMeasurement(idOrPrefix string) (*models.BodyMeasurement, error)

	// Recipe operations
	AddRecipe(r *models.Recipe) error
	GetRecipe(idOrPrefix string) (*models.Recipe, error)
	UpdateRecipe(r *models.Recipe) error
	ToggleFavorite(idOrPrefix string) (*models.Recipe, error)
	DeleteRecipe(idOrPrefix string) (*models.Recipe, error)

	// Health product operations
	AddHealthProduct(p *models.HealthProduct) error
	DeleteHealthProduct(idOrPrefix string) (*models.HealthProduct, error)

	// Export/Import
	Export() ([]byte, error)
	Import(data []byte) (skipped []string, err error)

	// Lifecycle
	Close() error
}

type identified interface {
	RecordID() string
}

// resolveIndex finds the record whose ID equals idOrPrefix, or failing that
// the single record whose ID starts with it.
func resolveIndex[T identified](items []T, idOrPrefix string) (int, error) {
	if idOrPrefix == "" {
		return -1, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	for i, item := range items {
		if item.RecordID() == idOrPrefix {
			return i, nil
		}
	}

	found := -1
	for i, item := range items {
		if !strings.HasPrefix(item.RecordID(), idOrPrefix) {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("%w %s: matches multiple records", ErrAmbiguousID, idOrPrefix)
		}
		found = i
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return found, nil
}

// hasID reports whether any record already uses id.
func hasID[T identified](items []T, id string) bool {
	for _, item := range items {
		if item.RecordID() == id {
			return true
		}
	}
	return false
}
