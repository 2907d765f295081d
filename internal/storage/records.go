// ABOUTME: Record-level CRUD for calorie entries, workouts, and body measurements.
// ABOUTME: Records are addressed by full ID or any unique ID prefix.
package storage

import (
	"fmt"
	"slices"

	"github.com/harperreed/lifeos/internal/models"
)

// AddCalorieEntry validates and appends a calorie entry.
func (s *Store) AddCalorieEntry(e *models.CalorieEntry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("add calorie entry: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		if hasID(doc.CalorieEntries, e.ID) {
			return fmt.Errorf("add calorie entry: duplicate id %s", e.ID)
		}
		doc.CalorieEntries = append(doc.CalorieEntries, *e)
		return nil
	})
}

// GetCalorieEntry retrieves a calorie entry by ID or prefix.
func (s *Store) GetCalorieEntry(idOrPrefix string) (*models.CalorieEntry, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	i, err := resolveIndex(doc.CalorieEntries, idOrPrefix)
	if err != nil {
		return nil, err
	}
	e := doc.CalorieEntries[i]
	return &e, nil
}

// UpdateCalorieEntry replaces the stored entry with the same ID.
func (s *Store) UpdateCalorieEntry(e *models.CalorieEntry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("update calorie entry: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		i := slices.IndexFunc(doc.CalorieEntries, func(c models.CalorieEntry) bool { return c.ID == e.ID })
		if i < 0 {
			return fmt.Errorf("update calorie entry: %w: %s", ErrNotFound, e.ID)
		}
		doc.CalorieEntries[i] = *e
		return nil
	})
}

// DeleteCalorieEntry removes a calorie entry by ID or prefix and returns it.
func (s *Store) DeleteCalorieEntry(idOrPrefix string) (*models.CalorieEntry, error) {
	var removed models.CalorieEntry
	err := s.update(func(doc *models.Document) error {
		i, err := resolveIndex(doc.CalorieEntries, idOrPrefix)
		if err != nil {
			return fmt.Errorf("delete calorie entry: %w", err)
		}
		removed = doc.CalorieEntries[i]
		doc.CalorieEntries = slices.Delete(doc.CalorieEntries, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

// AddWorkoutEntry validates and appends a workout.
func (s *Store) AddWorkoutEntry(w *models.WorkoutEntry) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("add workout: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		if hasID(doc.WorkoutEntries, w.ID) {
			return fmt.Errorf("add workout: duplicate id %s", w.ID)
		}
		doc.WorkoutEntries = append(doc.WorkoutEntries, *w)
		return nil
	})
}

// GetWorkoutEntry retrieves a workout by ID or prefix.
func (s *Store) GetWorkoutEntry(idOrPrefix string) (*models.WorkoutEntry, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	i, err := resolveIndex(doc.WorkoutEntries, idOrPrefix)
	if err != nil {
		return nil, err
	}
	w := doc.WorkoutEntries[i]
	return &w, nil
}

// UpdateWorkoutEntry replaces the stored workout with the same ID.
func (s *Store) UpdateWorkoutEntry(w *models.WorkoutEntry) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		i := slices.IndexFunc(doc.WorkoutEntries, func(o models.WorkoutEntry) bool { return o.ID == w.ID })
		if i < 0 {
			return fmt.Errorf("update workout: %w: %s", ErrNotFound, w.ID)
		}
		doc.WorkoutEntries[i] = *w
		return nil
	})
}

// DeleteWorkoutEntry removes a workout by ID or prefix and returns it.
func (s *Store) DeleteWorkoutEntry(idOrPrefix string) (*models.WorkoutEntry, error) {
	var removed models.WorkoutEntry
	err := s.update(func(doc *models.Document) error {
		i, err := resolveIndex(doc.WorkoutEntries, idOrPrefix)
		if err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		removed = doc.WorkoutEntries[i]
		doc.WorkoutEntries = slices.Delete(doc.WorkoutEntries, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

// AddBodyMeasurement validates and appends a measurement.
func (s *Store) AddBodyMeasurement(m *models.BodyMeasurement) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("add measurement: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		if hasID(doc.BodyMeasurements, m.ID) {
			return fmt.Errorf("add measurement: duplicate id %s", m.ID)
		}
		doc.BodyMeasurements = append(doc.BodyMeasurements, *m)
		return nil
	})
}

// GetBodyMeasurement retrieves a measurement by ID or prefix.
func (s *Store) GetBodyMeasurement(idOrPrefix string) (*models.BodyMeasurement, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	i, err := resolveIndex(doc.BodyMeasurements, idOrPrefix)
	if err != nil {
		return nil, err
	}
	m := doc.BodyMeasurements[i]
	return &m, nil
}

// UpdateBodyMeasurement replaces the stored measurement with the same ID.
func (s *Store) UpdateBodyMeasurement(m *models.BodyMeasurement) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("update measurement: %w", err)
	}
	return s.update(func(doc *models.Document) error {
		i := slices.IndexFunc(doc.BodyMeasurements, func(o models.BodyMeasurement) bool { return o.ID == m.ID })
		if i < 0 {
			return fmt.Errorf("update measurement: %w: %s", ErrNotFound, m.ID)
		}
		doc.BodyMeasurements[i] = *m
		return nil
	})
}

// DeleteBodyMeasurement removes a measurement by ID or prefix and returns it.
func (s *Store) DeleteBodyMeasurement(idOrPrefix string) (*models.BodyMeasurement, error) {
	var removed models.BodyMeasurement
	err := s.update(func(doc *models.Document) error {
		i, err := resolveIndex(doc.BodyMeasurements, idOrPrefix)
		if err != nil {
			return fmt.Errorf("delete measurement: %w", err)
		}
		removed = doc.BodyMeasurements[i]
		doc.BodyMeasurements = slices.Delete(doc.BodyMeasurements, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
