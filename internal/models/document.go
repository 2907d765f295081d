// ABOUTME: The whole persisted application document: every collection plus settings.
// ABOUTME: Decoding fills defaults per field so partial or older documents still load.
package models

import (
	"encoding/json"
	"fmt"
)

// Document is the single JSON object stored under the data key.
type Document struct {
	Tasks            []Task            `json:"tasks" yaml:"tasks"`
	Projects         []Project         `json:"projects" yaml:"projects"`
	CalorieEntries   []CalorieEntry    `json:"calorieEntries" yaml:"calorieEntries"`
	WorkoutEntries   []WorkoutEntry    `json:"workoutEntries" yaml:"workoutEntries"`
	BodyMeasurements []BodyMeasurement `json:"bodyMeasurements" yaml:"bodyMeasurements"`
	Recipes          []Recipe          `json:"recipes" yaml:"recipes"`
	HealthProducts   []HealthProduct   `json:"healthProducts" yaml:"healthProducts"`
	Books            []Book            `json:"books" yaml:"books"`
	JournalEntries   []JournalEntry    `json:"journalEntries" yaml:"journalEntries"`
	Investments      []Investment      `json:"investments" yaml:"investments"`
	Schedule         []ScheduleEntry   `json:"schedule" yaml:"schedule"`
	Goals            []Goal            `json:"goals" yaml:"goals"`
	Settings         Settings          `json:"settings" yaml:"settings"`
}

// CollectionNames lists the document's collection keys in persisted order.
var CollectionNames = []string{
	"tasks", "projects", "calorieEntries", "workoutEntries", "bodyMeasurements",
	"recipes", "healthProducts", "books", "journalEntries", "investments",
	"schedule", "goals",
}

// DefaultDocument returns an empty document with default settings.
func DefaultDocument() *Document {
	doc := &Document{Settings: DefaultSettings()}
	doc.Normalize()
	return doc
}

// DecodeDocument parses a persisted document. Keys that are missing or null keep
// their defaults, and a key whose value has the wrong shape falls back to its
// default and is reported in skipped. Input that is not a JSON object is an error.
func DecodeDocument(data []byte) (doc *Document, skipped []string, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode document: %w", err)
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("decode document: not a JSON object")
	}

	doc = DefaultDocument()
	fields := map[string]func(json.RawMessage) error{
		"tasks":            func(m json.RawMessage) error { return decodeInto(m, &doc.Tasks) },
		"projects":         func(m json.RawMessage) error { return decodeInto(m, &doc.Projects) },
		"calorieEntries":   func(m json.RawMessage) error { return decodeInto(m, &doc.CalorieEntries) },
		"workoutEntries":   func(m json.RawMessage) error { return decodeInto(m, &doc.WorkoutEntries) },
		"bodyMeasurements": func(m json.RawMessage) error { return decodeInto(m, &doc.BodyMeasurements) },
		"recipes":          func(m json.RawMessage) error { return decodeInto(m, &doc.Recipes) },
		"healthProducts":   func(m json.RawMessage) error { return decodeInto(m, &doc.HealthProducts) },
		"books":            func(m json.RawMessage) error { return decodeInto(m, &doc.Books) },
		"journalEntries":   func(m json.RawMessage) error { return decodeInto(m, &doc.JournalEntries) },
		"investments":      func(m json.RawMessage) error { return decodeInto(m, &doc.Investments) },
		"schedule":         func(m json.RawMessage) error { return decodeInto(m, &doc.Schedule) },
		"goals":            func(m json.RawMessage) error { return decodeInto(m, &doc.Goals) },
	}
	for _, name := range CollectionNames {
		msg, ok := raw[name]
		if !ok {
			continue
		}
		if err := fields[name](msg); err != nil {
			skipped = append(skipped, name)
		}
	}
	if msg, ok := raw["settings"]; ok {
		settings, err := DecodeSettings(msg)
		if err != nil {
			skipped = append(skipped, "settings")
		} else {
			doc.Settings = settings
		}
	}
	doc.Normalize()
	return doc, skipped, nil
}

// DecodeSettings parses settings over the defaults, so absent fields keep
// their default values.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Normalize replaces nil collections with empty ones so the document always
// serializes every key as an array.
func (d *Document) Normalize() {
	d.Tasks = nonNil(d.Tasks)
	d.Projects = nonNil(d.Projects)
	for i := range d.Projects {
		d.Projects[i].Milestones = nonNil(d.Projects[i].Milestones)
	}
	d.CalorieEntries = nonNil(d.CalorieEntries)
	d.WorkoutEntries = nonNil(d.WorkoutEntries)
	d.BodyMeasurements = nonNil(d.BodyMeasurements)
	d.Recipes = nonNil(d.Recipes)
	for i := range d.Recipes {
		d.Recipes[i].Ingredients = nonNil(d.Recipes[i].Ingredients)
	}
	d.HealthProducts = nonNil(d.HealthProducts)
	d.Books = nonNil(d.Books)
	d.JournalEntries = nonNil(d.JournalEntries)
	d.Investments = nonNil(d.Investments)
	d.Schedule = nonNil(d.Schedule)
	d.Goals = nonNil(d.Goals)
	d.Settings.Normalize()
}

// Counts returns the number of records per collection.
func (d *Document) Counts() map[string]int {
	return map[string]int{
		"tasks":            len(d.Tasks),
		"projects":         len(d.Projects),
		"calorieEntries":   len(d.CalorieEntries),
		"workoutEntries":   len(d.WorkoutEntries),
		"bodyMeasurements": len(d.BodyMeasurements),
		"recipes":          len(d.Recipes),
		"healthProducts":   len(d.HealthProducts),
		"books":            len(d.Books),
		"journalEntries":   len(d.JournalEntries),
		"investments":      len(d.Investments),
		"schedule":         len(d.Schedule),
		"goals":            len(d.Goals),
	}
}

// IsEmpty reports whether the document holds no records.
func (d *Document) IsEmpty() bool {
	for _, n := range d.Counts() {
		if n > 0 {
			return false
		}
	}
	return true
}

// decodeInto assigns dst only when the whole collection decodes.
func decodeInto[T any](msg json.RawMessage, dst *[]T) error {
	var out []T
	if err := json.Unmarshal(msg, &out); err != nil {
		return err
	}
	if out != nil {
		*dst = out
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
