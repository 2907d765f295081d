// ABOUTME: Non-health collections of the life document: work, reading, journal, money, plans.
// ABOUTME: Plain records carried through storage, export, and the dashboard.
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Task is a to-do item.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
}

// RecordID returns the task ID.
func (t Task) RecordID() string { return t.ID }

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on-hold"
)

// IsActive reports whether the project still needs work.
func (s ProjectStatus) IsActive() bool {
	return s == ProjectPlanning || s == ProjectInProgress
}

// Milestone is a checkpoint inside a project.
type Milestone struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
	DueDate   string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// Project is a longer-running piece of work.
type Project struct {
	ID         string        `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	StartDate  string        `json:"startDate" yaml:"startDate"`
	EndDate    string        `json:"endDate" yaml:"endDate"`
	Status     ProjectStatus `json:"status" yaml:"status"`
	Progress   float64       `json:"progress" yaml:"progress"`
	Notes      string        `json:"notes" yaml:"notes"`
	Milestones []Milestone   `json:"milestones" yaml:"milestones"`
}

// RecordID returns the project ID.
func (p Project) RecordID() string { return p.ID }

// Recipe is a saved recipe with its calorie total.
type Recipe struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions string   `json:"instructions" yaml:"instructions"`
	Calories     float64  `json:"calories" yaml:"calories"`
	PrepTime     *float64 `json:"prepTime,omitempty" yaml:"prepTime,omitempty"`
	Favorite     bool     `json:"favorite" yaml:"favorite"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// NewRecipe creates a recipe with a generated ID.
func NewRecipe(title string, calories float64) *Recipe {
	return &Recipe{
		ID:          uuid.New().String(),
		Title:       title,
		Ingredients: []string{},
		Calories:    calories,
	}
}

// RecordID returns the recipe ID.
func (r Recipe) RecordID() string { return r.ID }

// Matches reports whether query appears in the title or category, ignoring case.
func (r Recipe) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Category), q)
}

// Validate checks the fields a user can get wrong.
func (r Recipe) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: recipe has no id", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: recipe title is required", ErrInvalidRecord)
	}
	if r.Calories < 0 {
		return fmt.Errorf("%w: calories must not be negative", ErrInvalidRecord)
	}
	if r.PrepTime != nil && *r.PrepTime < 0 {
		return fmt.Errorf("%w: prep time must not be negative", ErrInvalidRecord)
	}
	return nil
}

// HealthProduct is a product worth remembering and where to buy it.
type HealthProduct struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Location string  `json:"location" yaml:"location"`
	Price    float64 `json:"price" yaml:"price"`
}

// NewHealthProduct creates a product with a generated ID.
func NewHealthProduct(name, category, location string, price float64) *HealthProduct {
	return &HealthProduct{
		ID:       uuid.New().String(),
		Name:     name,
		Category: category,
		Location: location,
		Price:    price,
	}
}

// RecordID returns the product ID.
func (h HealthProduct) RecordID() string { return h.ID }

// Matches reports whether query appears in the name or category, ignoring case.
func (h HealthProduct) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(h.Name), q) ||
		strings.Contains(strings.ToLower(h.Category), q)
}

// Validate checks the fields a user can get wrong.
func (h HealthProduct) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("%w: product has no id", ErrInvalidRecord)
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidRecord)
	}
	if h.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidRecord)
	}
	return nil
}

// BookStatus is where a book sits on the reading list.
type BookStatus string

const (
	BookReading    BookStatus = "reading"
	BookCompleted  BookStatus = "completed"
	BookWantToRead BookStatus = "want-to-read"
)

// Book tracks reading progress.
type Book struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Author      string     `json:"author" yaml:"author"`
	Status      BookStatus `json:"status" yaml:"status"`
	CurrentPage *int       `json:"currentPage,omitempty" yaml:"currentPage,omitempty"`
	TotalPages  *int       `json:"totalPages,omitempty" yaml:"totalPages,omitempty"`
	Rating      *int       `json:"rating,omitempty" yaml:"rating,omitempty"`
	Review      string     `json:"review,omitempty" yaml:"review,omitempty"`
	StartDate   string     `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	FinishDate  string     `json:"finishDate,omitempty" yaml:"finishDate,omitempty"`
}

// RecordID returns the book ID.
func (b Book) RecordID() string { return b.ID }

// Mood is the self-reported mood of a journal entry.
type Mood string

const (
	MoodVeryHappy Mood = "very-happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very-sad"
)

// JournalEntry is a dated free-form note.
type JournalEntry struct {
	ID      string   `json:"id" yaml:"id"`
	Date    string   `json:"date" yaml:"date"`
	Content string   `json:"content" yaml:"content"`
	Mood    Mood     `json:"mood" yaml:"mood"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// RecordID returns the journal entry ID.
func (j JournalEntry) RecordID() string { return j.ID }

// InvestmentType is the asset class of a holding.
type InvestmentType string

const (
	InvestmentStock  InvestmentType = "stock"
	InvestmentCrypto InvestmentType = "crypto"
	InvestmentFund   InvestmentType = "fund"
	InvestmentOther  InvestmentType = "other"
)

// Investment is a holding valued at its current price.
type Investment struct {
	ID           string         `json:"id" yaml:"id"`
	Asset        string         `json:"asset" yaml:"asset"`
	Type         InvestmentType `json:"type" yaml:"type"`
	Quantity     float64        `json:"quantity" yaml:"quantity"`
	BuyPrice     float64        `json:"buyPrice" yaml:"buyPrice"`
	CurrentPrice float64        `json:"currentPrice" yaml:"currentPrice"`
	Notes        string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// RecordID returns the investment ID.
func (i Investment) RecordID() string { return i.ID }

// Value is the holding's current market value.
func (i Investment) Value() float64 { return i.Quantity * i.CurrentPrice }

// Cost is what the holding cost to buy.
func (i Investment) Cost() float64 { return i.Quantity * i.BuyPrice }

// ScheduleEntry is a recurring weekly slot.
type ScheduleEntry struct {
	ID       string `json:"id" yaml:"id"`
	Day      string `json:"day" yaml:"day"`
	Time     string `json:"time" yaml:"time"`
	Activity string `json:"activity" yaml:"activity"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// RecordID returns the schedule entry ID.
func (s ScheduleEntry) RecordID() string { return s.ID }

// GoalCategory groups goals by life area.
type GoalCategory string

const (
	GoalWork      GoalCategory = "work"
	GoalHealth    GoalCategory = "health"
	GoalEducation GoalCategory = "education"
	GoalFinance   GoalCategory = "finance"
	GoalPersonal  GoalCategory = "personal"
	GoalOther     GoalCategory = "other"
)

// Goal is a long-term target.
type Goal struct {
	ID            string       `json:"id" yaml:"id"`
	Title         string       `json:"title" yaml:"title"`
	Category      GoalCategory `json:"category" yaml:"category"`
	Deadline      string       `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Completed     bool         `json:"completed" yaml:"completed"`
	CompletedDate string       `json:"completedDate,omitempty" yaml:"completedDate,omitempty"`
	Notes         string       `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// RecordID returns the goal ID.
func (g Goal) RecordID() string { return g.ID }
