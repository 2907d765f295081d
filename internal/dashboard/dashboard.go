// ABOUTME: Cross-collection overview: today's intake and score, this week's training,
// ABOUTME: latest weigh-in, and counts for tasks, projects, goals, books, journal, and money.
package dashboard

import (
	"strings"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
)

// Intake is consumed versus goal for one macro.
type Intake struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
}

// Remaining is what is left of the goal, never negative.
func (i Intake) Remaining() float64 {
	if i.Consumed >= i.Goal {
		return 0
	}
	return i.Goal - i.Consumed
}

// Today summarizes the current calendar day.
type Today struct {
	Date     string           `json:"date"`
	Calories Intake           `json:"calories"`
	Protein  Intake           `json:"protein"`
	Carbs    Intake           `json:"carbs"`
	Fat      Intake           `json:"fat"`
	Score    score.DailyScore `json:"score"`
	Meals    int              `json:"meals"`
	Journal  bool             `json:"journalWritten"`
	NewTasks int              `json:"newTasks"`
}

// Week covers Monday through Sunday of the current week.
type Week struct {
	Start          string  `json:"start"`
	End            string  `json:"end"`
	Workouts       int     `json:"workouts"`
	Goal           float64 `json:"goal"`
	Minutes        float64 `json:"minutes"`
	CaloriesBurned float64 `json:"caloriesBurned"`
}

// Month covers the current calendar month.
type Month struct {
	Workouts int     `json:"workouts"`
	Goal     float64 `json:"goal"`
}

// Portfolio totals the investments.
type Portfolio struct {
	Value         float64 `json:"value"`
	Cost          float64 `json:"cost"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profitPercent"`
}

// Stats is the full dashboard view.
type Stats struct {
	Today  Today                   `json:"today"`
	Week   Week                    `json:"week"`
	Month  Month                   `json:"month"`
	Weight *models.BodyMeasurement `json:"latestWeight,omitempty"`

	ActiveTasks     int     `json:"activeTasks"`
	ActiveProjects  int     `json:"activeProjects"`
	ActiveGoals     int     `json:"activeGoals"`
	FavoriteRecipes int     `json:"favoriteRecipes"`
	BooksReading    int     `json:"booksReading"`
	BooksThisYear   int     `json:"booksThisYear"`
	BookGoal        float64 `json:"bookGoal"`

	Portfolio Portfolio `json:"portfolio"`
}

// WeekBounds returns the Monday and Sunday of the week containing day.
func WeekBounds(day time.Time) (monday, sunday time.Time) {
	d := models.CivilDay(day)
	offset := (int(d.Weekday()) + 6) % 7
	monday = d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// Compute builds the dashboard for the calendar day of now.
func Compute(doc *models.Document, settings models.Settings, now time.Time) Stats {
	today := models.FormatDate(now)
	monday, sunday := WeekBounds(now)
	weekStart, weekEnd := models.FormatDate(monday), models.FormatDate(sunday)
	monthPrefix := now.Format("2006-01-")
	yearPrefix := now.Format("2006-")

	st := Stats{
		Week:     Week{Start: weekStart, End: weekEnd, Goal: settings.WeeklyWorkoutGoal},
		Month:    Month{Goal: settings.MonthlyWorkoutGoal},
		BookGoal: settings.YearlyBookGoal,
	}

	ds := score.Calculate(today, doc.CalorieEntries, doc.WorkoutEntries, settings)
	st.Today = Today{
		Date:     today,
		Calories: Intake{Consumed: ds.CalorieIntake, Goal: settings.DailyCalorieGoal},
		Protein:  Intake{Consumed: ds.ProteinIntake, Goal: settings.DailyProteinGoal},
		Carbs:    Intake{Consumed: ds.CarbsIntake, Goal: settings.DailyCarbsGoal},
		Fat:      Intake{Consumed: ds.FatIntake, Goal: settings.DailyFatGoal},
		Score:    ds,
	}
	for _, c := range doc.CalorieEntries {
		if c.Date == today {
			st.Today.Meals++
		}
	}

	for _, w := range doc.WorkoutEntries {
		if w.Date >= weekStart && w.Date <= weekEnd {
			st.Week.Workouts++
			st.Week.Minutes += w.Duration
			st.Week.CaloriesBurned += w.CaloriesBurned
		}
		if strings.HasPrefix(w.Date, monthPrefix) {
			st.Month.Workouts++
		}
	}

	if sorted := models.MeasurementsByDate(doc.BodyMeasurements); len(sorted) > 0 {
		latest := sorted[len(sorted)-1]
		st.Weight = &latest
	}

	for _, t := range doc.Tasks {
		if t.Completed {
			continue
		}
		st.ActiveTasks++
		if strings.HasPrefix(t.CreatedAt, today) {
			st.Today.NewTasks++
		}
	}
	for _, p := range doc.Projects {
		if p.Status.IsActive() {
			st.ActiveProjects++
		}
	}
	for _, g := range doc.Goals {
		if !g.Completed {
			st.ActiveGoals++
		}
	}
	for _, r := range doc.Recipes {
		if r.Favorite {
			st.FavoriteRecipes++
		}
	}
	for _, b := range doc.Books {
		switch {
		case b.Status == models.BookReading:
			st.BooksReading++
		case b.Status == models.BookCompleted && strings.HasPrefix(b.FinishDate, yearPrefix):
			st.BooksThisYear++
		}
	}
	for _, j := range doc.JournalEntries {
		if j.Date == today {
			st.Today.Journal = true
			break
		}
	}

	for _, inv := range doc.Investments {
		st.Portfolio.Value += inv.Value()
		st.Portfolio.Cost += inv.Cost()
	}
	st.Portfolio.Profit = st.Portfolio.Value - st.Portfolio.Cost
	if st.Portfolio.Cost > 0 {
		st.Portfolio.ProfitPercent = st.Portfolio.Profit * 100 / st.Portfolio.Cost
	}
	return st
}
