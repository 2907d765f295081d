// ABOUTME: Score history over a trailing window of days that have logged activity.
// ABOUTME: Yields scores oldest-first as a restartable iterator or a collected slice.
package score

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/harperreed/lifeos/internal/models"
)

// Window is the number of trailing days a history covers, counting today.
type Window int

const (
	Week    Window = 7
	Month   Window = 30
	Quarter Window = 90
	// All is capped at one year.
	All Window = 365
)

// ParseWindow accepts "7", "30", "90", or "all".
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "7":
		return Week, nil
	case "30":
		return Month, nil
	case "90":
		return Quarter, nil
	case "all":
		return All, nil
	}
	return 0, fmt.Errorf("invalid range %q (use 7, 30, 90, or all)", s)
}

// String returns the form ParseWindow accepts.
func (w Window) String() string {
	if w == All {
		return "all"
	}
	return fmt.Sprintf("%d", int(w))
}

// ActiveDates returns the set of days with at least one calorie or workout entry.
func ActiveDates(calories []models.CalorieEntry, workouts []models.WorkoutEntry) map[string]struct{} {
	dates := make(map[string]struct{}, len(calories)+len(workouts))
	for _, c := range calories {
		dates[c.Date] = struct{}{}
	}
	for _, w := range workouts {
		dates[w.Date] = struct{}{}
	}
	return dates
}

// HistorySeq yields a score for each active day in the window ending on today's
// calendar day, oldest first. Each iteration recomputes from the inputs.
func HistorySeq(today time.Time, window Window, calories []models.CalorieEntry, workouts []models.WorkoutEntry, settings models.Settings) iter.Seq[DailyScore] {
	return func(yield func(DailyScore) bool) {
		active := ActiveDates(calories, workouts)
		if len(active) == 0 {
			return
		}
		end := models.CivilDay(today)
		for i := int(window) - 1; i >= 0; i-- {
			date := models.FormatDate(end.AddDate(0, 0, -i))
			if _, ok := active[date]; !ok {
				continue
			}
			if !yield(Calculate(date, calories, workouts, settings)) {
				return
			}
		}
	}
}

// History collects HistorySeq into a slice.
func History(today time.Time, window Window, calories []models.CalorieEntry, workouts []models.WorkoutEntry, settings models.Settings) []DailyScore {
	return slices.Collect(HistorySeq(today, window, calories, workouts, settings))
}

// Range scores every active day between from and to inclusive, oldest first.
func Range(from, to string, calories []models.CalorieEntry, workouts []models.WorkoutEntry, settings models.Settings) ([]DailyScore, error) {
	start, err := models.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := models.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s is before start %s", to, from)
	}

	active := ActiveDates(calories, workouts)
	dates := make([]string, 0, len(active))
	for d := range active {
		if d >= from && d <= to {
			dates = append(dates, d)
		}
	}
	slices.Sort(dates)

	scores := make([]DailyScore, 0, len(dates))
	for _, d := range dates {
		scores = append(scores, Calculate(d, calories, workouts, settings))
	}
	return scores, nil
}

// Span picks the days to score: the trailing Window ending today, or the
// explicit From..To range when From is set.
type Span struct {
	Window Window
	From   string
	To     string
}

// ParseSpan builds a Span from a window name and optional bounds. A range
// without an end runs through today's calendar day.
func ParseSpan(window, from, to string, today time.Time) (Span, error) {
	if from == "" {
		if to != "" {
			return Span{}, fmt.Errorf("range end %s given without a start", to)
		}
		w, err := ParseWindow(window)
		if err != nil {
			return Span{}, err
		}
		return Span{Window: w}, nil
	}

	if to == "" {
		to = models.FormatDate(models.CivilDay(today))
	}
	start, err := models.ParseDate(from)
	if err != nil {
		return Span{}, err
	}
	end, err := models.ParseDate(to)
	if err != nil {
		return Span{}, err
	}
	if end.Before(start) {
		return Span{}, fmt.Errorf("range end %s is before start %s", to, from)
	}
	return Span{From: from, To: to}, nil
}

// Scores returns the span's daily scores, oldest first.
func (s Span) Scores(today time.Time, calories []models.CalorieEntry, workouts []models.WorkoutEntry, settings models.Settings) ([]DailyScore, error) {
	if s.From != "" {
		return Range(s.From, s.To, calories, workouts, settings)
	}
	return History(today, s.Window, calories, workouts, settings), nil
}

// String describes the span for headings.
func (s Span) String() string {
	switch {
	case s.From != "":
		return s.From + " to " + s.To
	case s.Window == All:
		return "all (last 365 days)"
	default:
		return fmt.Sprintf("last %d days", int(s.Window))
	}
}
