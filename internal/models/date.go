// ABOUTME: Calendar-day helpers shared by records, scoring, and the CLI.
// ABOUTME: Days are civil YYYY-MM-DD strings; weekdays ignore time zones.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of every calendar day stored in the document.
const DateLayout = "2006-01-02"

// TimeLayout is the layout of an entry's time of day.
const TimeLayout = "15:04"

// ParseDate parses a YYYY-MM-DD day as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDate returns the calendar day of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar day in local time.
func Today() string {
	return FormatDate(time.Now())
}

// Weekday returns the day of week for a YYYY-MM-DD day.
func Weekday(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// CivilDay strips the clock from t and re-anchors the same calendar day at UTC,
// so AddDate walks whole days without daylight-saving drift.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidTime reports whether s is an HH:MM time of day.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts a weekday index (0=Sunday..6=Saturday) or an English name.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return time.Weekday(s[0] - '0'), nil
	}
	if wd, ok := weekdayNames[s]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("invalid weekday %q (use 0-6 or a day name)", s)
}

// ParseWeekdays parses a list of weekdays. Items may themselves be
// comma-separated. A single "none" yields an empty plan.
func ParseWeekdays(items []string) ([]time.Weekday, error) {
	days := []time.Weekday{}
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.EqualFold(part, "none") {
				if len(items) > 1 || strings.Contains(item, ",") {
					return nil, fmt.Errorf("none cannot be combined with other days")
				}
				return days, nil
			}
			wd, err := ParseWeekday(part)
			if err != nil {
				return nil, err
			}
			days = append(days, wd)
		}
	}
	return days, nil
}
