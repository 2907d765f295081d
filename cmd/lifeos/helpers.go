// ABOUTME: Shared CLI helpers for dates, prompts, and column formatting.
// ABOUTME: Resolves today/yesterday/YYYY-MM-DD, asks y/N questions, and pads table cells.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
)

// resolveDate turns "", "today", "yesterday", or YYYY-MM-DD into a calendar day.
func resolveDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return models.FormatDate(now), nil
	case "yesterday":
		return models.FormatDate(now.AddDate(0, 0, -1)), nil
	}
	if _, err := models.ParseDate(s); err != nil {
		return "", fmt.Errorf("invalid date: %s (use today, yesterday, or YYYY-MM-DD)", s)
	}
	return s, nil
}

// confirm asks a y/N question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// bandColor picks the terminal color for a score band.
func bandColor(b score.Band) *color.Color {
	switch b {
	case score.BandExcellent:
		return color.New(color.FgGreen, color.Bold)
	case score.BandGood:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
