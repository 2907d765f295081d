// ABOUTME: MCP resource implementations for the lifeos tracker.
// ABOUTME: Provides lifeos://today, lifeos://history, and lifeos://dashboard resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/lifeos/internal/dashboard"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// lifeos://today - meals, workouts, and score for the current day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifeos://today",
		Name:        "Today's Health Data",
		Description: "Meals, workouts, and daily score for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// lifeos://history - last 30 scored days
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifeos://history",
		Name:        "Score History",
		Description: "Daily scores for the last 30 days with activity, plus the analytics summary",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// lifeos://dashboard - cross-collection overview
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifeos://dashboard",
		Name:        "LifeOS Dashboard",
		Description: "Today's intake, this week's training, latest weight, and life counts",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	today := s.today()
	meals := []models.CalorieEntry{}
	for _, e := range doc.CalorieEntries {
		if e.Date == today {
			meals = append(meals, e)
		}
	}
	workouts := []models.WorkoutEntry{}
	for _, w := range doc.WorkoutEntries {
		if w.Date == today {
			workouts = append(workouts, w)
		}
	}

	result := map[string]any{
		"date":     today,
		"meals":    meals,
		"workouts": workouts,
		"score":    score.Calculate(today, doc.CalorieEntries, doc.WorkoutEntries, doc.Settings),
	}
	return jsonResource("lifeos://today", result)
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	scores := score.History(s.now(), score.Month, doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
	if scores == nil {
		scores = []score.DailyScore{}
	}

	result := map[string]any{
		"range":   score.Month.String(),
		"scores":  scores,
		"summary": score.Summarize(scores, doc.BodyMeasurements),
	}
	return jsonResource("lifeos://history", result)
}

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return jsonResource("lifeos://dashboard", dashboard.Compute(doc, doc.Settings, s.now()))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
