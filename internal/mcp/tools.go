// ABOUTME: MCP tool implementations for the lifeos tracker.
// ABOUTME: Provides meal, workout, and measurement logging plus score, history, and analytics.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/score"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a food item with calories and macros",
	}, s.handleLogMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List logged food items for a day (default today)",
	}, s.handleListMeals)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a logged food item by ID or ID prefix",
	}, s.handleDeleteMeal)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout session",
	}, s.handleLogWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first",
	}, s.handleListWorkouts)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	// add_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_measurement",
		Description: "Record body weight with optional body fat and circumferences",
	}, s.handleAddMeasurement)

	// list_measurements
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_measurements",
		Description: "List body measurements, oldest first, with weight changes",
	}, s.handleListMeasurements)

	// daily_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_score",
		Description: "Compute the 0-100 health score for a day (default today)",
	}, s.handleDailyScore)

	// score_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "score_history",
		Description: "Daily scores for days with logged meals or workouts in a trailing window or a from/to date range",
	}, s.handleScoreHistory)

	// analytics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analytics",
		Description: "Average score, best day, workout count, and weight trend for a window or a from/to date range",
	}, s.handleAnalytics)

	// get_settings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_settings",
		Description: "Show nutrition goals, workout days, and other settings",
	}, s.handleGetSettings)

	// update_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goals",
		Description: "Update nutrition goals and planned workout days",
	}, s.handleUpdateGoals)
}

// Tool input/output types

type logMealInput struct {
	Meal     string  `json:"meal" jsonschema:"Meal slot: breakfast, lunch, dinner, or snack"`
	Food     string  `json:"food" jsonschema:"What was eaten"`
	Calories float64 `json:"calories" jsonschema:"Energy in kcal"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"Carbohydrates in grams"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"Fat in grams"`
	Date     string  `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
	Time     string  `json:"time,omitempty" jsonschema:"Time as HH:MM, defaults to now"`
}

type mealOutput struct {
	ID      string              `json:"id"`
	Entry   models.CalorieEntry `json:"entry"`
	Message string              `json:"message"`
}

type listMealsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type listMealsOutput struct {
	Date     string                `json:"date"`
	Meals    []models.CalorieEntry `json:"meals"`
	Calories float64               `json:"calories"`
	Protein  float64               `json:"protein"`
	Carbs    float64               `json:"carbs"`
	Fat      float64               `json:"fat"`
}

type deleteInput struct {
	ID string `json:"id" jsonschema:"Record ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logWorkoutInput struct {
	Type           string  `json:"type" jsonschema:"Kind of workout (run, lift, cycle, swim, etc.)"`
	Duration       float64 `json:"duration" jsonschema:"Duration in minutes"`
	CaloriesBurned float64 `json:"calories_burned,omitempty" jsonschema:"Estimated kcal burned"`
	Notes          string  `json:"notes,omitempty" jsonschema:"Workout notes"`
	Date           string  `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type workoutOutput struct {
	ID      string              `json:"id"`
	Workout models.WorkoutEntry `json:"workout"`
	Message string              `json:"message"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listWorkoutsOutput struct {
	Workouts []models.WorkoutEntry `json:"workouts"`
}

type addMeasurementInput struct {
	Weight  float64 `json:"weight" jsonschema:"Body weight in kg"`
	BodyFat float64 `json:"body_fat,omitempty" jsonschema:"Body fat percentage"`
	Chest   float64 `json:"chest,omitempty" jsonschema:"Chest circumference in cm"`
	Waist   float64 `json:"waist,omitempty" jsonschema:"Waist circumference in cm"`
	Hips    float64 `json:"hips,omitempty" jsonschema:"Hip circumference in cm"`
	Arms    float64 `json:"arms,omitempty" jsonschema:"Arm circumference in cm"`
	Date    string  `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type measurementOutput struct {
	ID          string                 `json:"id"`
	Measurement models.BodyMeasurement `json:"measurement"`
	Message     string                 `json:"message"`
}

type listMeasurementsOutput struct {
	Rows              []score.WeightRow `json:"rows"`
	FirstWeight       float64           `json:"first_weight"`
	LatestWeight      float64           `json:"latest_weight"`
	TotalWeightChange float64           `json:"total_weight_change"`
}

type dailyScoreInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type dailyScoreOutput struct {
	Score score.DailyScore `json:"score"`
	Band  score.Band       `json:"band"`
}

type rangeInput struct {
	Range string `json:"range,omitempty" jsonschema:"Window: 7, 30, 90, or all (default 30)"`
	From  string `json:"from,omitempty" jsonschema:"First day of an explicit range (YYYY-MM-DD); overrides range"`
	To    string `json:"to,omitempty" jsonschema:"Last day of an explicit range (YYYY-MM-DD, default today)"`
}

type historyOutput struct {
	Range  string             `json:"range"`
	Scores []score.DailyScore `json:"scores"`
}

type analyticsOutput struct {
	Range   string        `json:"range"`
	Summary score.Summary `json:"summary"`
}

type settingsOutput struct {
	Settings models.Settings `json:"settings"`
}

type updateGoalsInput struct {
	Calories    *float64 `json:"calories,omitempty" jsonschema:"Daily calorie goal in kcal"`
	Protein     *float64 `json:"protein,omitempty" jsonschema:"Daily protein goal in grams"`
	Carbs       *float64 `json:"carbs,omitempty" jsonschema:"Daily carbohydrate goal in grams"`
	Fat         *float64 `json:"fat,omitempty" jsonschema:"Daily fat goal in grams"`
	WorkoutDays []string `json:"workout_days,omitempty" jsonschema:"Planned workout weekdays as names or 0-6 (0 is Sunday); pass [\"none\"] to clear"`
}

// Tool handlers

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, mealOutput, error) {
	meal := strings.ToLower(input.Meal)
	if !models.IsValidMealKind(meal) {
		return nil, mealOutput{}, fmt.Errorf("unknown meal: %s (use breakfast, lunch, dinner, or snack)", input.Meal)
	}

	e := models.NewCalorieEntry(models.MealKind(meal), input.Food, input.Calories).
		WithMacros(input.Protein, input.Carbs, input.Fat).
		WithDate(s.today()).
		WithTime(s.now().Format(models.TimeLayout))
	if input.Date != "" {
		e.WithDate(input.Date)
	}
	if input.Time != "" {
		e.WithTime(input.Time)
	}

	if err := s.repo.AddCalorieEntry(e); err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	return nil, mealOutput{
		ID:      e.ID[:8],
		Entry:   *e,
		Message: fmt.Sprintf("Logged %s: %s, %.0f kcal (ID: %s)", e.Meal, e.Food, e.Calories, e.ID[:8]),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, listMealsOutput, error) {
	date := input.Date
	if date == "" {
		date = s.today()
	}
	if _, err := models.ParseDate(date); err != nil {
		return nil, listMealsOutput{}, err
	}

	entries, err := s.repo.CalorieEntries()
	if err != nil {
		return nil, listMealsOutput{}, fmt.Errorf("failed to list meals: %w", err)
	}

	out := listMealsOutput{Date: date, Meals: []models.CalorieEntry{}}
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		out.Meals = append(out.Meals, e)
		out.Calories += e.Calories
		out.Protein += e.Protein
		out.Carbs += e.Carbs
		out.Fat += e.Fat
	}
	return nil, out, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	e, err := s.repo.DeleteCalorieEntry(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s: %s (%s)", e.Meal, e.Food, e.Date),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w := models.NewWorkoutEntry(input.Type, input.Duration).
		WithDate(s.today()).
		WithCaloriesBurned(input.CaloriesBurned).
		WithNotes(input.Notes)
	if input.Date != "" {
		w.WithDate(input.Date)
	}

	if err := s.repo.AddWorkoutEntry(w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		ID:      w.ID[:8],
		Workout: *w,
		Message: fmt.Sprintf("Logged %s workout, %.0f min (ID: %s)", w.Type, w.Duration, w.ID[:8]),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.repo.WorkoutEntries()
	if err != nil {
		return nil, listWorkoutsOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}

	sorted := models.NewestWorkoutsFirst(workouts)
	if len(sorted) > input.Limit {
		sorted = sorted[:input.Limit]
	}
	return nil, listWorkoutsOutput{Workouts: sorted}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.repo.DeleteWorkoutEntry(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s workout (%s)", w.Type, w.Date),
	}, nil
}

func (s *Server) handleAddMeasurement(ctx context.Context, req *mcp.CallToolRequest, input addMeasurementInput) (*mcp.CallToolResult, measurementOutput, error) {
	m := models.NewBodyMeasurement(input.Weight).WithDate(s.today())
	if input.Date != "" {
		m.WithDate(input.Date)
	}
	if input.BodyFat > 0 {
		m.WithBodyFat(input.BodyFat)
	}
	m.WithMeasurements(models.Measurements{
		Chest: positive(input.Chest),
		Waist: positive(input.Waist),
		Hips:  positive(input.Hips),
		Arms:  positive(input.Arms),
	})

	if err := s.repo.AddBodyMeasurement(m); err != nil {
		return nil, measurementOutput{}, fmt.Errorf("failed to add measurement: %w", err)
	}

	return nil, measurementOutput{
		ID:          m.ID[:8],
		Measurement: *m,
		Message:     fmt.Sprintf("Recorded %.1f kg on %s (ID: %s)", m.Weight, m.Date, m.ID[:8]),
	}, nil
}

func (s *Server) handleListMeasurements(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, listMeasurementsOutput, error) {
	ms, err := s.repo.BodyMeasurements()
	if err != nil {
		return nil, listMeasurementsOutput{}, fmt.Errorf("failed to list measurements: %w", err)
	}

	summary := score.Summarize(nil, ms)
	return nil, listMeasurementsOutput{
		Rows:              summary.WeightTable,
		FirstWeight:       summary.FirstWeight,
		LatestWeight:      summary.LatestWeight,
		TotalWeightChange: summary.TotalWeightChange,
	}, nil
}

func (s *Server) handleDailyScore(ctx context.Context, req *mcp.CallToolRequest, input dailyScoreInput) (*mcp.CallToolResult, dailyScoreOutput, error) {
	date := input.Date
	if date == "" {
		date = s.today()
	}
	if _, err := models.ParseDate(date); err != nil {
		return nil, dailyScoreOutput{}, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, dailyScoreOutput{}, fmt.Errorf("failed to load data: %w", err)
	}

	ds := score.Calculate(date, doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
	return nil, dailyScoreOutput{Score: ds, Band: ds.Band()}, nil
}

func (s *Server) handleScoreHistory(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, historyOutput, error) {
	span, err := s.parseRange(input)
	if err != nil {
		return nil, historyOutput{}, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, historyOutput{}, fmt.Errorf("failed to load data: %w", err)
	}

	scores, err := span.Scores(s.now(), doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
	if err != nil {
		return nil, historyOutput{}, err
	}
	if scores == nil {
		scores = []score.DailyScore{}
	}
	return nil, historyOutput{Range: rangeLabel(span), Scores: scores}, nil
}

func (s *Server) handleAnalytics(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, analyticsOutput, error) {
	span, err := s.parseRange(input)
	if err != nil {
		return nil, analyticsOutput{}, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, analyticsOutput{}, fmt.Errorf("failed to load data: %w", err)
	}

	scores, err := span.Scores(s.now(), doc.CalorieEntries, doc.WorkoutEntries, doc.Settings)
	if err != nil {
		return nil, analyticsOutput{}, err
	}
	return nil, analyticsOutput{
		Range:   rangeLabel(span),
		Summary: score.Summarize(scores, doc.BodyMeasurements),
	}, nil
}

func (s *Server) handleGetSettings(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, settingsOutput, error) {
	settings, err := s.repo.Settings()
	if err != nil {
		return nil, settingsOutput{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return nil, settingsOutput{Settings: settings}, nil
}

func (s *Server) handleUpdateGoals(ctx context.Context, req *mcp.CallToolRequest, input updateGoalsInput) (*mcp.CallToolResult, settingsOutput, error) {
	settings, err := s.repo.Settings()
	if err != nil {
		return nil, settingsOutput{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.Calories != nil {
		settings.DailyCalorieGoal = *input.Calories
	}
	if input.Protein != nil {
		settings.DailyProteinGoal = *input.Protein
	}
	if input.Carbs != nil {
		settings.DailyCarbsGoal = *input.Carbs
	}
	if input.Fat != nil {
		settings.DailyFatGoal = *input.Fat
	}
	if len(input.WorkoutDays) > 0 {
		days, err := models.ParseWeekdays(input.WorkoutDays)
		if err != nil {
			return nil, settingsOutput{}, err
		}
		settings = settings.WithWorkoutDays(days)
	}

	if err := s.repo.SaveSettings(settings); err != nil {
		return nil, settingsOutput{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return nil, settingsOutput{Settings: settings}, nil
}

func (s *Server) parseRange(input rangeInput) (score.Span, error) {
	window := input.Range
	if window == "" {
		window = score.Month.String()
	}
	return score.ParseSpan(window, input.From, input.To, s.now())
}

// rangeLabel is the window name, or "from..to" for an explicit range.
func rangeLabel(span score.Span) string {
	if span.From != "" {
		return span.From + ".." + span.To
	}
	return span.Window.String()
}

func positive(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
