// ABOUTME: Tests for record-level CRUD and ID prefix resolution.
// ABOUTME: Runs against the SQLite and Badger backed stores.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/lifeos/internal/models"
)

func TestCalorieEntryCRUD(t *testing.T) {
	s := setupTestStore(t)

	e := models.NewCalorieEntry(models.MealBreakfast, "oatmeal", 350).WithDate("2025-01-06").WithMacros(12, 60, 6)
	if err := s.AddCalorieEntry(e); err != nil {
		t.Fatalf("AddCalorieEntry failed: %v", err)
	}

	got, err := s.GetCalorieEntry(e.ID[:8])
	if err != nil {
		t.Fatalf("GetCalorieEntry by prefix failed: %v", err)
	}
	if got.Food != "oatmeal" || got.Calories != 350 {
		t.Errorf("got %+v", got)
	}

	got.Calories = 400
	if err := s.UpdateCalorieEntry(got); err != nil {
		t.Fatalf("UpdateCalorieEntry failed: %v", err)
	}
	again, _ := s.GetCalorieEntry(e.ID)
	if again.Calories != 400 {
		t.Errorf("Calories after update = %v, want 400", again.Calories)
	}

	removed, err := s.DeleteCalorieEntry(e.ID[:8])
	if err != nil {
		t.Fatalf("DeleteCalorieEntry failed: %v", err)
	}
	if removed.ID != e.ID {
		t.Errorf("removed %s, want %s", removed.ID, e.ID)
	}
	entries, _ := s.CalorieEntries()
	if len(entries) != 0 {
		t.Errorf("entries after delete = %d, want 0", len(entries))
	}
}

func TestAddRejectsInvalidAndDuplicate(t *testing.T) {
	s := NewMemoryStore()

	bad := models.NewCalorieEntry("brunch", "toast", 200)
	if err := s.AddCalorieEntry(bad); !errors.Is(err, models.ErrInvalidRecord) {
		t.Errorf("AddCalorieEntry(bad meal) = %v, want ErrInvalidRecord", err)
	}

	w := models.NewWorkoutEntry("run", 30)
	if err := s.AddWorkoutEntry(w); err != nil {
		t.Fatalf("AddWorkoutEntry failed: %v", err)
	}
	if err := s.AddWorkoutEntry(w); err == nil {
		t.Error("expected duplicate id error")
	}

	m := models.NewBodyMeasurement(-1)
	if err := s.AddBodyMeasurement(m); !errors.Is(err, models.ErrInvalidRecord) {
		t.Errorf("AddBodyMeasurement(-1) = %v, want ErrInvalidRecord", err)
	}
}

func TestUpdateMissingCalorieEntry(t *testing.T) {
	s := NewMemoryStore()
	e := models.NewCalorieEntry(models.MealLunch, "soup", 300)
	if err := s.UpdateCalorieEntry(e); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCalorieEntry = %v, want ErrNotFound", err)
	}
}

func TestWorkoutAndMeasurementCRUDOnBadger(t *testing.T) {
	kv, err := OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("OpenBadgerInMemory failed: %v", err)
	}
	s := NewStore(kv)
	defer s.Close()

	w := models.NewWorkoutEntry("lift", 50).WithCaloriesBurned(250)
	if err := s.AddWorkoutEntry(w); err != nil {
		t.Fatalf("AddWorkoutEntry failed: %v", err)
	}
	gotW, err := s.GetWorkoutEntry(w.ID[:6])
	if err != nil || gotW.CaloriesBurned != 250 {
		t.Errorf("GetWorkoutEntry = %+v, %v", gotW, err)
	}

	m := models.NewBodyMeasurement(81.3).WithBodyFat(21)
	if err := s.AddBodyMeasurement(m); err != nil {
		t.Fatalf("AddBodyMeasurement failed: %v", err)
	}
	gotM, err := s.GetBodyMeasurement(m.ID)
	if err != nil || gotM.BodyFat == nil || *gotM.BodyFat != 21 {
		t.Errorf("GetBodyMeasurement = %+v, %v", gotM, err)
	}

	if _, err := s.DeleteWorkoutEntry(w.ID); err != nil {
		t.Errorf("DeleteWorkoutEntry failed: %v", err)
	}
	if _, err := s.DeleteBodyMeasurement(m.ID[:8]); err != nil {
		t.Errorf("DeleteBodyMeasurement failed: %v", err)
	}
	if _, err := s.GetWorkoutEntry(w.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetWorkoutEntry after delete = %v, want ErrNotFound", err)
	}
}

func TestUpdateWorkoutAndMeasurement(t *testing.T) {
	s := setupTestStore(t)

	w := models.NewWorkoutEntry("run", 30).WithDate("2025-01-06")
	if err := s.AddWorkoutEntry(w); err != nil {
		t.Fatalf("AddWorkoutEntry failed: %v", err)
	}
	w.Type = "trail run"
	w.Duration = 55
	w.Date = "2025-01-07"
	if err := s.UpdateWorkoutEntry(w); err != nil {
		t.Fatalf("UpdateWorkoutEntry failed: %v", err)
	}
	gotW, _ := s.GetWorkoutEntry(w.ID)
	if gotW.Type != "trail run" || gotW.Duration != 55 || gotW.Date != "2025-01-07" {
		t.Errorf("workout after update = %+v", gotW)
	}

	m := models.NewBodyMeasurement(80).WithDate("2025-01-06")
	if err := s.AddBodyMeasurement(m); err != nil {
		t.Fatalf("AddBodyMeasurement failed: %v", err)
	}
	m.Weight = 79.4
	m.WithMeasurements(models.Measurements{Waist: ptr(84)})
	if err := s.UpdateBodyMeasurement(m); err != nil {
		t.Fatalf("UpdateBodyMeasurement failed: %v", err)
	}
	gotM, _ := s.GetBodyMeasurement(m.ID)
	if gotM.Weight != 79.4 || gotM.Measurements == nil || *gotM.Measurements.Waist != 84 {
		t.Errorf("measurement after update = %+v", gotM)
	}

	tests := []struct {
		name    string
		update  func() error
		wantErr error
	}{
		{"missing workout", func() error { return s.UpdateWorkoutEntry(models.NewWorkoutEntry("swim", 20)) }, ErrNotFound},
		{"invalid workout", func() error {
			bad := *w
			bad.Type = ""
			return s.UpdateWorkoutEntry(&bad)
		}, models.ErrInvalidRecord},
		{"missing measurement", func() error { return s.UpdateBodyMeasurement(models.NewBodyMeasurement(70)) }, ErrNotFound},
		{"invalid measurement", func() error {
			bad := *m
			bad.Weight = 0
			return s.UpdateBodyMeasurement(&bad)
		}, models.ErrInvalidRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.update(); !errors.Is(err, tt.wantErr) {
				t.Errorf("update = %v, want %v", err, tt.wantErr)
			}
		})
	}

	gotW, _ = s.GetWorkoutEntry(w.ID)
	if gotW.Type != "trail run" {
		t.Errorf("rejected update changed the workout: %+v", gotW)
	}
}

func TestRecipeCRUD(t *testing.T) {
	s := setupTestStore(t)

	r := models.NewRecipe("Overnight oats", 380)
	r.Ingredients = []string{"oats", "milk", "chia"}
	r.Category = "breakfast"
	if err := s.AddRecipe(r); err != nil {
		t.Fatalf("AddRecipe failed: %v", err)
	}
	if err := s.AddRecipe(r); err == nil {
		t.Error("expected duplicate id error")
	}

	toggled, err := s.ToggleFavorite(r.ID[:8])
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !toggled.Favorite {
		t.Error("first toggle should star the recipe")
	}
	doc, _ := s.Load()
	if len(doc.Recipes) != 1 || !doc.Recipes[0].Favorite {
		t.Errorf("stored recipes = %+v, want one favorite", doc.Recipes)
	}
	toggled, _ = s.ToggleFavorite(r.ID)
	if toggled.Favorite {
		t.Error("second toggle should clear the star")
	}

	got, err := s.GetRecipe(r.ID[:8])
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	got.Calories = 410
	if err := s.UpdateRecipe(got); err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}
	again, _ := s.GetRecipe(r.ID)
	if again.Calories != 410 || len(again.Ingredients) != 3 {
		t.Errorf("recipe after update = %+v", again)
	}

	if err := s.UpdateRecipe(models.NewRecipe("Ghost", 1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateRecipe(missing) = %v, want ErrNotFound", err)
	}

	removed, err := s.DeleteRecipe(r.ID[:8])
	if err != nil || removed.Title != "Overnight oats" {
		t.Fatalf("DeleteRecipe = %+v, %v", removed, err)
	}
	if _, err := s.ToggleFavorite(r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleFavorite after delete = %v, want ErrNotFound", err)
	}
}

func TestHealthProductCRUD(t *testing.T) {
	s := NewMemoryStore()

	p := models.NewHealthProduct("Creatine", "supplement", "Pharmacy", 24.5)
	if err := s.AddHealthProduct(p); err != nil {
		t.Fatalf("AddHealthProduct failed: %v", err)
	}
	if err := s.AddHealthProduct(models.NewHealthProduct("", "x", "y", 1)); !errors.Is(err, models.ErrInvalidRecord) {
		t.Errorf("AddHealthProduct(no name) = %v, want ErrInvalidRecord", err)
	}

	products, _ := s.HealthProducts()
	if len(products) != 1 || products[0].Price != 24.5 {
		t.Errorf("products = %+v", products)
	}

	removed, err := s.DeleteHealthProduct(p.ID[:6])
	if err != nil || removed.Name != "Creatine" {
		t.Fatalf("DeleteHealthProduct = %+v, %v", removed, err)
	}
	products, _ = s.HealthProducts()
	if len(products) != 0 {
		t.Errorf("products after delete = %d, want 0", len(products))
	}
}

func TestResolveIndex(t *testing.T) {
	items := []models.Goal{{ID: "abc123"}, {ID: "abd456"}, {ID: "abc"}}

	tests := []struct {
		name    string
		id      string
		want    int
		wantErr error
	}{
		{"exact beats prefix", "abc", 2, nil},
		{"unique prefix", "abd", 1, nil},
		{"full id", "abc123", 0, nil},
		{"ambiguous", "ab", -1, ErrAmbiguousID},
		{"missing", "zzz", -1, ErrNotFound},
		{"empty", "", -1, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveIndex(items, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("resolveIndex(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveIndex(%q) error = %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("resolveIndex(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
