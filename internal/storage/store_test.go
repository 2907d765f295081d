// ABOUTME: Tests for the document Store.
// ABOUTME: Covers defaults, malformed data fallback, settings consistency, import, and clear.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/harperreed/lifeos/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(setupTestDB(t))
}

func TestLoadEmptyStoreReturnsDefaults(t *testing.T) {
	s := setupTestStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.IsEmpty() {
		t.Error("expected empty document")
	}
	if doc.Settings.DailyCalorieGoal != models.DefaultCalorieGoal {
		t.Errorf("DailyCalorieGoal = %v, want default", doc.Settings.DailyCalorieGoal)
	}

	has, err := s.HasData()
	if err != nil || has {
		t.Errorf("HasData = %v, %v; want false, nil", has, err)
	}
}

func TestLoadMalformedDocumentFallsBack(t *testing.T) {
	kv := NewMemoryKV()
	var logs bytes.Buffer
	s := NewStore(kv, WithLogger(log.New(&logs)))

	_ = kv.Set(DataKey, []byte(`{not json`))
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !doc.IsEmpty() || doc.Settings.Theme != models.ThemeLight {
		t.Errorf("Load = %+v, want defaults", doc)
	}
	if !strings.Contains(logs.String(), "malformed") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestLoadMalformedCollectionKeepsOthers(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv)

	_ = kv.Set(DataKey, []byte(`{"goals":[{"id":"g1","title":"run"}],"books":{"bad":true}}`))
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Goals) != 1 || len(doc.Books) != 0 {
		t.Errorf("goals/books = %d/%d, want 1/0", len(doc.Goals), len(doc.Books))
	}
}

func TestSettingsKeyWinsOverDocument(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv)

	_ = kv.Set(DataKey, []byte(`{"settings":{"dailyCalorieGoal":1500}}`))
	_ = kv.Set(SettingsKey, []byte(`{"dailyCalorieGoal":2200}`))
	settings, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if settings.DailyCalorieGoal != 2200 {
		t.Errorf("DailyCalorieGoal = %v, want 2200", settings.DailyCalorieGoal)
	}

	_ = kv.Set(SettingsKey, []byte(`"garbage"`))
	settings, _ = s.Settings()
	if settings.DailyCalorieGoal != 1500 {
		t.Errorf("DailyCalorieGoal with malformed slot = %v, want document value 1500", settings.DailyCalorieGoal)
	}
}

func TestSaveSettingsWritesBothSlots(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv)

	settings := models.DefaultSettings()
	settings.DailyProteinGoal = 140
	settings.WorkoutDays = []int{1, 3, 5}
	if err := s.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	raw, _ := kv.Get(SettingsKey)
	slot, err := models.DecodeSettings(raw)
	if err != nil {
		t.Fatalf("DecodeSettings failed: %v", err)
	}
	data, _ := kv.Get(DataKey)
	doc, _, err := models.DecodeDocument(data)
	if err != nil {
		t.Fatalf("DecodeDocument failed: %v", err)
	}
	if slot.DailyProteinGoal != 140 || doc.Settings.DailyProteinGoal != 140 {
		t.Errorf("protein slot/doc = %v/%v, want 140/140", slot.DailyProteinGoal, doc.Settings.DailyProteinGoal)
	}
	if len(doc.Settings.WorkoutDays) != 3 {
		t.Errorf("WorkoutDays = %v, want 3 days", doc.Settings.WorkoutDays)
	}

	version, _ := kv.Get(VersionKey)
	if string(version) != SchemaVersion {
		t.Errorf("version = %s, want %s", version, SchemaVersion)
	}
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	s := NewMemoryStore()

	settings := models.DefaultSettings()
	settings.DailyFatGoal = -5
	if err := s.SaveSettings(settings); !errors.Is(err, models.ErrInvalidSettings) {
		t.Errorf("SaveSettings = %v, want ErrInvalidSettings", err)
	}
	has, _ := s.HasData()
	if has {
		t.Error("invalid settings should not be written")
	}
}

func TestSetCollectionLeavesOthersUntouched(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SetGoals([]models.Goal{{ID: "g1", Title: "run a marathon", Category: models.GoalHealth}}); err != nil {
		t.Fatalf("SetGoals failed: %v", err)
	}
	if err := s.SetBooks([]models.Book{{ID: "b1", Title: "Dune", Status: models.BookReading}}); err != nil {
		t.Fatalf("SetBooks failed: %v", err)
	}

	goals, err := s.Goals()
	if err != nil || len(goals) != 1 || goals[0].Title != "run a marathon" {
		t.Errorf("Goals = %+v, %v", goals, err)
	}
	books, err := s.Books()
	if err != nil || len(books) != 1 {
		t.Errorf("Books = %+v, %v", books, err)
	}

	if err := s.SetGoals(nil); err != nil {
		t.Fatalf("SetGoals(nil) failed: %v", err)
	}
	goals, _ = s.Goals()
	if goals == nil || len(goals) != 0 {
		t.Errorf("Goals after clear = %v, want empty", goals)
	}
}

func TestImportReplacesDocumentAndSettings(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv)
	_ = s.SetTasks([]models.Task{{ID: "old", Title: "old task"}})

	input := `{"tasks":[{"id":"t1","title":"new","completed":false,"createdAt":"2025-01-01T00:00:00Z"}],
		"settings":{"theme":"dark","dailyCalorieGoal":2000,"workoutDays":[2,4]}}`
	skipped, err := s.Import([]byte(input))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}

	doc, _ := s.Load()
	if len(doc.Tasks) != 1 || doc.Tasks[0].ID != "t1" {
		t.Errorf("Tasks = %+v, want only t1", doc.Tasks)
	}
	if doc.Settings.Theme != models.ThemeDark || doc.Settings.DailyCalorieGoal != 2000 {
		t.Errorf("Settings = %+v", doc.Settings)
	}
	if doc.Settings.DailyProteinGoal != models.DefaultProteinGoal {
		t.Errorf("DailyProteinGoal = %v, want default", doc.Settings.DailyProteinGoal)
	}

	raw, _ := kv.Get(SettingsKey)
	slot, _ := models.DecodeSettings(raw)
	if slot.Theme != models.ThemeDark || slot.DailyCalorieGoal != 2000 {
		t.Errorf("settings slot = %+v, want imported settings", slot)
	}
}

func TestImportRejectsUnparsableWithoutMutation(t *testing.T) {
	s := NewMemoryStore()
	_ = s.SetTasks([]models.Task{{ID: "keep", Title: "keep me"}})
	before, _ := s.Export()

	for _, input := range []string{"", "not json", "[1,2]", "null", `{"tasks":[`} {
		if _, err := s.Import([]byte(input)); err == nil {
			t.Errorf("Import(%q) = nil, want error", input)
		}
	}

	after, _ := s.Export()
	if !bytes.Equal(before, after) {
		t.Error("failed import mutated the store")
	}
}

func TestImportReportsMalformedKeys(t *testing.T) {
	s := NewMemoryStore()

	input := `{"calorieEntries":5,"goals":[{"id":"g1","title":"run"}],"settings":"oops"}`
	skipped, err := s.Import([]byte(input))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !slices.Equal(skipped, []string{"calorieEntries", "settings"}) {
		t.Errorf("skipped = %v, want [calorieEntries settings]", skipped)
	}

	doc, _ := s.Load()
	if len(doc.Goals) != 1 || len(doc.CalorieEntries) != 0 {
		t.Errorf("goals = %d, calorieEntries = %d; want 1, 0", len(doc.Goals), len(doc.CalorieEntries))
	}
	if doc.Settings.DailyCalorieGoal != models.DefaultCalorieGoal {
		t.Errorf("DailyCalorieGoal = %v, want default", doc.Settings.DailyCalorieGoal)
	}
}

// brokenKV accepts single writes but fails every batched write.
type brokenKV struct {
	*MemoryKV
}

func (b brokenKV) SetAll(map[string][]byte) error {
	return errors.New("disk full")
}

func TestFailedSaveLeavesSlotsConsistent(t *testing.T) {
	mem := NewMemoryKV()
	good := NewStore(mem)
	settings := models.DefaultSettings()
	settings.DailyCalorieGoal = 2100
	if err := good.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	dataBefore, _ := mem.Get(DataKey)
	settingsBefore, _ := mem.Get(SettingsKey)

	s := NewStore(brokenKV{mem})
	settings.DailyCalorieGoal = 1500
	if err := s.SaveSettings(settings); err == nil {
		t.Fatal("SaveSettings should fail when the batch write fails")
	}

	dataAfter, _ := mem.Get(DataKey)
	settingsAfter, _ := mem.Get(SettingsKey)
	if !bytes.Equal(dataBefore, dataAfter) || !bytes.Equal(settingsBefore, settingsAfter) {
		t.Error("failed save changed a slot")
	}
	doc, _ := good.Load()
	if doc.Settings.DailyCalorieGoal != 2100 {
		t.Errorf("DailyCalorieGoal = %v, want 2100", doc.Settings.DailyCalorieGoal)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	fat := 19.5
	_ = s.AddCalorieEntry(models.NewCalorieEntry(models.MealDinner, "salmon", 600).WithDate("2025-01-06").WithMacros(45, 10, 30))
	_ = s.AddWorkoutEntry(models.NewWorkoutEntry("swim", 40).WithDate("2025-01-06").WithNotes("laps"))
	_ = s.AddBodyMeasurement(models.NewBodyMeasurement(78.2).WithDate("2025-01-06").WithBodyFat(fat))
	_ = s.SetInvestments([]models.Investment{{ID: "i1", Asset: "VTI", Type: models.InvestmentFund, Quantity: 3, BuyPrice: 200, CurrentPrice: 250}})

	first, err := s.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	other := NewMemoryStore()
	if _, err := other.Import(first); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	second, err := other.Export()
	if err != nil {
		t.Fatalf("second Export failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("export -> import -> export changed the document:\n%s\n---\n%s", first, second)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(first, &shape); err != nil {
		t.Fatalf("export is not a JSON object: %v", err)
	}
	keys := append([]string{"settings"}, models.CollectionNames...)
	for _, key := range keys {
		if _, ok := shape[key]; !ok {
			t.Errorf("export missing key %s", key)
		}
	}
}

func TestClear(t *testing.T) {
	s := NewMemoryStore()
	_ = s.SetGoals([]models.Goal{{ID: "g"}})

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	doc, _ := s.Load()
	if !doc.IsEmpty() {
		t.Error("expected empty document after Clear")
	}
	has, _ := s.HasData()
	if has {
		t.Error("HasData = true after Clear")
	}
}
