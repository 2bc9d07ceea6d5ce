package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/vatsala281203/food-logger/models"
	"github.com/vatsala281203/food-logger/storage"
)

// noon on 2025-02-20 UTC, the "today" used throughout these tests
var testNow = time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

func seededSummary(t *testing.T, entries ...models.MealLogEntry) *SummaryService {
	t.Helper()
	store := storage.NewMemoryStore()
	for _, e := range entries {
		if err := store.Append(e); err != nil {
			t.Fatalf("seeding store failed: %v", err)
		}
	}
	return NewSummaryService(store, fixedClock(testNow), time.UTC)
}

func TestTodaySingleEntryScenario(t *testing.T) {
	svc := seededSummary(t, models.MealLogEntry{
		Label:    "Apple",
		Time:     "2025-02-20T09:00:00Z",
		ServingG: 100,
		Nutrition: &models.Nutrition{
			Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3,
		},
	})

	got, err := svc.Today()
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if got.Empty {
		t.Fatal("expected a non-empty summary")
	}
	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got.Rows))
	}
	row := got.Rows[0]
	if row.Label != "Apple" || row.ServingG != 100 || row.Time != "09:00" || row.Calories != "95 kcal" {
		t.Errorf("unexpected row: %+v", row)
	}
	if got.TotalsLine != "95 kcal • Protein: 0.5 g" {
		t.Errorf("unexpected totals line: %q", got.TotalsLine)
	}
	if got.Totals.Carbs != 25 || got.Totals.Fat != 0.3 {
		t.Errorf("unexpected totals: %+v", got.Totals)
	}
}

func TestYesterdayEntryYieldsEmptyState(t *testing.T) {
	svc := seededSummary(t, models.MealLogEntry{
		Label:     "Pizza",
		Time:      "2025-02-19T20:00:00Z",
		ServingG:  200,
		Nutrition: &models.Nutrition{Calories: 500},
	})

	got, err := svc.Today()
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if !got.Empty {
		t.Error("expected the explicit empty state")
	}
	if len(got.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(got.Rows))
	}
	if got.Totals != nil || got.TotalsLine != "" {
		t.Errorf("empty day must not carry zeroed totals, got %+v %q", got.Totals, got.TotalsLine)
	}
}

func TestMixedNutritionNewestFirst(t *testing.T) {
	svc := seededSummary(t,
		models.MealLogEntry{
			Label: "Soup", Time: "2025-02-20T08:00:00Z", ServingG: 250,
			Nutrition: &models.Nutrition{Calories: 50, Protein: 2},
		},
		models.MealLogEntry{
			Label: "Mystery dish", Time: "2025-02-20T09:30:00Z", ServingG: 150,
		},
	)

	got, err := svc.Today()
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	// Newest entry first, with the placeholder calorie display.
	if got.Rows[0].Label != "Mystery dish" || got.Rows[0].Calories != "—" {
		t.Errorf("unexpected first row: %+v", got.Rows[0])
	}
	if got.Rows[1].Label != "Soup" || got.Rows[1].Calories != "50 kcal" {
		t.Errorf("unexpected second row: %+v", got.Rows[1])
	}
	// The nutrition-less entry contributes zero to every total.
	if got.Totals.Calories != 50 || got.Totals.Protein != 2 || got.Totals.Carbs != 0 || got.Totals.Fat != 0 {
		t.Errorf("unexpected totals: %+v", got.Totals)
	}
}

func TestOtherDaysNeverContribute(t *testing.T) {
	svc := seededSummary(t,
		models.MealLogEntry{Label: "yesterday", Time: "2025-02-19T23:59:59Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 100}},
		models.MealLogEntry{Label: "today", Time: "2025-02-20T00:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 40}},
		models.MealLogEntry{Label: "tomorrow", Time: "2025-02-21T00:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 900}},
	)

	got, err := svc.Today()
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0].Label != "today" {
		t.Fatalf("expected only the midnight entry of today, got %+v", got.Rows)
	}
	if got.Totals.Calories != 40 {
		t.Errorf("expected 40 kcal from today only, got %v", got.Totals.Calories)
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	svc := seededSummary(t,
		models.MealLogEntry{Label: "Apple", Time: "2025-02-20T09:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3}},
		models.MealLogEntry{Label: "Ramen", Time: "2025-02-20T12:00:00Z", ServingG: 350},
	)

	first, err := svc.Today()
	if err != nil {
		t.Fatalf("first today failed: %v", err)
	}
	second, err := svc.Today()
	if err != nil {
		t.Fatalf("second today failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two renders without writes differ:\n%+v\n%+v", first, second)
	}
}

func TestStampAndBucketShareClock(t *testing.T) {
	// One second before midnight: an entry logged "now" must land in the
	// same bucket Today() computes, regardless of the server's zone.
	nz := time.FixedZone("NZDT", 13*3600)
	almostMidnight := time.Date(2025, 2, 21, 12, 59, 59, 0, nz) // 2025-02-20T23:59:59Z
	store := storage.NewMemoryStore()
	clock := fixedClock(almostMidnight)

	logSvc := NewLogService(store, clock)
	sumSvc := NewSummaryService(store, clock, time.UTC)

	if _, err := logSvc.Log("midnight snack", 100, nil); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	got, err := sumSvc.Today()
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	if got.Empty || len(got.Rows) != 1 {
		t.Fatalf("entry stamped at 23:59:59Z missing from today's view: %+v", got)
	}
}

func TestByDate(t *testing.T) {
	svc := seededSummary(t,
		models.MealLogEntry{Label: "old pizza", Time: "2025-02-18T19:00:00Z", ServingG: 200,
			Nutrition: &models.Nutrition{Calories: 550, Protein: 20}},
	)

	got, err := svc.ByDate("2025-02-18")
	if err != nil {
		t.Fatalf("byDate failed: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0].Label != "old pizza" {
		t.Fatalf("unexpected rows: %+v", got.Rows)
	}

	if _, err := svc.ByDate("18-02-2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestHistoryClampsWindow(t *testing.T) {
	svc := seededSummary(t,
		models.MealLogEntry{Label: "a", Time: "2025-02-19T09:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 120}},
	)

	// An absurd window must not size any allocation; it clamps to the
	// maximum and the call returns normally.
	got, err := svc.History(1 << 40)
	if err != nil {
		t.Fatalf("history with huge window failed: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2025-02-19" {
		t.Fatalf("unexpected history: %+v", got)
	}

	capped, err := svc.History(MaxHistoryDays)
	if err != nil {
		t.Fatalf("history at the cap failed: %v", err)
	}
	if !reflect.DeepEqual(got, capped) {
		t.Errorf("huge window and capped window differ:\n%+v\n%+v", got, capped)
	}
}

func TestHistoryRollsUpPerDayNewestFirst(t *testing.T) {
	svc := seededSummary(t,
		models.MealLogEntry{Label: "a", Time: "2025-02-18T09:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 100}},
		models.MealLogEntry{Label: "b", Time: "2025-02-18T12:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 200}},
		models.MealLogEntry{Label: "c", Time: "2025-02-20T08:00:00Z", ServingG: 100},
		// outside the 7-day window
		models.MealLogEntry{Label: "ancient", Time: "2025-01-01T08:00:00Z", ServingG: 100,
			Nutrition: &models.Nutrition{Calories: 999}},
	)

	got, err := svc.History(7)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 non-empty days, got %d: %+v", len(got), got)
	}
	if got[0].Date != "2025-02-20" || got[0].Entries != 1 || got[0].Totals.Calories != 0 {
		t.Errorf("unexpected newest day: %+v", got[0])
	}
	if got[1].Date != "2025-02-18" || got[1].Entries != 2 || got[1].Totals.Calories != 300 {
		t.Errorf("unexpected older day: %+v", got[1])
	}
}
