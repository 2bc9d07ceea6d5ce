package services

import (
	"fmt"
	"math"
	"time"

	"github.com/vatsala281203/food-logger/models"
	"github.com/vatsala281203/food-logger/storage"
)

const dateLayout = "2006-01-02"

// MaxHistoryDays caps the history window. The value also bounds the
// allocation backing the response, so caller input can never size it.
const MaxHistoryDays = 365

// LogRow is one display row of the daily log, newest first.
type LogRow struct {
	Label    string  `json:"label"`
	Time     string  `json:"time"` // time of day in the display location
	ServingG float64 `json:"serving_g"`
	Calories string  `json:"calories"` // "95 kcal", or "—" without nutrition
}

// DayTotals accumulates the nutrition of every entry in one day.
// Entries without nutrition contribute zero to every field.
type DayTotals struct {
	Calories float64 `json:"calories_kcal"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

// Line renders the totals the way the log footer shows them.
func (t DayTotals) Line() string {
	return fmt.Sprintf("%d kcal • Protein: %.1f g", int(math.Round(t.Calories)), t.Protein)
}

// DailySummary is one day's view of the log. Empty days carry no totals
// at all rather than zeroed ones.
type DailySummary struct {
	Date       string     `json:"date"`
	Rows       []LogRow   `json:"rows"`
	Totals     *DayTotals `json:"totals,omitempty"`
	TotalsLine string     `json:"totals_line,omitempty"`
	Empty      bool       `json:"empty"`
}

// DayHistory is one day's roll-up for the history view.
type DayHistory struct {
	Date    string    `json:"date"`
	Entries int       `json:"entries"`
	Totals  DayTotals `json:"totals"`
}

// SummaryService derives day views from the full log history. Every call
// recomputes from the store, nothing is cached. Day bucketing happens in
// UTC with the same clock LogService stamps with, so an entry can never
// land on different sides of midnight between stamping and rendering.
type SummaryService struct {
	store storage.LogStore
	now   func() time.Time
	loc   *time.Location // display formatting only, never bucketing
}

func NewSummaryService(store storage.LogStore, now func() time.Time, loc *time.Location) *SummaryService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &SummaryService{store: store, now: now, loc: loc}
}

// Today returns the summary for the current UTC calendar date.
func (s *SummaryService) Today() (*DailySummary, error) {
	return s.forDate(s.now().UTC().Format(dateLayout))
}

// ByDate returns the summary for an arbitrary "2006-01-02" date.
func (s *SummaryService) ByDate(date string) (*DailySummary, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", date, err)
	}
	return s.forDate(date)
}

func (s *SummaryService) forDate(date string) (*DailySummary, error) {
	all, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	var todays []models.MealLogEntry
	for _, e := range all {
		if e.DatePrefix() == date {
			todays = append(todays, e)
		}
	}

	if len(todays) == 0 {
		return &DailySummary{Date: date, Rows: []LogRow{}, Empty: true}, nil
	}

	// Storage order is oldest-first; display is strictly newest-first.
	rows := make([]LogRow, 0, len(todays))
	var totals DayTotals
	for i := len(todays) - 1; i >= 0; i-- {
		e := todays[i]
		rows = append(rows, s.row(e))
		if e.Nutrition != nil {
			totals.Calories += e.Nutrition.Calories
			totals.Protein += e.Nutrition.Protein
			totals.Carbs += e.Nutrition.Carbs
			totals.Fat += e.Nutrition.Fat
		}
	}

	return &DailySummary{
		Date:       date,
		Rows:       rows,
		Totals:     &totals,
		TotalsLine: totals.Line(),
	}, nil
}

func (s *SummaryService) row(e models.MealLogEntry) LogRow {
	calories := "—"
	if e.Nutrition != nil {
		calories = fmt.Sprintf("%d kcal", int(math.Round(e.Nutrition.Calories)))
	}
	return LogRow{
		Label:    e.Label,
		Time:     e.ParsedTime().In(s.loc).Format("15:04"),
		ServingG: e.ServingG,
		Calories: calories,
	}
}

// History rolls up per-day totals for the last `days` UTC days ending
// today, newest day first. Days with no entries are skipped; the window
// is clamped to [1, MaxHistoryDays].
func (s *SummaryService) History(days int) ([]DayHistory, error) {
	if days <= 0 {
		days = 7
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}
	all, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count  int
		totals DayTotals
	}
	byDate := make(map[string]*bucket)
	for _, e := range all {
		b := byDate[e.DatePrefix()]
		if b == nil {
			b = &bucket{}
			byDate[e.DatePrefix()] = b
		}
		b.count++
		if e.Nutrition != nil {
			b.totals.Calories += e.Nutrition.Calories
			b.totals.Protein += e.Nutrition.Protein
			b.totals.Carbs += e.Nutrition.Carbs
			b.totals.Fat += e.Nutrition.Fat
		}
	}

	out := make([]DayHistory, 0, days)
	day := s.now().UTC()
	for i := 0; i < days; i++ {
		date := day.AddDate(0, 0, -i).Format(dateLayout)
		if b, ok := byDate[date]; ok {
			out = append(out, DayHistory{Date: date, Entries: b.count, Totals: b.totals})
		}
	}
	return out, nil
}
