package services

import (
	"reflect"
	"testing"
	"time"
)

func testDateRules(t *testing.T) *DateRules {
	t.Helper()
	rules, err := NewDateRules(DateRuleConfig{
		NearStart:   7,
		NearEnd:     21,
		MidweekDay:  time.Wednesday,
		WeekendDay:  time.Saturday,
		MonthsAhead: 3,
		Holidays:    []string{"2026-05-05", "2026-06-06"},
		PeakDates:   []string{"2026-07-29", "2026-08-01"},
	})
	if err != nil {
		t.Fatalf("NewDateRules: %v", err)
	}
	return rules
}

// 2026-04-01 is a Wednesday.
var fixedToday = time.Date(2026, time.April, 1, 10, 30, 0, 0, time.UTC)

func contains(dates []string, want string) bool {
	for _, d := range dates {
		if d == want {
			return true
		}
	}
	return false
}

func TestTargetDatesDeterministic(t *testing.T) {
	rules := testDateRules(t)

	first := rules.TargetDates(fixedToday)
	second := rules.TargetDates(fixedToday)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs for the same day differ:\n%v\n%v", first, second)
	}
}

func TestTargetDatesSortedUniqueFuture(t *testing.T) {
	rules := testDateRules(t)
	dates := rules.TargetDates(fixedToday)

	if len(dates) == 0 {
		t.Fatal("expected a non-empty plan")
	}
	for i, d := range dates {
		if d < "2026-04-01" {
			t.Errorf("past date %q in plan", d)
		}
		if i > 0 && dates[i-1] >= d {
			t.Errorf("plan not strictly ascending: %q before %q", dates[i-1], d)
		}
	}
}

func TestTargetDatesNearTermCadence(t *testing.T) {
	rules := testDateRules(t)
	dates := rules.TargetDates(fixedToday)

	// Wednesdays and Saturdays at offsets 7..21 from 2026-04-01.
	for _, want := range []string{"2026-04-08", "2026-04-11", "2026-04-15", "2026-04-18", "2026-04-22"} {
		if !contains(dates, want) {
			t.Errorf("near-term date %q missing from plan", want)
		}
	}

	if contains(dates, "2026-04-07") {
		t.Error("2026-04-07 is a Tuesday and should not be planned")
	}
	if contains(dates, "2026-04-04") {
		t.Error("2026-04-04 is before the near-term window and should not be planned")
	}
}

func TestTargetDatesMonthlyPattern(t *testing.T) {
	rules := testDateRules(t)
	dates := rules.TargetDates(fixedToday)

	tests := []struct {
		date string
		desc string
	}{
		{"2026-05-13", "2nd Wednesday of May"},
		{"2026-05-16", "3rd Saturday of May"},
		{"2026-06-10", "2nd Wednesday of June"},
		{"2026-06-20", "3rd Saturday of June"},
		{"2026-07-08", "2nd Wednesday of July"},
		{"2026-07-18", "3rd Saturday of July"},
	}
	for _, tt := range tests {
		if !contains(dates, tt.date) {
			t.Errorf("%s (%s) missing from plan", tt.date, tt.desc)
		}
	}
}

func TestTargetDatesHolidayWindow(t *testing.T) {
	rules := testDateRules(t)
	dates := rules.TargetDates(fixedToday)

	for _, want := range []string{"2026-05-04", "2026-05-05", "2026-05-06"} {
		if !contains(dates, want) {
			t.Errorf("holiday-window date %q missing from plan", want)
		}
	}
}

func TestTargetDatesPastHolidayExcluded(t *testing.T) {
	rules := testDateRules(t)
	later := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	dates := rules.TargetDates(later)
	for _, gone := range []string{"2026-05-04", "2026-05-05", "2026-05-06"} {
		if contains(dates, gone) {
			t.Errorf("past holiday window date %q should be gone by June", gone)
		}
	}
	// The June holiday window is still ahead.
	for _, want := range []string{"2026-06-05", "2026-06-06", "2026-06-07"} {
		if !contains(dates, want) {
			t.Errorf("upcoming holiday window date %q missing", want)
		}
	}
}

func TestTargetDatesSeasonalPeaks(t *testing.T) {
	rules := testDateRules(t)
	dates := rules.TargetDates(fixedToday)

	for _, want := range []string{"2026-07-29", "2026-08-01"} {
		if !contains(dates, want) {
			t.Errorf("seasonal peak %q missing from plan", want)
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	// May 2026 starts on a Friday.
	may := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	d, ok := nthWeekdayOfMonth(may, time.Wednesday, 2)
	if !ok || d.Day() != 13 {
		t.Errorf("2nd Wednesday of May 2026: got %v (ok=%v), want day 13", d, ok)
	}
	d, ok = nthWeekdayOfMonth(may, time.Saturday, 3)
	if !ok || d.Day() != 16 {
		t.Errorf("3rd Saturday of May 2026: got %v (ok=%v), want day 16", d, ok)
	}

	// February 2026 has only four Saturdays.
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := nthWeekdayOfMonth(feb, time.Saturday, 5); ok {
		t.Error("February 2026 should have no 5th Saturday")
	}
}
