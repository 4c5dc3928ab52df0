package services

import (
	"fmt"
	"sort"
	"time"
)

const isoDate = "2006-01-02"

// DateRuleConfig carries the calendar knobs for target-date planning.
type DateRuleConfig struct {
	NearStart   int
	NearEnd     int
	MidweekDay  time.Weekday
	WeekendDay  time.Weekday
	MonthsAhead int
	Holidays    []string
	PeakDates   []string
}

// DateRules computes which future stay dates are worth monitoring. The rules
// are additive; the final list is deduplicated, future-only and sorted, so
// re-running on the same day always yields the same plan.
type DateRules struct {
	cfg      DateRuleConfig
	holidays []time.Time
	peaks    []time.Time
}

// NewDateRules parses the configured holiday and peak dates up front so a
// typo fails at startup rather than mid-run.
func NewDateRules(cfg DateRuleConfig) (*DateRules, error) {
	r := &DateRules{cfg: cfg}

	for _, d := range cfg.Holidays {
		t, err := time.Parse(isoDate, d)
		if err != nil {
			return nil, fmt.Errorf("dates: bad holiday %q: %w", d, err)
		}
		r.holidays = append(r.holidays, t)
	}
	for _, d := range cfg.PeakDates {
		t, err := time.Parse(isoDate, d)
		if err != nil {
			return nil, fmt.Errorf("dates: bad peak date %q: %w", d, err)
		}
		r.peaks = append(r.peaks, t)
	}
	return r, nil
}

// TargetDates returns the ascending, duplicate-free list of ISO dates to
// investigate, given "today". Every returned date is >= today.
func (r *DateRules) TargetDates(today time.Time) []string {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	set := make(map[string]struct{})
	add := func(t time.Time) { set[t.Format(isoDate)] = struct{}{} }

	// Next week and the week after: every midweek and weekend day in the window.
	for i := r.cfg.NearStart; i <= r.cfg.NearEnd; i++ {
		d := day.AddDate(0, 0, i)
		if wd := d.Weekday(); wd == r.cfg.MidweekDay || wd == r.cfg.WeekendDay {
			add(d)
		}
	}

	// Following months: 2nd midweek day and 3rd weekend day of each month.
	for i := 1; i <= r.cfg.MonthsAhead; i++ {
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		if d, ok := nthWeekdayOfMonth(first, r.cfg.MidweekDay, 2); ok {
			add(d)
		}
		if d, ok := nthWeekdayOfMonth(first, r.cfg.WeekendDay, 3); ok {
			add(d)
		}
	}

	// Long-weekend windows: holiday plus the day before and after.
	for _, h := range r.holidays {
		if h.Before(day) {
			continue
		}
		add(h.AddDate(0, 0, -1))
		add(h)
		add(h.AddDate(0, 0, 1))
	}

	for _, p := range r.peaks {
		if !p.Before(day) {
			add(p)
		}
	}

	todayStr := day.Format(isoDate)
	out := make([]string, 0, len(set))
	for d := range set {
		if d >= todayStr {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// nthWeekdayOfMonth returns the n-th occurrence of wd in the month that
// starts at first. ok is false when the month has fewer than n occurrences.
func nthWeekdayOfMonth(first time.Time, wd time.Weekday, n int) (time.Time, bool) {
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	dayOfMonth := 1 + offset + (n-1)*7

	lastDay := first.AddDate(0, 1, -1).Day()
	if dayOfMonth > lastDay {
		return time.Time{}, false
	}
	return first.AddDate(0, 0, dayOfMonth-1), true
}
