package view

import (
	"sort"
	"strings"

	"runmap/internal/activity"
)

// FilterAll is the filter value that selects every run.
const FilterAll = "Total"

// FilterFunc reports whether a run matches the given filter value.
type FilterFunc func(a *activity.Activity, value string) bool

// CompareFunc orders two runs; negative means a sorts before b, zero means
// they compare equal.
type CompareFunc func(a, b *activity.Activity) int

// FilterYear reports whether the run's local start date falls in the given
// year. Missing timestamps never match.
func FilterYear(a *activity.Activity, year string) bool {
	if a == nil || a.StartDateLocal == "" {
		return false
	}
	prefix := a.StartDateLocal
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return prefix == year
}

// FilterCity reports whether the run's location description contains the
// city as a substring. Missing locations never match.
func FilterCity(a *activity.Activity, city string) bool {
	if a == nil || a.LocationCountry == "" {
		return false
	}
	return strings.Contains(a.LocationCountry, city)
}

// FilterTitle reports whether the run's synthesized title equals the given
// title.
func (t *Titler) FilterTitle(a *activity.Activity, title string) bool {
	if a == nil {
		return false
	}
	return t.TitleFor(a) == title
}

// CompareDate orders runs newest first. Runs with identical timestamps
// compare equal, which keeps stable sorts stable; unparseable timestamps
// sort as the zero time.
func CompareDate(a, b *activity.Activity) int {
	ta := a.LocalTime()
	tb := b.LocalTime()
	switch {
	case ta.Equal(tb):
		return 0
	case ta.Before(tb):
		return 1
	default:
		return -1
	}
}

// CompareDateReverse orders runs oldest first.
func CompareDateReverse(a, b *activity.Activity) int {
	return CompareDate(b, a)
}

// FilterAndSort returns the runs matching the filter value, ordered by the
// comparator. The FilterAll value skips filtering. The input slice is
// never modified.
func FilterAndSort(runs []activity.Activity, value string, keep FilterFunc, cmp CompareFunc) []activity.Activity {
	var s []activity.Activity
	if value == FilterAll {
		s = make([]activity.Activity, len(runs))
		copy(s, runs)
	} else {
		for i := range runs {
			if keep(&runs[i], value) {
				s = append(s, runs[i])
			}
		}
	}
	sort.SliceStable(s, func(i, j int) bool {
		return cmp(&s[i], &s[j]) < 0
	})
	return s
}

// Summary aggregates a run list for the stats screens.
type Summary struct {
	Count      int
	Distance   float64 // meters
	MovingTime int     // seconds
	MaxStreak  int
}

// AverageSpeed returns the distance-weighted average speed in m/s, or 0
// for an empty or zero-time summary.
func (s Summary) AverageSpeed() float64 {
	if s.MovingTime <= 0 {
		return 0
	}
	return s.Distance / float64(s.MovingTime)
}

// Summarize totals up a run list.
func Summarize(runs []activity.Activity) Summary {
	var s Summary
	for i := range runs {
		s.Count++
		s.Distance += runs[i].Distance
		s.MovingTime += runs[i].MovingTime
		if runs[i].Streak > s.MaxStreak {
			s.MaxStreak = runs[i].Streak
		}
	}
	return s
}
