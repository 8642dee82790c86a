// Package repo holds the loaded activity collection and its derived
// aggregates. The collection is immutable once loaded; the aggregate
// snapshot is computed at most once per process and shared by reference.
package repo

import (
	"sort"
	"sync"

	"runmap/internal/activity"
	"runmap/internal/location"
	"runmap/internal/view"
)

// Snapshot is the memoized set of aggregates derived from the full
// activity collection.
type Snapshot struct {
	Years       []string           // distinct year keys, newest first
	Countries   []string           // first-seen order
	Provinces   []string           // first-seen order
	Cities      map[string]float64 // city -> total meters
	TitleCounts map[string]int     // synthesized title -> occurrences
	LatestYear  string             // default view, "" when no activities
}

// Repository is the single source of truth for the raw activity list and
// its derived aggregates.
type Repository struct {
	activities []activity.Activity
	resolver   *location.Resolver
	titler     *view.Titler

	once     sync.Once
	snapshot *Snapshot
}

// New creates a Repository over the loaded activities. The resolver's
// per-id cache is shared with the aggregation pass, so locations are only
// resolved once even though the titler consults them too.
func New(activities []activity.Activity, resolver *location.Resolver, titler *view.Titler) *Repository {
	return &Repository{
		activities: activities,
		resolver:   resolver,
		titler:     titler,
	}
}

// Activities returns the full collection. Callers must not modify it.
func (r *Repository) Activities() []activity.Activity {
	return r.activities
}

// Resolver returns the shared location resolver.
func (r *Repository) Resolver() *location.Resolver {
	return r.resolver
}

// Titler returns the shared title synthesizer.
func (r *Repository) Titler() *view.Titler {
	return r.titler
}

// Snapshot returns the derived aggregates, computing them on first call.
// Repeated calls return the identical pointer.
func (r *Repository) Snapshot() *Snapshot {
	r.once.Do(func() {
		r.snapshot = r.build()
	})
	return r.snapshot
}

func (r *Repository) build() *Snapshot {
	s := &Snapshot{
		Cities:      make(map[string]float64),
		TitleCounts: make(map[string]int),
	}

	seenYears := make(map[string]bool)
	seenProvinces := make(map[string]bool)
	seenCountries := make(map[string]bool)

	for i := range r.activities {
		a := &r.activities[i]
		loc := r.resolver.Resolve(a)

		if title := r.titler.TitleFor(a); title != "" {
			s.TitleCounts[title]++
		}

		// Single-character city matches are noise from the extraction
		// heuristics and are dropped.
		if len([]rune(loc.City)) > 1 {
			s.Cities[loc.City] += a.Distance
		}
		if loc.Province != "" && !seenProvinces[loc.Province] {
			seenProvinces[loc.Province] = true
			s.Provinces = append(s.Provinces, loc.Province)
		}
		if loc.Country != "" && !seenCountries[loc.Country] {
			seenCountries[loc.Country] = true
			s.Countries = append(s.Countries, loc.Country)
		}

		year := a.Year()
		if year != "" && !seenYears[year] {
			seenYears[year] = true
			s.Years = append(s.Years, year)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(s.Years)))
	if len(s.Years) > 0 {
		s.LatestYear = s.Years[0]
	}
	return s
}
