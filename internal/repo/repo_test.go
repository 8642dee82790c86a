package repo

import (
	"testing"

	"runmap/internal/activity"
	"runmap/internal/location"
	"runmap/internal/view"
)

func testRepository() *Repository {
	activities := []activity.Activity{
		{
			RunID:           1,
			Type:            "Run",
			Subtype:         "generic",
			Distance:        5000,
			StartDateLocal:  "2023-06-01 08:00:00",
			LocationCountry: "西湖区, 杭州市, 浙江省, 中国",
		},
		{
			RunID:           2,
			Type:            "Run",
			Subtype:         "generic",
			Distance:        8000,
			StartDateLocal:  "2024-01-10 09:00:00",
			LocationCountry: "西湖区, 杭州市, 浙江省, 中国",
		},
		{
			RunID:           3,
			Type:            "Run",
			Subtype:         "generic",
			Distance:        10000,
			StartDateLocal:  "2024-02-20 20:00:00",
			LocationCountry: "朝阳区, 北京市, 中国",
		},
		{
			RunID:          4,
			Type:           "Run",
			Subtype:        "generic",
			Distance:       6000,
			StartDateLocal: "2022-12-31 23:30:00",
		},
	}
	resolver := location.NewResolver(nil)
	titler := &view.Titler{Rich: true, Resolver: resolver}
	return New(activities, resolver, titler)
}

func TestSnapshotIdentity(t *testing.T) {
	r := testRepository()
	first := r.Snapshot()
	second := r.Snapshot()
	if first != second {
		t.Error("Snapshot should return the same pointer on every call")
	}
}

func TestSnapshotYears(t *testing.T) {
	s := testRepository().Snapshot()

	want := []string{"2024", "2023", "2022"}
	if len(s.Years) != len(want) {
		t.Fatalf("Years = %v, want %v", s.Years, want)
	}
	for i, y := range want {
		if s.Years[i] != y {
			t.Errorf("Years[%d] = %q, want %q", i, s.Years[i], y)
		}
	}
	if s.LatestYear != "2024" {
		t.Errorf("LatestYear = %q, want 2024", s.LatestYear)
	}
}

func TestSnapshotCities(t *testing.T) {
	s := testRepository().Snapshot()

	if got := s.Cities["杭州市"]; got != 13000 {
		t.Errorf("杭州市 distance = %v, want 13000", got)
	}
	if got := s.Cities["朝阳区"]; got != 10000 {
		t.Errorf("朝阳区 distance = %v, want 10000", got)
	}
	if _, ok := s.Cities[""]; ok {
		t.Error("unresolved runs should not appear in the city totals")
	}
}

func TestSnapshotPlaces(t *testing.T) {
	s := testRepository().Snapshot()

	if len(s.Provinces) != 2 || s.Provinces[0] != "浙江省" || s.Provinces[1] != "北京市" {
		t.Errorf("Provinces = %v, want [浙江省 北京市]", s.Provinces)
	}
	if len(s.Countries) != 1 || s.Countries[0] != "中国" {
		t.Errorf("Countries = %v, want [中国]", s.Countries)
	}
}

func TestSnapshotTitleCounts(t *testing.T) {
	s := testRepository().Snapshot()

	if got := s.TitleCounts[view.MorningRunTitle]; got != 2 {
		t.Errorf("%q count = %d, want 2", view.MorningRunTitle, got)
	}
	if got := s.TitleCounts[view.EveningRunTitle]; got != 1 {
		t.Errorf("%q count = %d, want 1", view.EveningRunTitle, got)
	}
	if got := s.TitleCounts[view.NightRunTitle]; got != 1 {
		t.Errorf("%q count = %d, want 1", view.NightRunTitle, got)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	resolver := location.NewResolver(nil)
	titler := &view.Titler{Rich: true, Resolver: resolver}
	s := New(nil, resolver, titler).Snapshot()

	if len(s.Years) != 0 || s.LatestYear != "" {
		t.Errorf("empty repository snapshot = %+v, want no years", s)
	}
	if len(s.Cities) != 0 || len(s.TitleCounts) != 0 {
		t.Error("empty repository should produce empty aggregates")
	}
}
