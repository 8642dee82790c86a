package activity

import (
	"testing"
	"time"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		expected string
	}{
		{"full timestamp", "2024-03-02 07:15:00", "2024"},
		{"bare year", "2024", "2024"},
		{"too short", "20", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activity{StartDateLocal: tt.local}
			if got := a.Year(); got != tt.expected {
				t.Errorf("Year() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLocalHour(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		expected int
	}{
		{"morning", "2024-03-02 07:15:00", 7},
		{"midnight", "2024-03-02 00:15:00", 0},
		{"late night", "2024-03-02 23:59:59", 23},
		{"too short", "2024-03-02", -1},
		{"garbage hour", "2024-03-02 xx:15:00", -1},
		{"empty", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activity{StartDateLocal: tt.local}
			if got := a.LocalHour(); got != tt.expected {
				t.Errorf("LocalHour() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLocalTime(t *testing.T) {
	a := &Activity{StartDateLocal: "2024-03-02 07:15:00"}
	want := time.Date(2024, 3, 2, 7, 15, 0, 0, time.UTC)
	if got := a.LocalTime(); !got.Equal(want) {
		t.Errorf("LocalTime() = %v, want %v", got, want)
	}

	bad := &Activity{StartDateLocal: "not a timestamp"}
	if !bad.LocalTime().IsZero() {
		t.Error("LocalTime() of a bad timestamp should be the zero time")
	}
}
