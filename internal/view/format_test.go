package view

import (
	"math"
	"testing"

	"runmap/internal/activity"
)

func TestFormatPace(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		expected string
	}{
		{"zero speed", 0, `0'00"`},
		{"negative speed", -1, `0'00"`},
		{"NaN", math.NaN(), `0'00"`},
		{"3 m/s", 3, `5'33"`},
		{"slow pace", 1.5, `11'06"`},
		{"fast pace", 5, `3'20"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatPace(tt.speed)
			if result != tt.expected {
				t.Errorf("FormatPace(%v) = %q, want %q", tt.speed, result, tt.expected)
			}
		})
	}
}

func TestFormatRunTime(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{1800, "30:00"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatRunTime(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatRunTime(%d) = %q, want %q", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestIntComma(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"123", "123"},
		{"12345", "12345"}, // five chars stay unseparated
		{"123456", "123,456"},
		{"1234567890", "1,234,567,890"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			result := IntComma(tt.in)
			if result != tt.expected {
				t.Errorf("IntComma(%q) = %q, want %q", tt.in, result, tt.expected)
			}
		})
	}
}

func TestTitleForShow(t *testing.T) {
	withMap := &activity.Activity{
		Name:            "Lakeside Loop",
		Distance:        10250,
		StartDateLocal:  "2024-03-02 07:15:00",
		SummaryPolyline: "_p~iF~ps|U_ulLnnqC",
	}
	if got, want := TitleForShow(withMap), "Lakeside Loop 2024-03-02  10.25 KM "; got != want {
		t.Errorf("TitleForShow = %q, want %q", got, want)
	}

	noMap := &activity.Activity{
		Distance:       5000,
		StartDateLocal: "2024-03-02 07:15:00",
	}
	if got, want := TitleForShow(noMap), "Run 2024-03-02  5.00 KM (No map data for this run)"; got != want {
		t.Errorf("TitleForShow = %q, want %q", got, want)
	}

	if TitleForShow(nil) != "" {
		t.Error("TitleForShow(nil) should be empty")
	}
}
