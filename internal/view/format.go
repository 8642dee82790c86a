package view

import (
	"fmt"
	"math"
	"strings"

	"runmap/internal/activity"
)

// FormatPace renders an average speed in m/s as a min/km pace string like
// 5'33". Zero, negative, or NaN speeds render as 0'00".
func FormatPace(metersPerSecond float64) string {
	if metersPerSecond <= 0 || math.IsNaN(metersPerSecond) {
		return `0'00"`
	}
	pace := (1000.0 / 60.0) * (1.0 / metersPerSecond) // minutes per km
	minutes := math.Floor(pace)
	seconds := math.Floor((pace - minutes) * 60.0)
	return fmt.Sprintf(`%d'%02d"`, int(minutes), int(seconds))
}

// FormatRunTime renders a moving time in seconds as MM:SS, or H:MM:SS once
// the duration reaches an hour. Minutes and seconds are always two digits.
func FormatRunTime(movingTime int) string {
	if movingTime < 0 {
		movingTime = 0
	}
	hours := movingTime / 3600
	minutes := (movingTime % 3600) / 60
	seconds := movingTime % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// IntComma inserts thousands separators into a numeric string. Strings of
// five or fewer characters are returned untouched; the upstream dataset
// formatter behaves this way and the threshold is kept as-is.
func IntComma(x string) string {
	if len(x) <= 5 {
		return x
	}
	var b strings.Builder
	n := len(x)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(x[i])
	}
	return b.String()
}

// TitleForShow builds the long-form label used when hovering a run on the
// map: name, date, distance, and a note when no track data exists.
func TitleForShow(a *activity.Activity) string {
	if a == nil {
		return ""
	}
	date := a.StartDateLocal
	if len(date) > 11 {
		date = date[:11]
	}
	distance := fmt.Sprintf("%.2f", a.Distance/1000.0)
	name := "Run"
	if strings.HasPrefix(a.Name, "Running") {
		name = "run"
	}
	if a.Name != "" {
		name = a.Name
	}
	note := ""
	if a.SummaryPolyline == "" {
		note = "(No map data for this run)"
	}
	return fmt.Sprintf("%s %s %s KM %s", name, date, distance, note)
}
