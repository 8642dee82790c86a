package activity

import (
	"strconv"
	"time"
)

// LocalTimeLayout is the canonical timestamp format used by the upstream
// dataset for start_date and start_date_local.
const LocalTimeLayout = "2006-01-02 15:04:05"

// Activity represents one recorded run/ride/hike from the pre-baked
// dataset. Field names follow the upstream fixture format exactly and must
// not be renamed.
type Activity struct {
	RunID            int64    `json:"run_id"`
	Name             string   `json:"name"`
	Distance         float64  `json:"distance"`    // meters
	MovingTime       int      `json:"moving_time"` // seconds
	ElapsedTime      int      `json:"elapsed_time"`
	Type             string   `json:"type"`
	Subtype          string   `json:"subtype"`
	StartDate        string   `json:"start_date"`
	StartDateLocal   string   `json:"start_date_local"` // "YYYY-MM-DD HH:MM:SS"
	LocationCountry  string   `json:"location_country"` // reverse-geocoded, may be empty
	SummaryPolyline  string   `json:"summary_polyline"` // encoded polyline, may be empty
	AverageHeartrate *float64 `json:"average_heartrate"`
	AverageSpeed     float64  `json:"average_speed"` // m/s
	ElevationGain    float64  `json:"elevation_gain"`
	Streak           int      `json:"streak"` // consecutive-day counter, externally computed
}

// Year returns the 4-character year grouping key from start_date_local,
// or "" when the timestamp is too short.
func (a *Activity) Year() string {
	if len(a.StartDateLocal) < 4 {
		return ""
	}
	return a.StartDateLocal[:4]
}

// LocalHour returns the hour of day from start_date_local, or -1 when the
// timestamp is missing or malformed. The -1 sentinel falls outside every
// time-of-day title bucket, matching the upstream behavior for bad data.
func (a *Activity) LocalHour() int {
	if len(a.StartDateLocal) < 13 {
		return -1
	}
	h, err := strconv.Atoi(a.StartDateLocal[11:13])
	if err != nil {
		return -1
	}
	return h
}

// LocalTime parses start_date_local, returning the zero time on failure.
func (a *Activity) LocalTime() time.Time {
	t, err := time.Parse(LocalTimeLayout, a.StartDateLocal)
	if err != nil {
		return time.Time{}
	}
	return t
}
