package source

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"runmap/internal/activity"
)

// LoadDB reads every activity from the generator's SQLite database at the
// given path. The database is treated as read-only pre-baked data.
func LoadDB(path string) ([]activity.Activity, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	return queryActivities(db)
}

func queryActivities(db *sql.DB) ([]activity.Activity, error) {
	rows, err := db.Query(`
		SELECT run_id, name, distance, moving_time, elapsed_time,
			type, subtype, start_date, start_date_local,
			location_country, summary_polyline,
			average_heartrate, average_speed, elevation_gain
		FROM activities
		ORDER BY start_date_local
	`)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var (
			a               activity.Activity
			name            sql.NullString
			subtype         sql.NullString
			locationCountry sql.NullString
			summaryPolyline sql.NullString
			heartrate       sql.NullFloat64
			elevationGain   sql.NullFloat64
		)
		err := rows.Scan(
			&a.RunID, &name, &a.Distance, &a.MovingTime, &a.ElapsedTime,
			&a.Type, &subtype, &a.StartDate, &a.StartDateLocal,
			&locationCountry, &summaryPolyline,
			&heartrate, &a.AverageSpeed, &elevationGain,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Name = name.String
		a.Subtype = subtype.String
		a.LocationCountry = locationCountry.String
		a.SummaryPolyline = summaryPolyline.String
		if heartrate.Valid {
			hr := heartrate.Float64
			a.AverageHeartrate = &hr
		}
		a.ElevationGain = elevationGain.Float64
		// The streak counter only exists in the JSON export; rows read
		// straight from the database carry no streak.
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading activities: %w", err)
	}
	return activities, nil
}
