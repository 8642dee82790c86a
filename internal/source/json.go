// Package source loads the pre-baked activity dataset produced by the
// upstream data pipeline, either from the exported activities.json or
// straight from the generator's SQLite database.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"runmap/internal/activity"
)

// LoadJSON reads an activities.json fixture.
func LoadJSON(path string) ([]activity.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading activities file: %w", err)
	}
	return DecodeJSON(data)
}

// DecodeJSON decodes an activities.json payload.
func DecodeJSON(data []byte) ([]activity.Activity, error) {
	var activities []activity.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("parsing activities: %w", err)
	}
	return activities, nil
}
