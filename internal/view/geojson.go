package view

import (
	"github.com/paulmach/orb/geojson"

	"runmap/internal/activity"
	"runmap/internal/location"
)

// DefaultRouteColor is the route color when the config specifies none.
const DefaultRouteColor = "#47b8e0"

// GeoJSONFor builds the map-ready feature collection: one LineString
// feature per run, each carrying the display color. Runs without track
// data contribute a feature with an empty coordinate list rather than
// being dropped, so feature indexes stay aligned with the run list.
func GeoJSONFor(runs []activity.Activity, r *location.Resolver, color string) *geojson.FeatureCollection {
	if color == "" {
		color = DefaultRouteColor
	}
	fc := geojson.NewFeatureCollection()
	for i := range runs {
		f := geojson.NewFeature(PathFor(&runs[i], r))
		f.Properties["color"] = color
		fc.Append(f)
	}
	return fc
}
