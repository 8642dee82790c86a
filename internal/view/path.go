package view

import (
	"github.com/paulmach/orb"
	polyline "github.com/twpayne/go-polyline"

	"runmap/internal/activity"
	"runmap/internal/location"
)

// DecodeFailure, when set, is called with the id of any activity whose
// summary polyline failed to decode. Decode failures are otherwise
// swallowed: the path degrades to empty so rendering never breaks.
var DecodeFailure func(runID int64, err error)

// PathFor decodes an activity's summary polyline into an ordered
// [lng, lat] line string. A missing or malformed polyline yields an empty
// path. A degenerate path of exactly two identical points carries no real
// track; when the resolver knows a coordinate for the activity's location
// it is substituted as a synthetic pin, otherwise the degenerate pair is
// kept.
func PathFor(a *activity.Activity, r *location.Resolver) orb.LineString {
	if a == nil || a.SummaryPolyline == "" {
		return orb.LineString{}
	}

	coords, _, err := polyline.DecodeCoords([]byte(a.SummaryPolyline))
	if err != nil {
		if DecodeFailure != nil {
			DecodeFailure(a.RunID, err)
		}
		return orb.LineString{}
	}

	path := make(orb.LineString, len(coords))
	for i, c := range coords {
		// The codec yields [lat, lng]; the map wants [lng, lat].
		path[i] = orb.Point{c[1], c[0]}
	}

	if len(path) == 2 && path[0] == path[1] && r != nil {
		if coord := r.Resolve(a).Coordinate; coord != nil {
			return orb.LineString{*coord, *coord}
		}
	}

	return path
}
