package view

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ViewState is a map viewport: center coordinate plus zoom level.
type ViewState struct {
	Longitude float64
	Latitude  float64
	Zoom      float64
}

// Viewport fitting constants. The fit assumes a fixed 800x500 map with
// 100px padding; multiple routes shown together are pinned to a
// neighborhood zoom instead of the computed fit to avoid zooming way out.
const (
	fitWidth   = 800.0
	fitHeight  = 500.0
	fitPadding = 100.0

	defaultLongitude = 100.0
	defaultLatitude  = 40.0
	defaultZoom      = 3.0

	pinZoom          = 10.0
	neighborhoodZoom = 13.0

	worldSize = 512.0 // web mercator world size in px at zoom 0
)

// BoundsFor fits a viewport around the first feature in the collection
// that has coordinates. An empty collection gets the wide default view; a
// degenerate identical-point pair gets a close-in pin view. When the
// collection holds more than one feature the fitted zoom is overridden
// with the neighborhood zoom.
func BoundsFor(fc *geojson.FeatureCollection) ViewState {
	var points orb.LineString
	if fc != nil {
		for _, f := range fc.Features {
			ls, ok := f.Geometry.(orb.LineString)
			if ok && len(ls) > 0 {
				points = ls
				break
			}
		}
	}

	if len(points) == 0 {
		return ViewState{Longitude: defaultLongitude, Latitude: defaultLatitude, Zoom: defaultZoom}
	}
	if len(points) == 2 && points[0] == points[1] {
		return ViewState{Longitude: points[0][0], Latitude: points[0][1], Zoom: pinZoom}
	}

	vs := fitBounds(points.Bound())
	if len(fc.Features) > 1 {
		vs.Zoom = neighborhoodZoom
	}
	return vs
}

// fitBounds computes the center and zoom that fit the bound inside the
// fixed viewport with padding, using web mercator world coordinates. A
// zero-extent bound cannot be fitted and falls back to the pin zoom.
func fitBounds(b orb.Bound) ViewState {
	x1 := lngToWorldX(b.Min[0])
	x2 := lngToWorldX(b.Max[0])
	y1 := latToWorldY(b.Max[1]) // north edge has the smaller y
	y2 := latToWorldY(b.Min[1])

	dx := x2 - x1
	dy := y2 - y1

	var scale float64
	switch {
	case dx > 0 && dy > 0:
		scale = math.Min((fitWidth-2*fitPadding)/dx, (fitHeight-2*fitPadding)/dy)
	case dx > 0:
		scale = (fitWidth - 2*fitPadding) / dx
	case dy > 0:
		scale = (fitHeight - 2*fitPadding) / dy
	default:
		return ViewState{Longitude: b.Min[0], Latitude: b.Min[1], Zoom: pinZoom}
	}

	return ViewState{
		Longitude: worldXToLng((x1 + x2) / 2),
		Latitude:  worldYToLat((y1 + y2) / 2),
		Zoom:      math.Log2(scale),
	}
}

func lngToWorldX(lng float64) float64 {
	return worldSize * (lng/360.0 + 0.5)
}

func latToWorldY(lat float64) float64 {
	y := 0.5 - math.Log(math.Tan(math.Pi/4+lat*math.Pi/360.0))/(2*math.Pi)
	return worldSize * y
}

func worldXToLng(x float64) float64 {
	return (x/worldSize - 0.5) * 360.0
}

func worldYToLat(y float64) float64 {
	return (2*math.Atan(math.Exp((0.5-y/worldSize)*2*math.Pi)) - math.Pi/2) * 180.0 / math.Pi
}
