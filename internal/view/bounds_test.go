package view

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func collectionOf(lines ...orb.LineString) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, ls := range lines {
		fc.Append(geojson.NewFeature(ls))
	}
	return fc
}

func TestBoundsForEmpty(t *testing.T) {
	tests := []struct {
		name string
		fc   *geojson.FeatureCollection
	}{
		{"nil collection", nil},
		{"no features", collectionOf()},
		{"only empty features", collectionOf(orb.LineString{}, orb.LineString{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := BoundsFor(tt.fc)
			if vs.Longitude != 100 || vs.Latitude != 40 || vs.Zoom != 3 {
				t.Errorf("got %+v, want the wide default viewport", vs)
			}
		})
	}
}

func TestBoundsForPin(t *testing.T) {
	pin := orb.Point{120.15, 30.25}
	vs := BoundsFor(collectionOf(orb.LineString{pin, pin}))

	if vs.Longitude != 120.15 || vs.Latitude != 30.25 {
		t.Errorf("pin center = %v, %v, want 120.15, 30.25", vs.Longitude, vs.Latitude)
	}
	if vs.Zoom != 10 {
		t.Errorf("pin zoom = %v, want 10", vs.Zoom)
	}
}

func TestBoundsForSingleRoute(t *testing.T) {
	route := orb.LineString{
		{120.0, 30.0},
		{120.05, 30.08},
		{120.1, 30.1},
	}
	vs := BoundsFor(collectionOf(route))

	if math.Abs(vs.Longitude-120.05) > 0.01 {
		t.Errorf("center longitude = %v, want ~120.05", vs.Longitude)
	}
	if math.Abs(vs.Latitude-30.05) > 0.01 {
		t.Errorf("center latitude = %v, want ~30.05", vs.Latitude)
	}
	if vs.Zoom < 10 || vs.Zoom > 12 {
		t.Errorf("zoom = %v, want a close city-scale fit", vs.Zoom)
	}
}

func TestBoundsForSkipsEmptyFeatures(t *testing.T) {
	route := orb.LineString{{120.0, 30.0}, {120.1, 30.1}, {120.05, 30.02}}
	vs := BoundsFor(collectionOf(orb.LineString{}, route))

	if math.Abs(vs.Longitude-120.05) > 0.01 {
		t.Errorf("center longitude = %v, want ~120.05", vs.Longitude)
	}
	// More than one feature in the collection pins the zoom.
	if vs.Zoom != 13 {
		t.Errorf("zoom = %v, want the neighborhood override 13", vs.Zoom)
	}
}

func TestBoundsForMultiRouteOverride(t *testing.T) {
	a := orb.LineString{{120.0, 30.0}, {120.1, 30.1}}
	b := orb.LineString{{121.0, 31.0}, {121.1, 31.1}}
	vs := BoundsFor(collectionOf(a, b))

	if vs.Zoom != 13 {
		t.Errorf("zoom = %v, want 13 when multiple routes are shown", vs.Zoom)
	}
}

func TestBoundsForZeroExtent(t *testing.T) {
	// All points identical but more than two of them: the bbox cannot be
	// fitted, so the fit clamps to the pin zoom instead of blowing up.
	p := orb.Point{8.5, 47.3}
	vs := BoundsFor(collectionOf(orb.LineString{p, p, p}))

	if vs.Longitude != 8.5 || vs.Latitude != 47.3 {
		t.Errorf("center = %v, %v, want 8.5, 47.3", vs.Longitude, vs.Latitude)
	}
	if vs.Zoom != 10 {
		t.Errorf("zoom = %v, want the pin zoom", vs.Zoom)
	}
}
