package spatial

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	bogota := Point{Lat: 4.6097, Lon: -74.0818}
	cartagena := Point{Lat: 10.3910, Lon: -75.4794}

	got := DistanceKm(bogota, cartagena)
	// Roughly 660 km as the crow flies
	if got < 640 || got > 680 {
		t.Errorf("DistanceKm(bogota, cartagena) = %.1f, want ~660", got)
	}
	if d := DistanceKm(bogota, bogota); d != 0 {
		t.Errorf("DistanceKm to self = %v, want 0", d)
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{4.6, -74.1, true},
		{91, 0, false},
		{0, 181, false},
		{-89.9, -179.9, true},
	}

	for _, tt := range tests {
		if got := ValidCoordinates(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestCentroidAndBoundingBox(t *testing.T) {
	points := []Point{{Lat: 0, Lon: 0}, {Lat: 2, Lon: 4}, {Lat: 4, Lon: -2}}

	c := Centroid(points)
	if math.Abs(c.Lat-2) > 1e-9 || math.Abs(c.Lon-2.0/3.0) > 1e-9 {
		t.Errorf("Centroid = %+v", c)
	}

	minLat, minLon, maxLat, maxLon := BoundingBox(points)
	if minLat != 0 || minLon != -2 || maxLat != 4 || maxLon != 4 {
		t.Errorf("BoundingBox = %v %v %v %v", minLat, minLon, maxLat, maxLon)
	}

	if c := Centroid(nil); c != (Point{}) {
		t.Errorf("Centroid(nil) = %+v, want zero", c)
	}
}
