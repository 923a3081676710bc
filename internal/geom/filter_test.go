package geom

import (
	"errors"
	"math"
	"testing"
)

func TestExcludeRegion(t *testing.T) {
	in := []GeoPoint{
		{Lat: 14.0, Lon: 108.0}, // inside the corner
		{Lat: 15.0, Lon: 108.0},
		{Lat: 14.0, Lon: 107.0},
		{Lat: 14.5, Lon: 109.0}, // on the latitude bound
		{Lat: 10.0, Lon: 107.5}, // on the longitude bound
	}
	got := ExcludeRegion(in, 14.5, 107.5)
	want := []GeoPoint{in[1], in[2], in[3], in[4]}
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestFilterAboveLine(t *testing.T) {
	p1 := GeoPoint{Lon: 107.5, Lat: 14.46}
	p2 := GeoPoint{Lon: 112.0, Lat: 14.5}

	tests := []struct {
		name string
		pt   GeoPoint
		keep bool
	}{
		{"on the line at p1", GeoPoint{Lat: 14.46, Lon: 107.5}, true},
		{"just below at p1", GeoPoint{Lat: 14.459, Lon: 107.5}, false},
		{"above at p1", GeoPoint{Lat: 20, Lon: 107.5}, true},
		{"above at p2", GeoPoint{Lat: 14.51, Lon: 112.0}, true},
		{"below at p2", GeoPoint{Lat: 14.49, Lon: 112.0}, false},
		{"extrapolated west", GeoPoint{Lat: 14.45, Lon: 103.0}, true},
		{"far south", GeoPoint{Lat: 8.6, Lon: 104.7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterAboveLine([]GeoPoint{tt.pt}, p1, p2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (len(got) == 1) != tt.keep {
				t.Errorf("Expected keep=%v, got %+v", tt.keep, got)
			}
		})
	}
}

func TestFilterAboveLinePreservesOrder(t *testing.T) {
	p1 := GeoPoint{Lon: 0, Lat: 0}
	p2 := GeoPoint{Lon: 10, Lat: 0}
	in := []GeoPoint{{3, 1}, {-1, 2}, {5, 5}, {5, 5}, {0, 9}}
	got, err := FilterAboveLine(in, p1, p2)
	if err != nil {
		t.Fatal(err)
	}
	want := []GeoPoint{{3, 1}, {5, 5}, {5, 5}, {0, 9}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestFilterAboveLineVertical(t *testing.T) {
	_, err := FilterAboveLine([]GeoPoint{{1, 1}}, GeoPoint{Lat: 0, Lon: 5}, GeoPoint{Lat: 10, Lon: 5})
	var de *DegenerateInputError
	if !errors.As(err, &de) {
		t.Fatalf("Expected *DegenerateInputError, got %v", err)
	}
}

func TestDistanceKm(t *testing.T) {
	center, _ := ParseDMSPair("204856N", "1064328E")
	phuta, _ := ParseDMSPair("205547N", "1062738E")

	d := DistanceKm(center, phuta)
	if d < 29 || d > 31.5 {
		t.Errorf("Expected about 30 km, got %.3f", d)
	}
	if back := DistanceKm(phuta, center); math.Abs(back-d) > 1e-9 {
		t.Errorf("Expected symmetric distance, got %.9f and %.9f", d, back)
	}
	if z := DistanceKm(center, center); z != 0 {
		t.Errorf("Expected 0, got %f", z)
	}
	if deg := KmToDegrees(111); deg != 1 {
		t.Errorf("Expected 1 degree, got %f", deg)
	}
}

func TestExtent(t *testing.T) {
	var e Extent
	if !e.Empty() {
		t.Fatal("Expected empty extent")
	}
	e.AddPath([]GeoPoint{{Lat: 10, Lon: 100}, {Lat: 20, Lon: 105}, {Lat: 15, Lon: 98}})
	want := BBox{MinX: 98, MinY: 10, MaxX: 105, MaxY: 20}
	if e.BBox != want {
		t.Errorf("Expected %+v, got %+v", want, e.BBox)
	}
}
