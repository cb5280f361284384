package geo

import (
	"math"
	"testing"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	cases := [][2]float64{
		{0, 0},
		{-23.5505, -46.6333},
		{89.9, 179.9},
	}
	for _, c := range cases {
		if d := HaversineDistance(c[0], c[1], c[0], c[1]); d != 0 {
			t.Errorf("HaversineDistance(%v, %v, same) = %v, want 0", c[0], c[1], d)
		}
	}
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	lat1, lon1 := -23.5505, -46.6333
	lat2, lon2 := -22.9068, -43.1729

	d1 := HaversineDistance(lat1, lon1, lat2, lon2)
	d2 := HaversineDistance(lat2, lon2, lat1, lon1)

	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// One degree of latitude along a meridian is roughly 111.19 km for a
	// 6371 km sphere.
	d := HaversineDistance(0, 0, 1, 0)
	if math.Abs(d-111195) > 10 {
		t.Errorf("HaversineDistance(0,0,1,0) = %v, want ~111195", d)
	}
}

func TestHaversineDistance_SmallOffset(t *testing.T) {
	// ~0.00123 degrees of latitude near the equator is ~137 meters.
	d := HaversineDistance(0, 0, 0.00123232, 0)
	if d < 130 || d > 144 {
		t.Errorf("HaversineDistance small offset = %v, want ~137", d)
	}
}
