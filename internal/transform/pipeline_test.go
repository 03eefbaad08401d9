package transform

import (
	"math"
	"testing"
	"time"

	"github.com/IRedDragonICY/shaum/internal/geo"
)

func mustCoord(t *testing.T, lat, lng, alt float64) geo.GeoCoordinate {
	t.Helper()
	c, err := geo.NewCoordinateAlt(lat, lng, alt)
	if err != nil {
		t.Fatalf("bad coordinate: %v", err)
	}
	return c
}

// TestSunAtEquinoxNoon: on the March 2024 equinox the Sun's declination is
// near zero, so at local solar noon in London its altitude must be close to
// 90 - latitude.
func TestSunAtEquinoxNoon(t *testing.T) {
	obs := mustCoord(t, 51.4769, 0, 0) // Greenwich
	noon := time.Date(2024, 3, 20, 12, 7, 0, 0, time.UTC)

	pos := SunAt(noon, obs)

	wantAlt := 90 - 51.4769
	if diff := math.Abs(pos.Apparent.AltDeg - wantAlt); diff > 0.5 {
		t.Errorf("sun altitude = %.3f°, want %.3f° ± 0.5°", pos.Apparent.AltDeg, wantAlt)
	}
	// Northern mid-latitudes see the transit to the south.
	if pos.Apparent.AzDeg < 170 || pos.Apparent.AzDeg > 190 {
		t.Errorf("sun azimuth at noon = %.3f°, want near 180°", pos.Apparent.AzDeg)
	}
	if math.Abs(pos.Equatorial.DecDeg) > 0.3 {
		t.Errorf("sun declination at equinox = %.3f°, want near 0", pos.Equatorial.DecDeg)
	}
}

func TestSunAtMidnightBelowHorizon(t *testing.T) {
	obs := mustCoord(t, 51.4769, 0, 0)
	midnight := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	pos := SunAt(midnight, obs)
	if pos.Apparent.AltDeg > -30 {
		t.Errorf("sun altitude at midnight = %.3f°, want well below horizon", pos.Apparent.AltDeg)
	}
}

func TestMoonAtRanges(t *testing.T) {
	obs := mustCoord(t, -6.2088, 106.8456, 0) // Jakarta
	for hour := 0; hour < 48; hour += 3 {
		tm := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Add(time.Duration(hour) * time.Hour)
		pos := MoonAt(tm, obs)

		if pos.Apparent.AltDeg < -91 || pos.Apparent.AltDeg > 91 {
			t.Errorf("moon altitude %v at %v out of range", pos.Apparent.AltDeg, tm)
		}
		if pos.Apparent.AzDeg < 0 || pos.Apparent.AzDeg >= 360 {
			t.Errorf("moon azimuth %v at %v out of range", pos.Apparent.AzDeg, tm)
		}
		if pos.Geometric.AzDeg != pos.Apparent.AzDeg {
			t.Errorf("corrections must not touch azimuth: %v != %v",
				pos.Geometric.AzDeg, pos.Apparent.AzDeg)
		}
	}
}

// TestMoonParallaxLowersAltitude: the lunar parallax near the horizon
// (~1°) exceeds refraction (~0.5°), so an apparent low-altitude Moon sits
// below its geometric position.
func TestMoonParallaxLowersAltitude(t *testing.T) {
	obs := mustCoord(t, -6.2088, 106.8456, 0)

	found := false
	for hour := 0; hour < 24 && !found; hour++ {
		tm := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC).Add(time.Duration(hour) * time.Hour)
		pos := MoonAt(tm, obs)
		if pos.Geometric.AltDeg > 3 && pos.Geometric.AltDeg < 30 {
			found = true
			if pos.Apparent.AltDeg >= pos.Geometric.AltDeg {
				t.Errorf("at %v apparent %.4f >= geometric %.4f", tm,
					pos.Apparent.AltDeg, pos.Geometric.AltDeg)
			}
		}
	}
	if !found {
		t.Skip("no low-moon sample in window")
	}
}
