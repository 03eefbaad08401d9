package astrotime

import (
	"math"
	"testing"
	"time"
)

// TestJulianDate verifies the Julian Date calculation against known values.
func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
	}{
		{
			name:     "J2000.0 epoch",
			time:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
		},
		{
			name:     "Unix epoch",
			time:     time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
		},
		{
			// Meeus ch.7: 1957 October 4.81 (Sputnik 1 launch).
			name:     "Sputnik launch",
			time:     time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC),
			expected: 2436116.31,
		},
		{
			name:     "1987 April 10 0h",
			time:     time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC),
			expected: 2446895.5,
		},
		{
			name:     "1992 October 13 0h",
			time:     time.Date(1992, 10, 13, 0, 0, 0, 0, time.UTC),
			expected: 2448908.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.time)
			diff := math.Abs(got - tt.expected)
			if diff > 1e-6 {
				t.Errorf("JulianDate(%v) = %.10f, want %.10f (diff=%.2e)", tt.time, got, tt.expected, diff)
			}
		})
	}
}

func TestTimeFromJulianDateRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 6, 30, 15, 0, time.UTC),
		time.Date(1950, 7, 1, 23, 59, 59, 0, time.UTC),
	}
	for _, orig := range times {
		back := TimeFromJulianDate(JulianDate(orig))
		if d := back.Sub(orig); d > time.Millisecond || d < -time.Millisecond {
			t.Errorf("round trip of %v drifted by %v", orig, d)
		}
	}
}

func TestJulianCenturies(t *testing.T) {
	// Exactly one century after J2000.0.
	tc := TimeFromJulianDate(J2000 + JulianCentury)
	got := JulianCenturies(tc)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("JulianCenturies one century after J2000 = %.12f, want 1", got)
	}
}

func TestDeltaT(t *testing.T) {
	tests := []struct {
		year int
		want float64
		tol  float64
	}{
		// Observed values from the Espenak & Meeus tables.
		{1955, 31.1, 1.0},
		{1970, 40.2, 1.0},
		{1990, 56.9, 1.0},
		{2000, 63.8, 0.5},
		{2020, 71.6, 2.0},
	}
	for _, tt := range tests {
		got := DeltaT(time.Date(tt.year, 7, 1, 0, 0, 0, 0, time.UTC))
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("DeltaT(%d) = %.2f s, want %.2f ± %.1f", tt.year, got, tt.want, tt.tol)
		}
	}
}

func TestMeanObliquity(t *testing.T) {
	// At J2000.0 the mean obliquity is 23°26'21.448".
	got := MeanObliquity(0)
	want := 23.43929111
	if math.Abs(got-want) > 1e-8 {
		t.Errorf("MeanObliquity(0) = %.8f, want %.8f", got, want)
	}

	// Meeus example 22.a: 1987 April 10.0, T = -0.127296372348.
	got = MeanObliquity(-0.127296372348)
	want = 23.44094629 // 23°26'27.407"
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("MeanObliquity(1987) = %.6f, want %.6f", got, want)
	}
}

// TestNutation checks the abridged series against the full-theory values
// of Meeus example 22.a (1987 April 10.0). The 4-term truncation is good
// to a few tenths of an arc-second.
func TestNutation(t *testing.T) {
	const T = -0.127296372348
	dPsi, dEps := Nutation(T)

	wantPsi := -3.788 / 3600.0
	wantEps := 9.443 / 3600.0

	if math.Abs(dPsi-wantPsi) > 0.3/3600.0 {
		t.Errorf("nutation in longitude = %.3f\", want %.3f\"", dPsi*3600, wantPsi*3600)
	}
	if math.Abs(dEps-wantEps) > 0.1/3600.0 {
		t.Errorf("nutation in obliquity = %.3f\", want %.3f\"", dEps*3600, wantEps*3600)
	}
}

// TestGMST validates against Meeus example 12.b: 1987 April 10, 19:21:00
// UT gives an apparent sidereal time of 8h34m57.0896s; the mean value is
// 8h34m57.0898s - 0.2317s of equation of equinoxes. We check the mean
// time, 128.73787°.
func TestGMST(t *testing.T) {
	got := GMST(time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC))
	want := 128.73787
	if math.Abs(got-want) > 2e-3 {
		t.Errorf("GMST = %.5f°, want %.5f°", got, want)
	}
}

func TestGMSTRange(t *testing.T) {
	for _, tm := range []time.Time{
		time.Date(1970, 1, 1, 3, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 18, 45, 0, 0, time.UTC),
		time.Date(2050, 12, 31, 0, 0, 0, 0, time.UTC),
	} {
		got := GMST(tm)
		if got < 0 || got >= 360 {
			t.Errorf("GMST(%v) = %f, outside [0, 360)", tm, got)
		}
	}
}

func TestLocalApparentSiderealTime(t *testing.T) {
	tm := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	lon := 106.8456

	lst := LocalApparentSiderealTime(tm, lon)
	if lst < 0 || lst >= 360 {
		t.Fatalf("LST = %f, outside [0, 360)", lst)
	}

	// The equation of the equinoxes is under 1.2" of time (~0.005°), so
	// LST must sit very close to GMST + longitude.
	mean := Normalize360(GMST(tm) + lon)
	diff := math.Abs(lst - mean)
	if diff > 180 {
		diff = 360 - diff
	}
	if diff > 0.01 {
		t.Errorf("LST - (GMST+lon) = %.5f°, want < 0.01°", diff)
	}
}

func TestNormalize360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{725, 5},
		{-5, 355},
		{-725, 355},
		{359.999, 359.999},
	}
	for _, tt := range tests {
		if got := Normalize360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
