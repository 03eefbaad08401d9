package transform

import (
	"math"
	"testing"
)

func TestRefraction(t *testing.T) {
	// Bennett's formula at the horizon gives about 28.9 arc-minutes.
	got := Refraction(0)
	if math.Abs(got-0.483) > 0.01 {
		t.Errorf("Refraction(0) = %.4f°, want ~0.483°", got)
	}

	// At 45° the refraction is roughly one arc-minute.
	got = Refraction(45)
	if math.Abs(got-0.0167) > 0.002 {
		t.Errorf("Refraction(45) = %.4f°, want ~0.0167°", got)
	}

	// Zero below the validity floor.
	if r := Refraction(-2.5); r != 0 {
		t.Errorf("Refraction(-2.5) = %v, want 0", r)
	}
	if r := Refraction(-45); r != 0 {
		t.Errorf("Refraction(-45) = %v, want 0", r)
	}
}

func TestRefractionMonotonicDecreasing(t *testing.T) {
	prev := Refraction(0)
	for alt := 1.0; alt <= 89; alt++ {
		cur := Refraction(alt)
		if cur >= prev {
			t.Fatalf("refraction not decreasing at alt=%v: %.6f >= %.6f", alt, cur, prev)
		}
		if cur < 0 {
			t.Fatalf("negative refraction at alt=%v", alt)
		}
		prev = cur
	}
}

func TestHorizonDip(t *testing.T) {
	if d := HorizonDip(0); d != 0 {
		t.Errorf("dip at sea level = %v, want 0", d)
	}
	if d := HorizonDip(-10); d != 0 {
		t.Errorf("dip below sea level = %v, want 0", d)
	}

	// 100 m of elevation dips the horizon by 0.293°.
	if d := HorizonDip(100); math.Abs(d-0.293) > 1e-9 {
		t.Errorf("dip at 100 m = %.4f°, want 0.293°", d)
	}

	// Non-decreasing in elevation.
	prev := 0.0
	for elev := 0.0; elev <= 3000; elev += 50 {
		d := HorizonDip(elev)
		if d < prev {
			t.Fatalf("dip decreased at %v m: %v < %v", elev, d, prev)
		}
		prev = d
	}
}

func TestApparentAltitude(t *testing.T) {
	// Parallax pushes the body down, refraction lifts it back up. For the
	// Moon near the horizon parallax (~0.95°) dominates refraction (~0.48°).
	geom := 5.0
	parallax := 0.95
	app := ApparentAltitude(geom, parallax)
	if app >= geom {
		t.Errorf("apparent %v >= geometric %v; lunar parallax should dominate", app, geom)
	}

	// With zero parallax only refraction remains, so the apparent altitude
	// must sit slightly above the geometric one.
	app = ApparentAltitude(5.0, 0)
	if app <= 5.0 || app > 5.2 {
		t.Errorf("refraction-only apparent altitude = %v, want slightly above 5", app)
	}
}

func TestApplyPreservesAzimuth(t *testing.T) {
	pos := Horizontal{AltDeg: 10, AzDeg: 123.456}
	out := Apply(pos, 0.9)
	if out.AzDeg != pos.AzDeg {
		t.Errorf("azimuth changed: %v -> %v", pos.AzDeg, out.AzDeg)
	}
	if out.AltDeg == pos.AltDeg {
		t.Error("altitude unchanged; corrections did not apply")
	}
}

func TestSunHorizontalParallax(t *testing.T) {
	// 8.794" at 1 AU.
	got := SunHorizontalParallax(1.0)
	want := 8.794 / 3600.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("solar parallax at 1 AU = %v, want %v", got, want)
	}
	// Larger when the Earth is closer.
	if SunHorizontalParallax(0.9833) <= got {
		t.Error("parallax should grow as distance shrinks")
	}
}
