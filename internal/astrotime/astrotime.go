// Package astrotime provides time-scale and reference-frame utilities:
// Julian Day conversion, Julian centuries from J2000.0, delta-T,
// obliquity of the ecliptic, nutation, and sidereal time.
//
// All functions are pure and total over valid time.Time inputs.
package astrotime

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00:00 TT).
const J2000 = 2451545.0

// JulianCentury is the number of days in a Julian century.
const JulianCentury = 36525.0

// JulianDate converts a time.Time (UTC) to Julian Date.
// Uses the standard astronomical algorithm valid for dates after March 1, 4801 BC.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Adjust year/month for Jan/Feb (treat as months 13/14 of previous year).
	if m <= 2 {
		y -= 1
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + B - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

// TimeFromJulianDate converts a Julian Date back to a UTC time.Time.
// Inverse of JulianDate to sub-millisecond precision for modern dates.
func TimeFromJulianDate(jd float64) time.Time {
	// Days since the Unix epoch (JD 2440587.5).
	days := jd - 2440587.5
	sec := days * 86400.0
	whole := math.Floor(sec)
	nanos := (sec - whole) * 1e9
	return time.Unix(int64(whole), int64(nanos)).UTC()
}

// JulianCenturies returns Julian centuries elapsed since J2000.0 for the
// given UTC time. This is the time argument T of the periodic series.
func JulianCenturies(t time.Time) float64 {
	return (JulianDate(t) - J2000) / JulianCentury
}

// DeltaT approximates TT - UT1 in seconds using the Espenak & Meeus
// polynomial fits. Accuracy degrades outside roughly 1900-2100; far
// past/future dates still return a value (the series simply extrapolates),
// which matches the engine's documented accuracy-degradation policy.
func DeltaT(t time.Time) float64 {
	y := float64(t.Year()) + (float64(t.YearDay())-0.5)/365.25

	switch {
	case y < 1900:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 1920:
		u := y - 1900
		return -2.79 + 1.494119*u - 0.0598939*u*u + 0.0061966*u*u*u - 0.000197*u*u*u*u
	case y < 1941:
		u := y - 1920
		return 21.20 + 0.84493*u - 0.076100*u*u + 0.0020936*u*u*u
	case y < 1961:
		u := y - 1950
		return 29.07 + 0.407*u - u*u/233 + u*u*u/2547
	case y < 1986:
		u := y - 1975
		return 45.45 + 1.067*u - u*u/260 - u*u*u/718
	case y < 2005:
		u := y - 2000
		return 63.86 + 0.3345*u - 0.060374*u*u + 0.0017275*u*u*u +
			0.000651814*u*u*u*u + 0.00002373599*u*u*u*u*u
	case y < 2050:
		u := y - 2000
		return 62.92 + 0.32217*u + 0.005589*u*u
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	}
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// for Julian centuries T since J2000.0 (Meeus Eq 22.2, low-order form).
func MeanObliquity(T float64) float64 {
	return 23.43929111 - 0.01300417*T - 1.638889e-7*T*T + 5.036111e-7*T*T*T
}

// Nutation returns the nutation in longitude and obliquity, both in
// degrees, for Julian centuries T since J2000.0. Uses the four dominant
// terms of the IAU 1980 theory (Meeus ch.22 abridged form, good to ~0.5").
func Nutation(T float64) (dPsi, dEps float64) {
	// Longitude of the ascending node of the Moon's mean orbit.
	omega := deg2rad(125.04452 - 1934.136261*T)
	// Mean longitudes of the Sun and Moon.
	ls := deg2rad(280.4665 + 36000.7698*T)
	lm := deg2rad(218.3165 + 481267.8813*T)

	// Coefficients in arc-seconds.
	dPsi = -17.20*math.Sin(omega) - 1.32*math.Sin(2*ls) - 0.23*math.Sin(2*lm) + 0.21*math.Sin(2*omega)
	dEps = 9.20*math.Cos(omega) + 0.57*math.Cos(2*ls) + 0.10*math.Cos(2*lm) - 0.09*math.Cos(2*omega)

	return dPsi / 3600.0, dEps / 3600.0
}

// TrueObliquity returns the true obliquity of the ecliptic (mean obliquity
// plus nutation in obliquity) in degrees for Julian centuries T.
func TrueObliquity(T float64) float64 {
	_, dEps := Nutation(T)
	return MeanObliquity(T) + dEps
}

// GMST calculates Greenwich Mean Sidereal Time in degrees for a given UTC time.
// Uses the IAU-82 model as described in Vallado "Fundamentals of Astrodynamics".
//
// Formula (Vallado Eq 3-47):
//
//	θ_GMST = 67310.54841 + (876600h + 8640184.812866)*T + 0.093104*T² - 6.2e-6*T³
//
// where T is Julian centuries of UT1 from J2000.0, result is in seconds of time.
func GMST(t time.Time) float64 {
	tUT1 := JulianCenturies(t)

	// GMST in seconds of time.
	// 876600h = 876600 * 3600 = 3155760000 seconds.
	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*tUT1*tUT1 -
		6.2e-6*tUT1*tUT1*tUT1

	// Normalize to [0, 86400) seconds, then convert to degrees.
	gmstSec = math.Mod(gmstSec, 86400.0)
	if gmstSec < 0 {
		gmstSec += 86400.0
	}
	return gmstSec / 86400.0 * 360.0
}

// LocalApparentSiderealTime returns the local apparent sidereal time in
// degrees for a UTC time and an observer longitude (degrees, east positive).
// Applies the equation of the equinoxes (nutation in longitude projected
// onto the equator).
func LocalApparentSiderealTime(t time.Time, lonDeg float64) float64 {
	T := JulianCenturies(t)
	dPsi, _ := Nutation(T)
	eps := TrueObliquity(T)
	lst := GMST(t) + dPsi*math.Cos(deg2rad(eps)) + lonDeg
	return Normalize360(lst)
}

// Normalize360 wraps an angle in degrees to the range [0, 360).
func Normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180.0 }
