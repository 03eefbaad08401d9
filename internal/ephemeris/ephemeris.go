// Package ephemeris evaluates truncated periodic series for the
// geocentric positions of the Sun and Moon.
//
// The solar theory follows Meeus "Astronomical Algorithms" ch.25 and the
// lunar theory follows ch.47 (a truncation of ELP-2000/82). Both are
// implemented as folds over static coefficient tables so the term sets
// remain auditable against the published sources.
//
// All functions are total: implausibly far past/future instants degrade
// in accuracy as the secular polynomials diverge, but never fail.
package ephemeris

import (
	"time"

	"github.com/IRedDragonICY/shaum/internal/astrotime"
)

// EclipticPosition is a geocentric position in the ecliptic frame of date.
// Longitude and latitude are apparent (the Sun's longitude includes the
// fixed ~20.5 arc-second aberration correction; nutation is applied
// downstream in the transform stage). Distance is body-specific: AU for
// the Sun, kilometers for the Moon.
type EclipticPosition struct {
	LonDeg   float64
	LatDeg   float64
	Distance float64
}

// dynamicalCenturies converts a UTC instant to Julian centuries of
// dynamical time (TT) since J2000.0, applying the delta-T approximation.
func dynamicalCenturies(t time.Time) float64 {
	dt := astrotime.DeltaT(t)
	return (astrotime.JulianDate(t) + dt/86400.0 - astrotime.J2000) / astrotime.JulianCentury
}

// SunPosition returns the apparent geocentric ecliptic position of the Sun
// at the given instant. Longitude includes aberration; latitude is treated
// as zero at this precision tier. Distance is in AU.
func SunPosition(t time.Time) EclipticPosition {
	return sunAt(dynamicalCenturies(t))
}

// MoonPosition returns the apparent geocentric ecliptic position of the
// Moon at the given instant. Distance is in kilometers.
func MoonPosition(t time.Time) EclipticPosition {
	return moonAt(dynamicalCenturies(t))
}
