package transform

import (
	"time"

	"github.com/IRedDragonICY/shaum/internal/astrotime"
	"github.com/IRedDragonICY/shaum/internal/ephemeris"
	"github.com/IRedDragonICY/shaum/internal/geo"
)

// BodyPosition bundles every frame of one body's position at one instant,
// as produced by the full pipeline: ephemeris series, frame transforms,
// then parallax and refraction corrections.
type BodyPosition struct {
	Ecliptic   ephemeris.EclipticPosition
	Equatorial Equatorial
	Geometric  Horizontal // before corrections
	Apparent   Horizontal // after parallax + refraction
}

// SunAt runs the full pipeline for the Sun at instant t for the given
// observer. Nutation in longitude is folded into the ecliptic longitude
// before the equatorial conversion; the equatorial conversion uses the
// true obliquity.
func SunAt(t time.Time, obs geo.GeoCoordinate) BodyPosition {
	ecl := ephemeris.SunPosition(t)
	pos := toTopocentric(t, obs, ecl)
	parallax := SunHorizontalParallax(ecl.Distance)
	pos.Apparent = Apply(pos.Geometric, parallax)
	return pos
}

// MoonAt runs the full pipeline for the Moon. The Moon's horizontal
// parallax (~1 degree) dominates the correction stage.
func MoonAt(t time.Time, obs geo.GeoCoordinate) BodyPosition {
	ecl := ephemeris.MoonPosition(t)
	pos := toTopocentric(t, obs, ecl)
	parallax := ephemeris.HorizontalParallax(ecl.Distance)
	pos.Apparent = Apply(pos.Geometric, parallax)
	return pos
}

// toTopocentric applies nutation to the ecliptic longitude and converts
// through the equatorial frame to geometric horizontal coordinates.
func toTopocentric(t time.Time, obs geo.GeoCoordinate, ecl ephemeris.EclipticPosition) BodyPosition {
	T := astrotime.JulianCenturies(t)
	dPsi, _ := Nutation(T)
	eps := astrotime.TrueObliquity(T)

	eq := ToEquatorial(ecl.LonDeg+dPsi, ecl.LatDeg, eps)
	lst := astrotime.LocalApparentSiderealTime(t, obs.Lng)

	return BodyPosition{
		Ecliptic:   ecl,
		Equatorial: eq,
		Geometric:  ToHorizontal(eq, obs.Lat, lst),
	}
}

// Nutation re-exports the nutation in longitude and obliquity (degrees)
// so pipeline callers need not import astrotime directly.
func Nutation(T float64) (dPsi, dEps float64) {
	return astrotime.Nutation(T)
}
