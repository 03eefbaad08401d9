package transform

import "math"

// refractionFloor is the geometric altitude below which refraction is not
// applied. The empirical formula is not valid when extrapolated deep below
// the horizon; bodies there are simply reported as below horizon.
const refractionFloor = -2.0

// sunParallaxArcsec is the solar horizontal parallax at 1 AU.
const sunParallaxArcsec = 8.794

// ApparentAltitude applies the fixed correction order to a geometric
// topocentric-candidate altitude: first the translation from geocenter to
// the observer's surface location (horizontal parallax), then atmospheric
// refraction. The horizon-dip correction is intentionally absent here —
// dip widens the visible horizon and therefore adjusts thresholds, not
// body positions (see HorizonDip).
func ApparentAltitude(geomAltDeg, horizParallaxDeg float64) float64 {
	alt := geomAltDeg - horizParallaxDeg*math.Cos(deg2rad(geomAltDeg))
	return alt + Refraction(alt)
}

// Apply runs the correction pipeline over a full horizontal position.
// Azimuth is unchanged; parallax in azimuth is below the engine's
// precision tier.
func Apply(pos Horizontal, horizParallaxDeg float64) Horizontal {
	return Horizontal{
		AltDeg: ApparentAltitude(pos.AltDeg, horizParallaxDeg),
		AzDeg:  pos.AzDeg,
	}
}

// Refraction returns the atmospheric refraction in degrees for a geometric
// altitude, using Bennett's empirical formula at standard pressure and
// temperature. Returns zero below the validity floor.
func Refraction(altDeg float64) float64 {
	if altDeg < refractionFloor {
		return 0
	}
	// Bennett (1982): R = 1.02 / tan(h + 10.3/(h + 5.11)) arc-minutes.
	r := 1.02 / math.Tan(deg2rad(altDeg+10.3/(altDeg+5.11)))
	return r / 60.0
}

// HorizonDip returns the dip of the sea horizon in degrees for an observer
// elevation in meters. Dip is non-decreasing in elevation and zero at or
// below sea level. Callers subtract it from their horizon threshold so an
// elevated observer sees low bodies earlier and longer.
func HorizonDip(elevationM float64) float64 {
	if elevationM <= 0 {
		return 0
	}
	return 0.0293 * math.Sqrt(elevationM)
}

// SunHorizontalParallax returns the Sun's horizontal parallax in degrees
// for a distance in AU. Negligible at this precision tier (~9 arc-seconds)
// but applied uniformly with the Moon for symmetry.
func SunHorizontalParallax(distanceAU float64) float64 {
	return sunParallaxArcsec / distanceAU / 3600.0
}
