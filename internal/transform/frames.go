// Package transform converts between the celestial coordinate frames used
// by the ephemeris consumers: geocentric ecliptic, equatorial (right
// ascension / declination) and topocentric horizontal (altitude /
// azimuth). The frame conversions produce geometric positions; parallax,
// refraction and horizon-dip corrections live in a separate stage so they
// can be disabled independently for testing.
package transform

import "math"

// Equatorial holds right ascension and declination in degrees.
// RA is kept in degrees (0-360) rather than hours for consistency with
// the rest of the angular math.
type Equatorial struct {
	RADeg  float64
	DecDeg float64
}

// Horizontal holds a topocentric altitude and azimuth in degrees.
// Azimuth: 0 = North, 90 = East, 180 = South, 270 = West.
type Horizontal struct {
	AltDeg float64
	AzDeg  float64
}

// ToEquatorial converts geocentric ecliptic coordinates (degrees) to
// equatorial coordinates for the given obliquity of the ecliptic (degrees).
func ToEquatorial(lonDeg, latDeg, obliquityDeg float64) Equatorial {
	lon := deg2rad(lonDeg)
	lat := deg2rad(latDeg)
	eps := deg2rad(obliquityDeg)

	sinLon := math.Sin(lon)

	ra := math.Atan2(sinLon*math.Cos(eps)-math.Tan(lat)*math.Sin(eps), math.Cos(lon))
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*sinLon)

	return Equatorial{
		RADeg:  rad2deg(ra),
		DecDeg: rad2deg(dec),
	}
}

// ToHorizontal converts equatorial coordinates to geometric horizontal
// coordinates for an observer at latitude latDeg, given the local apparent
// sidereal time in degrees. No atmospheric or parallax corrections are
// applied at this stage.
func ToHorizontal(eq Equatorial, latDeg, lstDeg float64) Horizontal {
	ha := deg2rad(lstDeg - eq.RADeg)
	lat := deg2rad(latDeg)
	dec := deg2rad(eq.DecDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	// Azimuth measured from North, clockwise.
	az := math.Atan2(math.Sin(ha), math.Cos(ha)*math.Sin(lat)-math.Tan(dec)*math.Cos(lat))
	az += math.Pi // atan2 form above measures from South
	if az < 0 {
		az += 2 * math.Pi
	}
	if az >= 2*math.Pi {
		az -= 2 * math.Pi
	}

	return Horizontal{
		AltDeg: rad2deg(alt),
		AzDeg:  rad2deg(az),
	}
}

// AngularSeparation returns the angle in degrees between two equatorial
// positions using the spherical law of cosines.
func AngularSeparation(a, b Equatorial) float64 {
	ra1 := deg2rad(a.RADeg)
	dec1 := deg2rad(a.DecDeg)
	ra2 := deg2rad(b.RADeg)
	dec2 := deg2rad(b.DecDeg)

	cosSep := math.Sin(dec1)*math.Sin(dec2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Cos(ra1-ra2)

	return rad2deg(math.Acos(clamp(cosSep, -1, 1)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180.0 }
func rad2deg(rad float64) float64 { return rad * 180.0 / math.Pi }
