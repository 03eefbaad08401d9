package ephemeris

import (
	"math"

	"github.com/IRedDragonICY/shaum/internal/astrotime"
)

// lunarTerm is one periodic term of the lunar theory. The phase argument
// is d*D + m*M + mp*M' + f*F where D is the mean elongation of the Moon
// from the Sun, M the solar mean anomaly, M' the lunar mean anomaly and F
// the Moon's mean distance from its ascending node.
//
// Terms involving the solar anomaly M are scaled by E (or E squared for
// |m| == 2) to account for the secular decrease of Earth's orbital
// eccentricity.
type lunarTerm struct {
	d, m, mp, f int
	sinCoeff    float64 // longitude (1e-6 deg) or latitude (1e-6 deg)
	cosCoeff    float64 // distance (1e-3 km); zero for the latitude table
}

// lonDistSeries is Meeus table 47.a: the 60 largest periodic terms of the
// Moon's longitude (sine amplitudes, 1e-6 degrees) and distance (cosine
// amplitudes, 1e-3 km).
var lonDistSeries = []lunarTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
	{0, 1, 2, 0, -2120, 5751},
	{0, 2, 0, 0, -2069, 0},
	{2, -2, -1, 0, 2048, -4950},
	{2, 0, 1, -2, -1773, 4130},
	{2, 0, 0, 2, -1595, 0},
	{4, -1, -1, 0, 1215, -3958},
	{0, 0, 2, 2, -1110, 0},
	{3, 0, -1, 0, -892, 3258},
	{2, 1, 1, 0, -810, 2616},
	{4, -1, -2, 0, 759, -1897},
	{0, 2, -1, 0, -713, -2117},
	{2, 2, -1, 0, -700, 2354},
	{2, 1, -2, 0, 691, 0},
	{2, -1, 0, -2, 596, 0},
	{4, 0, 1, 0, 549, -1423},
	{0, 0, 4, 0, 537, -1117},
	{4, -1, 0, 0, 520, -1571},
	{1, 0, -2, 0, -487, -1739},
	{2, 1, 0, -2, -399, 0},
	{0, 0, 2, -2, -381, -4421},
	{1, 1, 1, 0, 351, 0},
	{3, 0, -2, 0, -340, 0},
	{4, 0, -3, 0, 330, 0},
	{2, -1, 2, 0, 327, 0},
	{0, 2, 1, 0, -323, 1165},
	{1, 1, -1, 0, 299, 0},
	{2, 0, 3, 0, 294, 0},
	{2, 0, -1, -2, 0, 8752},
}

// latSeries is Meeus table 47.b: the 60 largest periodic terms of the
// Moon's latitude (sine amplitudes, 1e-6 degrees).
var latSeries = []lunarTerm{
	{0, 0, 0, 1, 5128122, 0},
	{0, 0, 1, 1, 280602, 0},
	{0, 0, 1, -1, 277693, 0},
	{2, 0, 0, -1, 173237, 0},
	{2, 0, -1, 1, 55413, 0},
	{2, 0, -1, -1, 46271, 0},
	{2, 0, 0, 1, 32573, 0},
	{0, 0, 2, 1, 17198, 0},
	{2, 0, 1, -1, 9266, 0},
	{0, 0, 2, -1, 8822, 0},
	{2, -1, 0, -1, 8216, 0},
	{2, 0, -2, -1, 4324, 0},
	{2, 0, 1, 1, 4200, 0},
	{2, 1, 0, -1, -3359, 0},
	{2, -1, -1, 1, 2463, 0},
	{2, -1, 0, 1, 2211, 0},
	{2, -1, -1, -1, 2065, 0},
	{0, 1, -1, -1, -1870, 0},
	{4, 0, -1, -1, 1828, 0},
	{0, 1, 0, 1, -1794, 0},
	{0, 0, 0, 3, -1749, 0},
	{0, 1, -1, 1, -1565, 0},
	{1, 0, 0, 1, -1491, 0},
	{0, 1, 1, 1, -1475, 0},
	{0, 1, 1, -1, -1410, 0},
	{0, 1, 0, -1, -1344, 0},
	{1, 0, 0, -1, -1335, 0},
	{0, 0, 3, 1, 1107, 0},
	{4, 0, 0, -1, 1021, 0},
	{4, 0, -1, 1, 833, 0},
	{0, 0, 1, -3, 777, 0},
	{4, 0, -2, 1, 671, 0},
	{2, 0, 0, -3, 607, 0},
	{2, 0, 2, -1, 596, 0},
	{2, -1, 1, -1, 491, 0},
	{2, 0, -2, 1, -451, 0},
	{0, 0, 3, -1, 439, 0},
	{2, 0, 2, 1, 422, 0},
	{2, 0, -3, -1, 421, 0},
	{2, 1, -1, 1, -366, 0},
	{2, 1, 0, 1, -351, 0},
	{4, 0, 0, 1, 331, 0},
	{2, -1, 1, 1, 315, 0},
	{2, -2, 0, -1, 302, 0},
	{0, 0, 1, 3, -283, 0},
	{2, 1, 1, -1, -229, 0},
	{1, 1, 0, -1, 223, 0},
	{1, 1, 0, 1, 223, 0},
	{0, 1, -2, -1, -220, 0},
	{2, 1, -1, -1, -220, 0},
	{1, 0, 1, 1, -185, 0},
	{2, -1, -2, -1, 181, 0},
	{0, 1, 2, 1, -177, 0},
	{4, 0, -2, -1, 176, 0},
	{4, -1, -1, -1, 166, 0},
	{1, 0, 1, -1, -164, 0},
	{4, 0, 1, -1, 132, 0},
	{1, 0, -1, -1, -119, 0},
	{4, -1, 0, -1, 115, 0},
	{2, -2, 0, 1, 107, 0},
}

// moonMeanDistanceKm is the mean Earth-Moon distance added to the summed
// distance terms (Meeus ch.47).
const moonMeanDistanceKm = 385000.56

// moonAt evaluates the lunar theory at T Julian centuries (TT) from J2000.0.
func moonAt(T float64) EclipticPosition {
	// Fundamental arguments (degrees).
	Lp := astrotime.Normalize360(218.3164477 + 481267.88123421*T -
		0.0015786*T*T + T*T*T/538841 - T*T*T*T/65194000)
	D := astrotime.Normalize360(297.8501921 + 445267.1114034*T -
		0.0018819*T*T + T*T*T/545868 - T*T*T*T/113065000)
	M := astrotime.Normalize360(357.5291092 + 35999.0502909*T -
		0.0001536*T*T + T*T*T/24490000)
	Mp := astrotime.Normalize360(134.9633964 + 477198.8675055*T +
		0.0087414*T*T + T*T*T/69699 - T*T*T*T/14712000)
	F := astrotime.Normalize360(93.2720950 + 483202.0175233*T -
		0.0036539*T*T - T*T*T/3526000 + T*T*T*T/863310000)

	// Planetary perturbation arguments.
	A1 := astrotime.Normalize360(119.75 + 131.849*T)
	A2 := astrotime.Normalize360(53.09 + 479264.290*T)
	A3 := astrotime.Normalize360(313.45 + 481266.484*T)

	// Eccentricity correction factor.
	E := 1 - 0.002516*T - 0.0000074*T*T
	E2 := E * E

	sumL, sumR := foldLunar(lonDistSeries, D, M, Mp, F, E, E2)
	sumB, _ := foldLunar(latSeries, D, M, Mp, F, E, E2)

	// Additive terms: Venus (A1), Jupiter (A2) and flattening effects.
	sumL += 3958*sinDeg(A1) + 1962*sinDeg(Lp-F) + 318*sinDeg(A2)
	sumB += -2235*sinDeg(Lp) + 382*sinDeg(A3) +
		175*sinDeg(A1-F) + 175*sinDeg(A1+F) +
		127*sinDeg(Lp-Mp) - 115*sinDeg(Lp+Mp)

	return EclipticPosition{
		LonDeg:   astrotime.Normalize360(Lp + sumL/1e6),
		LatDeg:   sumB / 1e6,
		Distance: moonMeanDistanceKm + sumR/1000.0,
	}
}

// foldLunar sums a lunar term table at the given fundamental arguments,
// returning the sine (longitude/latitude) and cosine (distance) sums.
func foldLunar(series []lunarTerm, D, M, Mp, F, E, E2 float64) (sinSum, cosSum float64) {
	for _, t := range series {
		arg := deg2rad(float64(t.d)*D + float64(t.m)*M + float64(t.mp)*Mp + float64(t.f)*F)

		scale := 1.0
		switch t.m {
		case 1, -1:
			scale = E
		case 2, -2:
			scale = E2
		}

		sinSum += scale * t.sinCoeff * math.Sin(arg)
		cosSum += scale * t.cosCoeff * math.Cos(arg)
	}
	return sinSum, cosSum
}

func sinDeg(deg float64) float64 { return math.Sin(deg2rad(deg)) }

// HorizontalParallax returns the Moon's equatorial horizontal parallax in
// degrees for a geocentric distance in kilometers.
func HorizontalParallax(distanceKm float64) float64 {
	return rad2deg(math.Asin(6378.14 / distanceKm))
}
