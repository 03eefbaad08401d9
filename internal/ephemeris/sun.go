package ephemeris

import (
	"math"

	"github.com/IRedDragonICY/shaum/internal/astrotime"
)

// aberration is the fixed annual aberration correction applied to the
// Sun's geometric longitude, in degrees (20.49 arc-seconds).
const aberration = 0.00569

// centerTerm is one term of the Sun's equation of center: the amplitude is
// a polynomial in T (Julian centuries) multiplying sin(k*M), where M is
// the solar mean anomaly.
type centerTerm struct {
	k          int
	a0, a1, a2 float64
}

// centerSeries is the equation-of-center expansion from Meeus ch.25.
// Amplitudes in degrees.
var centerSeries = []centerTerm{
	{1, 1.914602, -0.004817, -0.000014},
	{2, 0.019993, -0.000101, 0},
	{3, 0.000289, 0, 0},
}

// sunAt evaluates the solar theory at T Julian centuries (TT) from J2000.0.
func sunAt(T float64) EclipticPosition {
	// Geometric mean longitude and mean anomaly (degrees).
	L0 := astrotime.Normalize360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := astrotime.Normalize360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := deg2rad(M)

	// Equation of center: fold over the term table.
	var C float64
	for _, term := range centerSeries {
		amp := term.a0 + term.a1*T + term.a2*T*T
		C += amp * math.Sin(float64(term.k)*Mrad)
	}

	// True longitude and true anomaly.
	trueLon := L0 + C
	nu := M + C

	// Eccentricity of Earth's orbit.
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T

	// Radius vector in AU.
	R := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(deg2rad(nu)))

	return EclipticPosition{
		LonDeg:   astrotime.Normalize360(trueLon - aberration),
		LatDeg:   0,
		Distance: R,
	}
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180.0 }
func rad2deg(rad float64) float64 { return rad * 180.0 / math.Pi }
