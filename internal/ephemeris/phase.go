package ephemeris

import (
	"math"
	"time"

	"github.com/IRedDragonICY/shaum/internal/astrotime"
)

// SynodicMonth is the average length of the lunar cycle in days.
const SynodicMonth = 29.530588853

// MoonPhase describes the Moon's phase derived from the difference of the
// ecliptic longitudes of the Moon and the Sun.
type MoonPhase struct {
	Phase        float64 // phase fraction [0,1): 0=new, 0.5=full
	Elongation   float64 // Sun-to-Moon longitude difference, degrees [0,360)
	Illumination float64 // illuminated fraction [0,1]
	AgeDays      float64 // days since new moon [0, SynodicMonth)
	Waxing       bool
}

// Phase computes the Moon's phase at the given instant from the ephemeris
// longitudes of both bodies.
func Phase(t time.Time) MoonPhase {
	sun := SunPosition(t)
	moon := MoonPosition(t)

	elong := astrotime.Normalize360(moon.LonDeg - sun.LonDeg)
	phase := elong / 360.0

	return MoonPhase{
		Phase:        phase,
		Elongation:   elong,
		Illumination: (1 - math.Cos(deg2rad(elong))) / 2,
		AgeDays:      phase * SynodicMonth,
		Waxing:       elong < 180,
	}
}

// Name returns the conventional eight-phase name.
func (p MoonPhase) Name() string {
	switch {
	case p.Illumination < 0.01:
		return "New Moon"
	case p.Illumination > 0.99:
		return "Full Moon"
	case p.Illumination >= 0.49 && p.Illumination <= 0.51:
		if p.Waxing {
			return "First Quarter"
		}
		return "Third Quarter"
	case p.Illumination < 0.50:
		if p.Waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if p.Waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
