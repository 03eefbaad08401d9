// Package prayer derives prayer times by solving for the instants at
// which the Sun's corrected altitude crosses configured thresholds.
package prayer

import (
	"errors"
	"fmt"
	"time"

	"github.com/IRedDragonICY/shaum/internal/geo"
	"github.com/IRedDragonICY/shaum/internal/solver"
	"github.com/IRedDragonICY/shaum/internal/transform"
)

// ErrUnsolvableAngle reports that the Sun never crosses a required
// altitude threshold at the given latitude and date (polar regions).
var ErrUnsolvableAngle = errors.New("sun never reaches required altitude")

// horizonAltitude is the standard rise/set threshold: solar semidiameter
// plus mean refraction at the horizon.
const horizonAltitude = -0.833

// Times holds the computed prayer boundaries for one date, in UTC.
// Immutable after construction.
type Times struct {
	Imsak   time.Time `json:"imsak"`
	Fajr    time.Time `json:"fajr"`
	Sunrise time.Time `json:"sunrise"`
	Dhuhr   time.Time `json:"dhuhr"`
	Maghrib time.Time `json:"maghrib"`
	Isha    time.Time `json:"isha"`
}

// Entry is one named prayer boundary.
type Entry struct {
	Name string    `json:"name"`
	Time time.Time `json:"time"`
}

// Ordered returns the boundaries in chronological order of the day.
func (t Times) Ordered() []Entry {
	return []Entry{
		{"imsak", t.Imsak},
		{"fajr", t.Fajr},
		{"sunrise", t.Sunrise},
		{"dhuhr", t.Dhuhr},
		{"maghrib", t.Maghrib},
		{"isha", t.Isha},
	}
}

// Calculate computes the prayer times for the civil date of the given
// instant (its UTC year/month/day) at the observer location.
//
// Each angle-defined boundary is solved iteratively: the Sun's declination
// drifts through the day, so a bracketing scan plus bisection on the
// corrected altitude converges where a closed-form hour angle would not.
// Horizon-type events (sunrise, maghrib) additionally lower their
// threshold by the horizon dip of the observer's elevation.
func Calculate(date time.Time, obs geo.GeoCoordinate, p Params) (Times, error) {
	if !obs.Valid() {
		return Times{}, fmt.Errorf("%w: %s", geo.ErrInvalidCoordinate, obs)
	}
	if err := p.Validate(); err != nil {
		return Times{}, err
	}

	date = date.UTC()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	// Anchor the search windows on the observer's approximate local noon
	// so each boundary has a single crossing in its half-day window.
	localNoon := dayStart.Add(time.Duration((12 - obs.Lng/15.0) * float64(time.Hour)))
	morningStart := localNoon.Add(-12 * time.Hour)
	eveningEnd := localNoon.Add(12 * time.Hour)

	altAt := func(t time.Time) float64 {
		return transform.SunAt(t, obs).Apparent.AltDeg
	}

	dip := transform.HorizonDip(obs.Alt)
	horizon := horizonAltitude - dip

	fajr, ok := solver.FindCrossing(altAt, morningStart, localNoon, p.FajrAngleDeg, solver.Rising)
	if !ok {
		return Times{}, unsolvable("fajr", p.FajrAngleDeg, obs, date)
	}
	sunrise, ok := solver.FindCrossing(altAt, morningStart, localNoon, horizon, solver.Rising)
	if !ok {
		return Times{}, unsolvable("sunrise", horizon, obs, date)
	}
	maghrib, ok := solver.FindCrossing(altAt, localNoon, eveningEnd, horizon, solver.Setting)
	if !ok {
		return Times{}, unsolvable("maghrib", horizon, obs, date)
	}

	var isha time.Time
	if p.IshaOffset > 0 {
		isha = maghrib.Add(p.IshaOffset)
	} else {
		isha, ok = solver.FindCrossing(altAt, localNoon, eveningEnd, p.IshaAngleDeg, solver.Setting)
		if !ok {
			return Times{}, unsolvable("isha", p.IshaAngleDeg, obs, date)
		}
	}

	dhuhr := solver.FindTransit(altAt, localNoon.Add(-3*time.Hour), localNoon.Add(3*time.Hour))
	imsak := fajr.Add(-p.ImsakOffset)

	t := Times{
		Imsak:   imsak,
		Fajr:    fajr,
		Sunrise: sunrise,
		Dhuhr:   dhuhr,
		Maghrib: maghrib,
		Isha:    isha,
	}
	return t.withIhtiyat(p.Ihtiyat).rounded(p.RoundTo), nil
}

// withIhtiyat applies the safety margin. Direction depends on which side
// of the day the boundary falls: dawn-side times shift earlier and
// dusk-side times shift later so the margin always errs toward caution.
func (t Times) withIhtiyat(d time.Duration) Times {
	if d == 0 {
		return t
	}
	return Times{
		Imsak:   t.Imsak.Add(-d),
		Fajr:    t.Fajr.Add(-d),
		Sunrise: t.Sunrise.Add(-d),
		Dhuhr:   t.Dhuhr.Add(d),
		Maghrib: t.Maghrib.Add(d),
		Isha:    t.Isha.Add(d),
	}
}

// rounded rounds every boundary to the given granularity, half up.
func (t Times) rounded(gran time.Duration) Times {
	if gran == 0 {
		return t
	}
	return Times{
		Imsak:   t.Imsak.Round(gran),
		Fajr:    t.Fajr.Round(gran),
		Sunrise: t.Sunrise.Round(gran),
		Dhuhr:   t.Dhuhr.Round(gran),
		Maghrib: t.Maghrib.Round(gran),
		Isha:    t.Isha.Round(gran),
	}
}

func unsolvable(name string, angle float64, obs geo.GeoCoordinate, date time.Time) error {
	return fmt.Errorf("%w: %s at %.1f° for %s on %s",
		ErrUnsolvableAngle, name, angle, obs, date.Format("2006-01-02"))
}
