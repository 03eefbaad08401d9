// Package visibility evaluates crescent (hilal) visibility at sunset
// against configurable altitude/elongation criteria.
package visibility

import (
	"errors"
	"fmt"
	"time"

	"github.com/IRedDragonICY/shaum/internal/geo"
	"github.com/IRedDragonICY/shaum/internal/solver"
	"github.com/IRedDragonICY/shaum/internal/transform"
)

// ErrInvalidCriteria reports a negative visibility threshold.
var ErrInvalidCriteria = errors.New("invalid visibility criteria")

// Criteria holds the minimum topocentric moon altitude and Sun-Moon
// elongation, both in degrees, required to declare the crescent visible.
// The zero value is not usable: callers must supply thresholds explicitly
// or pick one of the named presets. Thresholds are policy, not physics,
// so none are compiled in as defaults.
type Criteria struct {
	MinAltitudeDeg   float64 `json:"min_altitude_deg"`
	MinElongationDeg float64 `json:"min_elongation_deg"`
}

// Named criteria presets. These are data; the evaluator has no
// preset-specific behavior.
var (
	// MABIMS is the 2021 criterion adopted by Indonesia, Malaysia,
	// Brunei and Singapore.
	MABIMS = Criteria{MinAltitudeDeg: 3, MinElongationDeg: 6.4}
	// Istanbul is the 1978 Istanbul declaration criterion.
	Istanbul = Criteria{MinAltitudeDeg: 5, MinElongationDeg: 8}
	// Danjon accepts any altitude once the Danjon limit on elongation
	// is cleared.
	Danjon = Criteria{MinAltitudeDeg: 0, MinElongationDeg: 7}
)

// CriteriaPreset resolves a preset by name ("mabims", "istanbul",
// "danjon"). Returns false for unknown names.
func CriteriaPreset(name string) (Criteria, bool) {
	switch name {
	case "mabims":
		return MABIMS, true
	case "istanbul":
		return Istanbul, true
	case "danjon":
		return Danjon, true
	}
	return Criteria{}, false
}

// Validate rejects negative thresholds.
func (c Criteria) Validate() error {
	if c.MinAltitudeDeg < 0 {
		return fmt.Errorf("%w: minimum altitude %.2f is negative", ErrInvalidCriteria, c.MinAltitudeDeg)
	}
	if c.MinElongationDeg < 0 {
		return fmt.Errorf("%w: minimum elongation %.2f is negative", ErrInvalidCriteria, c.MinElongationDeg)
	}
	return nil
}

// Report is the outcome of a visibility evaluation. Fully reproducible
// from its inputs; the moon altitude is reported even when negative so
// near-miss cases can be diagnosed.
type Report struct {
	Time                 time.Time `json:"time"`
	MoonAltitudeDeg      float64   `json:"moon_altitude_deg"`
	MoonAzimuthDeg       float64   `json:"moon_azimuth_deg"`
	SunAltitudeDeg       float64   `json:"sun_altitude_deg"`
	ElongationDeg        float64   `json:"elongation_deg"`
	EffectiveMinAltitude float64   `json:"effective_min_altitude_deg"`
	MeetsCriteria        bool      `json:"meets_criteria"`
	Criteria             Criteria  `json:"criteria"`
}

// Calculate evaluates crescent visibility at the given sunset instant for
// an observer. The altitude threshold is lowered by the horizon dip of the
// observer's elevation; the Moon's reported altitude itself stays fully
// corrected but unclamped.
func Calculate(sunset time.Time, obs geo.GeoCoordinate, c Criteria) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	if !obs.Valid() {
		return Report{}, fmt.Errorf("%w: %s", geo.ErrInvalidCoordinate, obs)
	}

	sun := transform.SunAt(sunset, obs)
	moon := transform.MoonAt(sunset, obs)

	elong := transform.AngularSeparation(sun.Equatorial, moon.Equatorial)
	effMinAlt := c.MinAltitudeDeg - transform.HorizonDip(obs.Alt)

	return Report{
		Time:                 sunset,
		MoonAltitudeDeg:      moon.Apparent.AltDeg,
		MoonAzimuthDeg:       moon.Apparent.AzDeg,
		SunAltitudeDeg:       sun.Apparent.AltDeg,
		ElongationDeg:        elong,
		EffectiveMinAltitude: effMinAlt,
		MeetsCriteria:        moon.Apparent.AltDeg >= effMinAlt && elong >= c.MinElongationDeg,
		Criteria:             c,
	}, nil
}

// Sunset finds the sunset instant (upper limb, standard refraction) for
// the given civil date and observer. The threshold is -0.833 degrees
// lowered further by horizon dip. The ok result is false on polar days
// with no sunset.
func Sunset(date time.Time, obs geo.GeoCoordinate) (time.Time, bool) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	// Search the evening half of the observer's local day. Offsetting by
	// longitude keeps the window centered on local noon-to-midnight.
	localNoon := dayStart.Add(time.Duration((12 - obs.Lng/15.0) * float64(time.Hour)))

	altAt := func(t time.Time) float64 {
		return transform.SunAt(t, obs).Apparent.AltDeg
	}

	threshold := -0.833 - transform.HorizonDip(obs.Alt)
	return solver.FindCrossing(altAt, localNoon, localNoon.Add(12*time.Hour), threshold, solver.Setting)
}
