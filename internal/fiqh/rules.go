package fiqh

import (
	"fmt"
	"strings"
	"time"

	"github.com/IRedDragonICY/shaum/internal/geo"
	"github.com/IRedDragonICY/shaum/internal/hijri"
	"github.com/IRedDragonICY/shaum/internal/visibility"
)

// Rule is a caller-supplied fasting rule. It reports whether the day
// matches, and if so the reason tag and the status it argues for. The
// result feeds the same conflict resolution as the built-in rules: it
// can add a reason and raise the primary status, never lower it.
type Rule func(h hijri.Date, weekday time.Weekday) (Status, Type, bool)

// Context configures rule evaluation. The zero value is usable: no
// adjustment, Shafi school, skip strategy, non-strict.
type Context struct {
	// Adjustment shifts the Hijri conversion by whole days to match a
	// local moon-sighting announcement. Clamped to [-30, 30]; strict
	// mode narrows the accepted range to [-2, 2].
	Adjustment int
	Madhab     Madhab
	Daud       DaudStrategy
	// Strict rejects adjustments outside [-2, 2] instead of clamping.
	Strict bool
	// CustomRules run after the built-in list, in order. Eid and Tashriq
	// days short-circuit before they are reached: the prohibition there
	// is absolute.
	CustomRules []Rule
}

// Validate enforces the adjustment bounds. Non-strict contexts are
// normalized rather than rejected.
func (c *Context) Validate() error {
	if c.Strict && (c.Adjustment < -2 || c.Adjustment > 2) {
		return fmt.Errorf("adjustment %d outside strict bounds [-2, 2]", c.Adjustment)
	}
	if c.Adjustment < -30 {
		c.Adjustment = -30
	}
	if c.Adjustment > 30 {
		c.Adjustment = 30
	}
	return nil
}

// Analysis is the resolved fasting ruling for one day. Derived per call,
// never mutated.
type Analysis struct {
	Date    time.Time  `json:"date"`
	Hijri   hijri.Date `json:"hijri"`
	Primary Status     `json:"status"`
	Reasons []Type     `json:"reasons,omitempty"`
}

// HasReason reports whether the given fasting type is among the matched
// reasons.
func (a Analysis) HasReason(t Type) bool {
	for _, r := range a.Reasons {
		if r == t {
			return true
		}
	}
	return false
}

// Explain renders a deterministic description assembled from the matched
// reason set and the primary status.
func (a Analysis) Explain() string {
	if len(a.Reasons) == 0 {
		return fmt.Sprintf("%s: %s (no special fasting rule applies)", a.Hijri, a.Primary)
	}
	names := make([]string, len(a.Reasons))
	for i, r := range a.Reasons {
		names[i] = string(r)
	}
	return fmt.Sprintf("%s: %s — %s", a.Hijri, a.Primary, strings.Join(names, ", "))
}

// Analyze resolves the fasting status for the civil date of the given
// instant. The only failure mode is the Hijri conversion being out of
// range; rule evaluation itself is total.
func Analyze(date time.Time, ctx Context) (Analysis, error) {
	if err := ctx.Validate(); err != nil {
		return Analysis{}, err
	}

	h, err := hijri.FromGregorian(date, ctx.Adjustment)
	if err != nil {
		return Analysis{}, err
	}

	status, reasons := resolve(h, date.UTC().Weekday(), ctx.CustomRules)
	return Analysis{
		Date:    time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Hijri:   h,
		Primary: status,
		Reasons: reasons,
	}, nil
}

// AnalyzeAt resolves the fasting status for an instant, shifting the
// effective date forward by one day when the instant falls after local
// sunset (in Islamic reckoning the next day begins at Maghrib). The
// coordinate is optional; without it the civil date is used as-is.
func AnalyzeAt(instant time.Time, ctx Context, obs *geo.GeoCoordinate) (Analysis, error) {
	date := instant.UTC()
	if obs != nil {
		if sunset, ok := visibility.Sunset(date, *obs); ok && date.After(sunset) {
			date = date.AddDate(0, 0, 1)
		}
	}
	return Analyze(date, ctx)
}

// resolve runs the ordered rule list. A date may match several rules; the
// primary status is the maximum under the total order, with two special
// cases: Eid and Tashriq days return Haram immediately with no further
// tags, and the Friday/Saturday singling-out rules only fire when no
// non-weekday reason matched (a stronger independent reason removes the
// makruh of singling the day out). Custom rules run last.
func resolve(h hijri.Date, weekday time.Weekday, custom []Rule) (Status, []Type) {
	// Unconditional prohibitions, top of the order.
	switch {
	case h.Month == hijri.Shawwal && h.Day == 1:
		return Haram, []Type{TypeEidAlFitr}
	case h.Month == hijri.DhulHijjah && h.Day == 10:
		return Haram, []Type{TypeEidAlAdha}
	case h.Month == hijri.DhulHijjah && h.Day >= 11 && h.Day <= 13:
		return Haram, []Type{TypeTashriq}
	}

	status := Mubah
	var reasons []Type

	match := func(t Type, s Status) {
		reasons = append(reasons, t)
		if s > status {
			status = s
		}
	}

	if h.Month == hijri.Ramadhan {
		match(TypeRamadhan, Wajib)
	}
	if h.Month == hijri.DhulHijjah && h.Day == 9 {
		match(TypeArafah, SunnahMuakkadah)
	}
	if h.Month == hijri.Muharram && h.Day == 10 {
		match(TypeAshura, SunnahMuakkadah)
	}
	if h.Month == hijri.Muharram && h.Day == 9 {
		match(TypeTasua, Sunnah)
	}
	// The white days are subsumed by the obligatory fast in Ramadhan, so
	// the tag only fires outside it.
	if h.Month != hijri.Ramadhan && h.Day >= 13 && h.Day <= 15 {
		match(TypeAyyamulBidh, Sunnah)
	}
	if h.Month == hijri.Shawwal && h.Day > 1 {
		match(TypeShawwal, Sunnah)
	}

	// Weekday rules are kept after the date rules so the singling-out
	// suppression below can key off the non-weekday match count.
	nonWeekday := len(reasons)

	switch weekday {
	case time.Monday:
		match(TypeMonday, Sunnah)
	case time.Thursday:
		match(TypeThursday, Sunnah)
	}

	// Singling out Friday or Saturday is makruh only when the day is
	// fasted for no other non-weekday reason. All four schools carry
	// this rule today.
	if nonWeekday == 0 && status == Mubah {
		switch weekday {
		case time.Friday:
			match(TypeFridayOnly, Makruh)
		case time.Saturday:
			match(TypeSaturdayOnly, Makruh)
		}
	}

	for _, rule := range custom {
		if s, t, ok := rule(h, weekday); ok {
			match(t, s)
		}
	}

	return status, reasons
}
