// Package hijri converts Gregorian dates to the Hijri calendar with a
// signed day-offset adjustment for moon-sighting corrections.
//
// Conversion uses the arithmetic tabular calendar (30-year cycle of 10631
// days, civil epoch). Tabular dates track the observational Umm al-Qura
// calendar to within a day over the supported range; the adjustment
// parameter absorbs the residual along with sighting announcements.
package hijri

import (
	"errors"
	"fmt"
	"time"
)

// ErrConversion reports a Gregorian date outside the supported range.
var ErrConversion = errors.New("date outside supported Hijri range")

// Supported Gregorian year range, matching the reference conversion tables.
const (
	MinGregorianYear = 1938
	MaxGregorianYear = 2076
)

// Date is a Hijri calendar date. Month is 1-12, day 1-30.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Hijri month numbers used by the rule engine.
const (
	Muharram   = 1
	Rajab      = 7
	Ramadhan   = 9
	Shawwal    = 10
	DhulQadah  = 11
	DhulHijjah = 12
)

var monthNames = [13]string{
	"",
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Sha'ban",
	"Ramadhan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

// MonthName returns the English name of a Hijri month (1-12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return monthNames[month]
}

// MonthName returns the English name of the date's month.
func (d Date) MonthName() string { return MonthName(d.Month) }

func (d Date) String() string {
	return fmt.Sprintf("%d %s %d AH", d.Day, d.MonthName(), d.Year)
}

// Valid reports whether the date components are in range.
func (d Date) Valid() bool {
	return d.Year > 0 && d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= 30
}

// FromGregorian converts a Gregorian date to Hijri after shifting it by
// the given day adjustment (positive means the Hijri calendar runs ahead
// of the tabular conversion, i.e. the moon was sighted early).
func FromGregorian(date time.Time, adjustment int) (Date, error) {
	date = date.UTC().AddDate(0, 0, adjustment)

	if y := date.Year(); y < MinGregorianYear || y > MaxGregorianYear {
		return Date{}, fmt.Errorf("%w: %s (supported %d-%d)",
			ErrConversion, date.Format("2006-01-02"), MinGregorianYear, MaxGregorianYear)
	}

	return fromJDN(gregorianJDN(date.Year(), int(date.Month()), date.Day())), nil
}

// JDN returns the Julian Day Number of noon on the Hijri date.
func (d Date) JDN() int {
	return d.Day + (29*(d.Month-1)+d.Month/2) + (d.Year-1)*354 +
		(3+11*d.Year)/30 + hijriEpochJDN - 1
}

// ToGregorian converts the Hijri date back to a Gregorian civil date (UTC
// midnight), inverting the same tabular arithmetic.
func (d Date) ToGregorian() time.Time {
	return gregorianFromJDN(d.JDN())
}

// hijriEpochJDN is the Julian Day Number of 1 Muharram 1 AH in the civil
// (Friday) reckoning: 16 July 622 CE Julian.
const hijriEpochJDN = 1948440

// fromJDN converts a Julian Day Number to a tabular Hijri date using the
// standard integer algorithm (Kuwaiti algorithm).
func fromJDN(jdn int) Date {
	l := jdn - hijriEpochJDN + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	month := (24 * l) / 709
	day := l - (709*month)/24
	year := 30*n + j - 30

	return Date{Year: year, Month: month, Day: day}
}

// gregorianJDN returns the Julian Day Number (noon) for a Gregorian
// calendar date.
func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// gregorianFromJDN inverts gregorianJDN (Richards' algorithm).
func gregorianFromJDN(jdn int) time.Time {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
