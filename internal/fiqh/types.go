// Package fiqh resolves the jurisprudential fasting status of a calendar
// day by evaluating a fixed, ordered rule set against the Hijri date and
// weekday.
package fiqh

import "strings"

// Status is the legal ruling (hukm) of fasting on a day. The numeric
// order is a core invariant used for conflict resolution:
// Haram > Wajib > SunnahMuakkadah > Sunnah > Makruh > Mubah.
type Status int

const (
	Mubah Status = iota
	Makruh
	Sunnah
	SunnahMuakkadah
	Wajib
	Haram
)

var statusNames = [...]string{
	"Mubah", "Makruh", "Sunnah", "Sunnah Muakkadah", "Wajib", "Haram",
}

func (s Status) String() string {
	if s < Mubah || s > Haram {
		return "Unknown"
	}
	return statusNames[s]
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// IsHaram reports whether fasting is forbidden.
func (s Status) IsHaram() bool { return s == Haram }

// IsWajib reports whether fasting is obligatory.
func (s Status) IsWajib() bool { return s == Wajib }

// IsSunnah reports whether fasting is recommended (either grade).
func (s Status) IsSunnah() bool { return s == Sunnah || s == SunnahMuakkadah }

// Type identifies the specific reason a fasting rule matched.
type Type string

const (
	TypeRamadhan     Type = "Ramadhan"
	TypeArafah       Type = "Arafah"
	TypeTasua        Type = "Tasu'a"
	TypeAshura       Type = "Ashura"
	TypeAyyamulBidh  Type = "Ayyamul Bidh"
	TypeMonday       Type = "Monday"
	TypeThursday     Type = "Thursday"
	TypeShawwal      Type = "Shawwal"
	TypeDaud         Type = "Daud"
	TypeEidAlFitr    Type = "Eid al-Fitr"
	TypeEidAlAdha    Type = "Eid al-Adha"
	TypeTashriq      Type = "Tashriq"
	TypeFridayOnly   Type = "Singled-out Friday"
	TypeSaturdayOnly Type = "Singled-out Saturday"
)

// Madhab is one of the four major Sunni schools of jurisprudence. All
// four currently share the singling-out rules; the dimension is kept so
// school-specific divergences have a place to land.
type Madhab int

const (
	Shafi Madhab = iota
	Hanafi
	Maliki
	Hanbali
)

var madhabNames = [...]string{"Shafi", "Hanafi", "Maliki", "Hanbali"}

func (m Madhab) String() string {
	if m < Shafi || m > Hanbali {
		return "Unknown"
	}
	return madhabNames[m]
}

// ParseMadhab maps a case-insensitive school name to its Madhab value.
func ParseMadhab(name string) (Madhab, bool) {
	for i, n := range madhabNames {
		if strings.EqualFold(name, n) {
			return Madhab(i), true
		}
	}
	return Shafi, false
}

// DaudStrategy controls what an alternate-day (Daud) schedule does when a
// fasting turn lands on a Haram day.
type DaudStrategy int

const (
	// SkipHaram forfeits the turn entirely; the alternation continues on
	// the next calendar day.
	SkipHaram DaudStrategy = iota
	// PostponeHaram defers the turn to the next permissible day.
	PostponeHaram
)
