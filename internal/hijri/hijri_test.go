package hijri

import (
	"errors"
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestFromGregorianKnownDates(t *testing.T) {
	tests := []struct {
		name string
		g    time.Time
		want Date
	}{
		{
			name: "first day of Ramadhan 1445",
			g:    date(2024, 3, 11),
			want: Date{Year: 1445, Month: 9, Day: 1},
		},
		{
			name: "Eid al-Fitr 1445",
			g:    date(2024, 4, 10),
			want: Date{Year: 1445, Month: 10, Day: 1},
		},
		{
			name: "mid Ramadhan 1445",
			g:    date(2024, 3, 25),
			want: Date{Year: 1445, Month: 9, Day: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGregorian(tt.g, 0)
			if err != nil {
				t.Fatalf("FromGregorian(%v): %v", tt.g, err)
			}
			if got != tt.want {
				t.Errorf("FromGregorian(%v) = %+v, want %+v", tt.g, got, tt.want)
			}
		})
	}
}

func TestFromGregorianAdjustment(t *testing.T) {
	// Shifting back one day from 1 Ramadhan lands in Sha'ban.
	got, err := FromGregorian(date(2024, 3, 11), -1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Month != 8 {
		t.Errorf("adjusted date in month %d, want Sha'ban (8)", got.Month)
	}

	// +1 moves to 2 Ramadhan.
	got, err = FromGregorian(date(2024, 3, 11), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Date{Year: 1445, Month: 9, Day: 2}) {
		t.Errorf("adjusted date = %+v, want 1445-09-02", got)
	}
}

func TestFromGregorianOutOfRange(t *testing.T) {
	for _, g := range []time.Time{date(1900, 1, 1), date(1937, 12, 31), date(2077, 1, 1)} {
		if _, err := FromGregorian(g, 0); !errors.Is(err, ErrConversion) {
			t.Errorf("FromGregorian(%v) error = %v, want ErrConversion", g, err)
		}
	}

	// The adjustment applies before the range check.
	if _, err := FromGregorian(date(2076, 12, 31), 1); !errors.Is(err, ErrConversion) {
		t.Errorf("adjustment past range end: error = %v, want ErrConversion", err)
	}
}

func TestRoundTrip(t *testing.T) {
	// Every 17 days across several decades: Gregorian -> Hijri -> Gregorian
	// must be the identity for the tabular calendar.
	for g := date(1940, 1, 1); g.Year() < 2075; g = g.AddDate(0, 0, 17) {
		h, err := FromGregorian(g, 0)
		if err != nil {
			t.Fatalf("FromGregorian(%v): %v", g, err)
		}
		if !h.Valid() {
			t.Fatalf("invalid Hijri date %+v from %v", h, g)
		}
		back := h.ToGregorian()
		if !back.Equal(g) {
			t.Fatalf("round trip %v -> %+v -> %v", g, h, back)
		}
	}
}

func TestMonthLengthsValid(t *testing.T) {
	// Walking day by day must never produce a day outside 1-30 or a month
	// outside 1-12, and consecutive days differ by exactly one JDN.
	prev, err := FromGregorian(date(2024, 1, 1), 0)
	if err != nil {
		t.Fatal(err)
	}
	for g := date(2024, 1, 2); g.Year() < 2026; g = g.AddDate(0, 0, 1) {
		h, err := FromGregorian(g, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !h.Valid() {
			t.Fatalf("invalid date %+v", h)
		}
		if h.JDN() != prev.JDN()+1 {
			t.Fatalf("JDN not contiguous: %+v (%d) after %+v (%d)", h, h.JDN(), prev, prev.JDN())
		}
		prev = h
	}
}

func TestMonthName(t *testing.T) {
	d := Date{Year: 1445, Month: 9, Day: 1}
	if d.MonthName() != "Ramadhan" {
		t.Errorf("month 9 name = %q, want Ramadhan", d.MonthName())
	}
	if MonthName(0) != "Unknown" || MonthName(13) != "Unknown" {
		t.Error("out-of-range months must map to Unknown")
	}
	if s := d.String(); s != "1 Ramadhan 1445 AH" {
		t.Errorf("String() = %q", s)
	}
}
