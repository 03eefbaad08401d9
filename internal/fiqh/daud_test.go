package fiqh

import (
	"testing"
	"time"
)

func collectDates(t *testing.T, start, end time.Time, ctx Context) []time.Time {
	t.Helper()
	return NewDaudSchedule(start, end, ctx).Collect()
}

func TestDaudAlternation(t *testing.T) {
	// A stretch with no Haram days: 2024-05-19 through 2024-05-28.
	dates := collectDates(t, day(2024, 5, 19), day(2024, 5, 28), Context{})

	want := []time.Time{
		day(2024, 5, 19), day(2024, 5, 21), day(2024, 5, 23),
		day(2024, 5, 25), day(2024, 5, 27),
	}
	if len(dates) != len(want) {
		t.Fatalf("got %d fasting days %v, want %d", len(dates), dates, len(want))
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("day %d = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestDaudSpacing(t *testing.T) {
	// Consecutive fasting days are always at least two calendar days apart:
	// the defining property of alternate-day fasting.
	dates := collectDates(t, day(2024, 5, 1), day(2024, 7, 31), Context{})
	if len(dates) < 30 {
		t.Fatalf("suspiciously few fasting days: %d", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if gap := dates[i].Sub(dates[i-1]); gap < 48*time.Hour {
			t.Errorf("gap between %v and %v is %v, want >= 48h", dates[i-1], dates[i], gap)
		}
	}
}

func TestDaudSkipHaram(t *testing.T) {
	// Eid al-Fitr (2024-04-10) lands on a fasting turn. SkipHaram forfeits
	// it; the alternation continues as if the day had been fasted.
	dates := collectDates(t, day(2024, 4, 8), day(2024, 4, 14), Context{Daud: SkipHaram})

	want := []time.Time{day(2024, 4, 8), day(2024, 4, 12), day(2024, 4, 14)}
	if len(dates) != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Fatalf("got %v, want %v", dates, want)
		}
	}
}

func TestDaudPostponeHaram(t *testing.T) {
	// PostponeHaram defers the Eid turn to the first permissible day.
	dates := collectDates(t, day(2024, 4, 8), day(2024, 4, 14), Context{Daud: PostponeHaram})

	want := []time.Time{day(2024, 4, 8), day(2024, 4, 11), day(2024, 4, 13)}
	if len(dates) != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Fatalf("got %v, want %v", dates, want)
		}
	}
}

func TestDaudNeverFastsHaram(t *testing.T) {
	// Whatever the strategy, no emitted date may be Haram. Sweep a range
	// containing Eid al-Fitr, Eid al-Adha and the Tashriq days.
	for _, strat := range []DaudStrategy{SkipHaram, PostponeHaram} {
		dates := collectDates(t, day(2024, 4, 1), day(2024, 6, 30), Context{Daud: strat})
		for _, d := range dates {
			a, err := Analyze(d, Context{})
			if err != nil {
				t.Fatal(err)
			}
			if a.Primary.IsHaram() {
				t.Errorf("strategy %v emitted Haram day %v (%v)", strat, d, a.Reasons)
			}
		}
	}
}

func TestDaudExhaustion(t *testing.T) {
	s := NewDaudSchedule(day(2024, 5, 19), day(2024, 5, 20), Context{})

	first, ok := s.Next()
	if !ok || !first.Date.Equal(day(2024, 5, 19)) {
		t.Fatalf("first = %v ok=%v", first.Date, ok)
	}
	if _, ok := s.Next(); ok {
		t.Error("schedule past its end must report done")
	}
}
