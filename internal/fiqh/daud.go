package fiqh

import "time"

// DaudDay is one step of an alternate-day schedule. Each step carries its
// own conversion error because every date requires an independent Hijri
// resolution; a single bad date does not poison the rest of the sequence.
type DaudDay struct {
	Date time.Time
	Err  error
}

// DaudSchedule lazily walks calendar days emitting the dates on which an
// alternate-day (Daud) faster should fast. Haram days are handled per the
// configured strategy: SkipHaram forfeits the turn, PostponeHaram defers
// it to the next permissible day.
//
// The schedule is restartable: construct a new one from any start date.
type DaudSchedule struct {
	current    time.Time
	end        time.Time
	ctx        Context
	shouldFast bool
}

// NewDaudSchedule creates a schedule over [start, end].
func NewDaudSchedule(start, end time.Time, ctx Context) *DaudSchedule {
	return &DaudSchedule{
		current:    time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		end:        time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC),
		ctx:        ctx,
		shouldFast: true,
	}
}

// Next advances to the next fasting date. Returns false when the schedule
// is exhausted. A returned DaudDay with a non-nil Err represents a date
// whose Hijri conversion failed; the iteration can still continue.
func (s *DaudSchedule) Next() (DaudDay, bool) {
	for !s.current.After(s.end) {
		date := s.current
		s.current = s.current.AddDate(0, 0, 1)

		analysis, err := Analyze(date, s.ctx)
		if err != nil {
			// Surface the failed step; the turn is consumed so the
			// alternation stays aligned with the calendar.
			if s.shouldFast {
				s.shouldFast = false
				return DaudDay{Date: date, Err: err}, true
			}
			s.shouldFast = true
			continue
		}

		if analysis.Primary.IsHaram() {
			if s.ctx.Daud == SkipHaram {
				// Turn forfeited; alternation moves on.
				s.shouldFast = !s.shouldFast
			}
			// PostponeHaram keeps the pending turn for the next day.
			continue
		}

		if s.shouldFast {
			s.shouldFast = false
			return DaudDay{Date: date}, true
		}
		s.shouldFast = true
	}
	return DaudDay{}, false
}

// Collect drains the schedule into a slice, dropping failed steps.
// Intended for bounded ranges.
func (s *DaudSchedule) Collect() []time.Time {
	var dates []time.Time
	for {
		day, ok := s.Next()
		if !ok {
			return dates
		}
		if day.Err == nil {
			dates = append(dates, day.Date)
		}
	}
}
