// Package solver finds the instants at which a body's altitude crosses a
// target value. It uses a coarse scan to bracket a sign change followed by
// bisection, converging to sub-second precision in a bounded number of
// iterations.
package solver

import "time"

// AltitudeFunc returns the altitude in degrees at time t.
type AltitudeFunc func(t time.Time) float64

// Direction describes which way the altitude moves through the target.
type Direction int

const (
	// Rising means the altitude increases through the target value.
	Rising Direction = iota
	// Setting means the altitude decreases through the target value.
	Setting
)

const (
	coarseStep = 10 * time.Minute
	tolerance  = 500 * time.Millisecond
)

// FindCrossing searches [start, end] for the first time the altitude
// function crosses targetDeg in the given direction. The ok result is
// false when no crossing exists in the window (for example a polar day
// where the Sun never reaches the target altitude).
func FindCrossing(f AltitudeFunc, start, end time.Time, targetDeg float64, dir Direction) (time.Time, bool) {
	if !start.Before(end) {
		return time.Time{}, false
	}

	prevT := start
	prev := f(prevT) - targetDeg

	for t := start.Add(coarseStep); !t.After(end); t = t.Add(coarseStep) {
		cur := f(t) - targetDeg
		if crosses(prev, cur, dir) {
			return bisect(f, prevT, t, targetDeg, dir), true
		}
		prevT, prev = t, cur
	}

	// Close any partial step at the window edge.
	if prevT.Before(end) {
		cur := f(end) - targetDeg
		if crosses(prev, cur, dir) {
			return bisect(f, prevT, end, targetDeg, dir), true
		}
	}

	return time.Time{}, false
}

// FindTransit returns the time of maximum altitude in [start, end] by
// ternary search. Assumes a single maximum in the window, which holds for
// the Sun over any half-day interval.
func FindTransit(f AltitudeFunc, start, end time.Time) time.Time {
	lo, hi := start, end
	for hi.Sub(lo) > tolerance {
		third := hi.Sub(lo) / 3
		m1 := lo.Add(third)
		m2 := hi.Add(-third)
		if f(m1) < f(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}
	return lo.Add(hi.Sub(lo) / 2)
}

func crosses(a, b float64, dir Direction) bool {
	switch dir {
	case Rising:
		return a < 0 && b >= 0
	case Setting:
		return a > 0 && b <= 0
	}
	return a*b <= 0
}

func bisect(f AltitudeFunc, a, b time.Time, targetDeg float64, dir Direction) time.Time {
	altA := f(a) - targetDeg

	for b.Sub(a) > tolerance {
		mid := a.Add(b.Sub(a) / 2)
		altM := f(mid) - targetDeg
		if crosses(altA, altM, dir) {
			b = mid
		} else {
			a = mid
			altA = altM
		}
	}

	return a.Add(b.Sub(a) / 2)
}
