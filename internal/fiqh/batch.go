package fiqh

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// DayResult pairs a date with its analysis or conversion error.
type DayResult struct {
	Date     time.Time `json:"date"`
	Analysis Analysis  `json:"analysis"`
	Error    string    `json:"error,omitempty"`
}

// AnalyzeRange analyzes every day in [start, end] concurrently, bounded
// by a semaphore sized to the CPU count. Results are returned in calendar
// order regardless of completion order. Rule evaluation is pure, so days
// can be processed in parallel without coordination.
func AnalyzeRange(ctx context.Context, start, end time.Time, ruleCtx Context) []DayResult {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return nil
	}

	days := int(end.Sub(start).Hours()/24) + 1
	results := make([]DayResult, days)
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = DayResult{
					Date:  start.AddDate(0, 0, idx),
					Error: "cancelled",
				}
				return
			}

			date := start.AddDate(0, 0, idx)
			analysis, err := Analyze(date, ruleCtx)
			if err != nil {
				results[idx] = DayResult{Date: date, Error: err.Error()}
				return
			}
			results[idx] = DayResult{Date: date, Analysis: analysis}
		}(i)
	}

	wg.Wait()
	return results
}
