package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/IRedDragonICY/shaum/internal/ephemeris"
	"github.com/IRedDragonICY/shaum/internal/fiqh"
	"github.com/IRedDragonICY/shaum/internal/geo"
	"github.com/IRedDragonICY/shaum/internal/prayer"
	"github.com/IRedDragonICY/shaum/internal/transform"
	"github.com/IRedDragonICY/shaum/internal/visibility"
)

// One-shot diagnostic: dump today's astronomical state and rulings for a
// fixed observer (Jakarta) so the whole pipeline can be eyeballed.
func main() {
	obs, err := geo.NewCoordinateAlt(-6.1751, 106.8650, 8)
	if err != nil {
		fmt.Println("ERROR building observer:", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	fmt.Printf("Diagnostic for %s at %s\n\n", date.Format("2006-01-02"), obs)

	sun := ephemeris.SunPosition(now)
	moon := ephemeris.MoonPosition(now)
	fmt.Printf("Sun:  lon=%.5f° lat=%+.5f° dist=%.6f AU\n", sun.LonDeg, sun.LatDeg, sun.Distance)
	fmt.Printf("Moon: lon=%.5f° lat=%+.5f° dist=%.1f km\n", moon.LonDeg, moon.LatDeg, moon.Distance)

	phase := ephemeris.Phase(now)
	fmt.Printf("Phase: %s (%.1f%% illuminated, age %.1f days)\n\n",
		phase.Name(), phase.Illumination*100, phase.AgeDays)

	sunPos := transform.SunAt(now, obs)
	moonPos := transform.MoonAt(now, obs)
	fmt.Printf("Sun now:  alt=%+.3f° az=%.3f°\n", sunPos.Apparent.AltDeg, sunPos.Apparent.AzDeg)
	fmt.Printf("Moon now: alt=%+.3f° az=%.3f°\n\n", moonPos.Apparent.AltDeg, moonPos.Apparent.AzDeg)

	params, _ := prayer.Preset("mabims")
	times, err := prayer.Calculate(date, obs, params)
	if err != nil {
		fmt.Println("ERROR computing prayer times:", err)
	} else {
		fmt.Println("Prayer times (UTC):")
		for _, e := range times.Ordered() {
			fmt.Printf("  %-8s %s\n", e.Name, e.Time.Format("15:04"))
		}
		fmt.Println()
	}

	if sunset, ok := visibility.Sunset(date, obs); ok {
		criteria, _ := visibility.CriteriaPreset("mabims")
		report, err := visibility.Calculate(sunset, obs, criteria)
		if err != nil {
			fmt.Println("ERROR evaluating visibility:", err)
		} else {
			fmt.Printf("Sunset %s: moon alt=%+.3f° elong=%.3f° meets MABIMS=%v\n\n",
				sunset.Format(time.RFC3339), report.MoonAltitudeDeg,
				report.ElongationDeg, report.MeetsCriteria)
		}
	} else {
		fmt.Println("No sunset today at this location")
	}

	analysis, err := fiqh.Analyze(date, fiqh.Context{})
	if err != nil {
		fmt.Println("ERROR analyzing fasting status:", err)
		os.Exit(1)
	}
	fmt.Printf("Hijri: %s\n", analysis.Hijri)
	fmt.Printf("Fasting: %s\n", analysis.Explain())

	week := fiqh.AnalyzeRange(context.Background(), date, date.AddDate(0, 0, 6), fiqh.Context{})
	fmt.Println("\nNext 7 days:")
	for _, d := range week {
		if d.Error != "" {
			fmt.Printf("  %s  ERROR %s\n", d.Date.Format("2006-01-02"), d.Error)
			continue
		}
		fmt.Printf("  %s  %-12s %s\n", d.Date.Format("2006-01-02"),
			d.Analysis.Hijri, d.Analysis.Primary)
	}
}
