package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/IRedDragonICY/shaum/internal/fiqh"
	"github.com/IRedDragonICY/shaum/internal/geo"
	"github.com/IRedDragonICY/shaum/internal/hijri"
	"github.com/IRedDragonICY/shaum/internal/metrics"
	"github.com/IRedDragonICY/shaum/internal/prayer"
	"github.com/IRedDragonICY/shaum/internal/visibility"
)

const maxRangeDays = 366

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// parseDate reads a YYYY-MM-DD query parameter, defaulting to today (UTC).
func parseDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: want YYYY-MM-DD", key, raw)
	}
	return d, nil
}

// parseObserver reads lat/lng and optional alt (metres) query parameters.
func parseObserver(r *http.Request) (geo.GeoCoordinate, error) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return geo.GeoCoordinate{}, fmt.Errorf("invalid lat %q", q.Get("lat"))
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		return geo.GeoCoordinate{}, fmt.Errorf("invalid lng %q", q.Get("lng"))
	}
	alt := 0.0
	if raw := q.Get("alt"); raw != "" {
		alt, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return geo.GeoCoordinate{}, fmt.Errorf("invalid alt %q", raw)
		}
	}
	return geo.NewCoordinateAlt(lat, lng, alt)
}

func parseRuleContext(r *http.Request) (fiqh.Context, error) {
	q := r.URL.Query()
	var ctx fiqh.Context

	if raw := q.Get("adjustment"); raw != "" {
		adj, err := strconv.Atoi(raw)
		if err != nil {
			return ctx, fmt.Errorf("invalid adjustment %q", raw)
		}
		ctx.Adjustment = adj
	}
	if raw := q.Get("madhab"); raw != "" {
		m, ok := fiqh.ParseMadhab(raw)
		if !ok {
			return ctx, fmt.Errorf("unknown madhab %q", raw)
		}
		ctx.Madhab = m
	}
	ctx.Strict = q.Get("strict") == "true"
	if err := ctx.Validate(); err != nil {
		return ctx, err
	}
	return ctx, nil
}

// handleFasting resolves the fasting ruling for one date, or for an
// inclusive date range when `end` is supplied.
func (s *Server) handleFasting(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ruleCtx, err := parseRuleContext(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if r.URL.Query().Get("end") != "" {
		end, err := parseDate(r, "end")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if end.Before(date) || end.Sub(date) > maxRangeDays*24*time.Hour {
			writeError(w, http.StatusBadRequest,
				fmt.Errorf("range must be ascending and at most %d days", maxRangeDays))
			return
		}
		results := fiqh.AnalyzeRange(r.Context(), date, end, ruleCtx)
		for _, res := range results {
			if res.Error == "" {
				metrics.RecordFastingAnalysis(res.Analysis.Primary.String())
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"days": results})
		return
	}

	analysis, err := fiqh.Analyze(date, ruleCtx)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, hijri.ErrConversion) {
			code = http.StatusUnprocessableEntity
		}
		writeError(w, code, err)
		return
	}
	metrics.RecordFastingAnalysis(analysis.Primary.String())
	writeJSON(w, http.StatusOK, analysis)
}

// prayerTimesResponse localizes the computed boundaries for the client.
type prayerTimesResponse struct {
	Date     string            `json:"date"`
	Location geo.GeoCoordinate `json:"location"`
	Preset   string            `json:"preset"`
	Timezone string            `json:"timezone"`
	Times    []prayerEntry     `json:"times"`
}

type prayerEntry struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

func (s *Server) handlePrayerTimes(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	obs, err := parseObserver(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	preset := r.URL.Query().Get("preset")
	if preset == "" {
		preset = "mabims"
	}
	params, ok := prayer.Preset(preset)
	if !ok {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("unknown preset %q: have %v", preset, prayer.PresetNames()))
		return
	}

	loc := time.UTC
	if tz := r.URL.Query().Get("tz"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown timezone %q", tz))
			return
		}
	}

	start := time.Now()
	times, err := prayer.Calculate(date, obs, params)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, prayer.ErrUnsolvableAngle) {
			code = http.StatusUnprocessableEntity
		} else if errors.Is(err, geo.ErrInvalidCoordinate) || errors.Is(err, prayer.ErrInvalidParams) {
			code = http.StatusBadRequest
		}
		writeError(w, code, err)
		return
	}
	metrics.ObservePrayerSolve(time.Since(start))

	resp := prayerTimesResponse{
		Date:     date.Format("2006-01-02"),
		Location: obs,
		Preset:   preset,
		Timezone: loc.String(),
	}
	for _, e := range times.Ordered() {
		resp.Times = append(resp.Times, prayerEntry{
			Name: e.Name,
			Time: e.Time.In(loc).Format("15:04"),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVisibility(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	obs, err := parseObserver(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	name := r.URL.Query().Get("criteria")
	if name == "" {
		name = "mabims"
	}
	criteria, ok := visibility.CriteriaPreset(name)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown criteria %q", name))
		return
	}

	sunset, ok := visibility.Sunset(date, obs)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Errorf("no sunset at %s on %s", obs, date.Format("2006-01-02")))
		return
	}

	report, err := visibility.Calculate(sunset, obs, criteria)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	metrics.RecordVisibility(report.MeetsCriteria)
	writeJSON(w, http.StatusOK, report)
}

// handleLocation geolocates the caller (or an explicit ?ip=) and caches
// the last successful answer so later requests survive upstream outages.
func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	if s.lookup == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("geolocation disabled"))
		return
	}

	ip := r.URL.Query().Get("ip")
	if ip == "" {
		ip = geo.ClientIP(r, s.trustProxy)
	}

	info, err := s.lookup.FromIP(r.Context(), ip)
	if err != nil {
		metrics.RecordGeoLookup(false)
		if s.locCache != nil {
			if cached, ts, cerr := s.locCache.LoadLatest(); cerr == nil {
				s.logger.Warn("lookup failed, serving cached location",
					"component", "api", "error", err, "cached_at", ts)
				writeJSON(w, http.StatusOK, map[string]any{
					"location": cached,
					"stale":    true,
					"fetched":  ts,
				})
				return
			}
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}
	metrics.RecordGeoLookup(true)

	if s.locCache != nil {
		if err := s.locCache.Write(info, time.Now()); err != nil {
			s.logger.Warn("location cache write failed", "component", "api", "error", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"location": info, "stale": false})
}
