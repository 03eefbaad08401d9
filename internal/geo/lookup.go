package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultLookupURL = "http://ip-api.com/json/"

// LocationInfo is the place metadata produced by the IP lookup.
type LocationInfo struct {
	Coords  GeoCoordinate `json:"coords"`
	City    string        `json:"city,omitempty"`
	Region  string        `json:"region,omitempty"`
	Country string        `json:"country,omitempty"`
}

// DisplayName renders "City, Region, Country", falling back to bare
// coordinates when no place names are available.
func (l LocationInfo) DisplayName() string {
	var parts []string
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return l.Coords.String()
	}
	return strings.Join(parts, ", ")
}

// Lookup resolves coordinates and place names from IP addresses via the
// ip-api.com service. The astronomy/rule core never performs lookups
// itself; this collaborator exists only for the facade layer.
type Lookup struct {
	baseURL    string
	httpClient *http.Client
}

// NewLookup creates a Lookup against the given base URL (empty for the
// default public service).
func NewLookup(baseURL string) *Lookup {
	if baseURL == "" {
		baseURL = defaultLookupURL
	}
	return &Lookup{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ipAPIResponse mirrors the ip-api.com JSON payload.
type ipAPIResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
}

// FromIP resolves the location of the given IP address. An empty ip
// resolves the caller's own public address.
func (l *Lookup) FromIP(ctx context.Context, ip string) (LocationInfo, error) {
	url := l.baseURL + ip

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return LocationInfo{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return LocationInfo{}, fmt.Errorf("fetching location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LocationInfo{}, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, l.baseURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LocationInfo{}, fmt.Errorf("reading response body: %w", err)
	}

	var parsed ipAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return LocationInfo{}, fmt.Errorf("parsing location response: %w", err)
	}

	if parsed.Status != "success" {
		return LocationInfo{}, fmt.Errorf("location lookup failed: %s", parsed.Message)
	}

	coords, err := NewCoordinate(parsed.Lat, parsed.Lon)
	if err != nil {
		return LocationInfo{}, err
	}

	return LocationInfo{
		Coords:  coords,
		City:    parsed.City,
		Region:  parsed.RegionName,
		Country: parsed.Country,
	}, nil
}
