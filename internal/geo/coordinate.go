// Package geo holds observer geography: the GeoCoordinate value type and
// the IP-based location collaborator.
package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate reports a latitude or longitude outside its valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// GeoCoordinate is an observer location. Latitude in [-90, 90] degrees
// (north positive), longitude in [-180, 180] degrees (east positive),
// altitude in meters above sea level (>= 0).
type GeoCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	Alt float64 `json:"alt,omitempty"`
}

// NewCoordinate validates and constructs a sea-level GeoCoordinate.
func NewCoordinate(lat, lng float64) (GeoCoordinate, error) {
	return NewCoordinateAlt(lat, lng, 0)
}

// NewCoordinateAlt validates and constructs a GeoCoordinate with an
// observer altitude in meters. Negative altitudes are clamped to zero
// (depressed observers gain no horizon dip).
func NewCoordinateAlt(lat, lng, alt float64) (GeoCoordinate, error) {
	if lat < -90 || lat > 90 {
		return GeoCoordinate{}, fmt.Errorf("%w: latitude %.4f outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if lng < -180 || lng > 180 {
		return GeoCoordinate{}, fmt.Errorf("%w: longitude %.4f outside [-180, 180]", ErrInvalidCoordinate, lng)
	}
	if alt < 0 {
		alt = 0
	}
	return GeoCoordinate{Lat: lat, Lng: lng, Alt: alt}, nil
}

// Valid reports whether the coordinate is within range.
func (c GeoCoordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c GeoCoordinate) String() string {
	return fmt.Sprintf("%.4f°, %.4f°", c.Lat, c.Lng)
}
