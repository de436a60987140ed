package domain

import (
	"fmt"
	"strings"
)

// LocationInput is either a free-text address or an explicit lat/lng pair.
// Exactly one form must be set.
type LocationInput struct {
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

func AddressLocation(address string) LocationInput {
	return LocationInput{Address: address}
}

func PointLocation(lat, lng float64) LocationInput {
	return LocationInput{Lat: &lat, Lng: &lng}
}

func (l LocationInput) HasAddress() bool { return strings.TrimSpace(l.Address) != "" }

func (l LocationInput) HasPoint() bool { return l.Lat != nil && l.Lng != nil }

// Coordinates returns the explicit point, if any.
func (l LocationInput) Coordinates() (Coordinates, bool) {
	if !l.HasPoint() {
		return Coordinates{}, false
	}
	return Coordinates{Lon: *l.Lng, Lat: *l.Lat}, true
}

func (l LocationInput) Validate() error {
	hasAddr := l.HasAddress()
	if (l.Lat == nil) != (l.Lng == nil) {
		return fmt.Errorf("%w: lat and lng must be given together", ErrInvalidLocation)
	}
	hasPoint := l.HasPoint()

	switch {
	case !hasAddr && !hasPoint:
		return fmt.Errorf("%w: address or lat/lng is required", ErrInvalidLocation)
	case hasAddr && hasPoint:
		return fmt.Errorf("%w: give either an address or lat/lng, not both", ErrInvalidLocation)
	}

	if hasPoint {
		if *l.Lat < -90 || *l.Lat > 90 {
			return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLocation, *l.Lat)
		}
		if *l.Lng < -180 || *l.Lng > 180 {
			return fmt.Errorf("%w: longitude %v out of range", ErrInvalidLocation, *l.Lng)
		}
	}

	return nil
}

func (l LocationInput) String() string {
	if l.HasPoint() {
		return fmt.Sprintf("%.4f, %.4f", *l.Lat, *l.Lng)
	}
	return strings.Join(strings.Fields(l.Address), " ")
}
