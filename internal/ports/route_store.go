package ports

import (
	"context"
	"snailmail-delivery/internal/domain"
)

// Measured travel distance and duration between two addresses.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Port: read access to measured routes and known place coordinates.
// Keys are normalized addresses.
type RouteStore interface {
	// Return the measured route between two addresses, in either direction.
	GetRoute(ctx context.Context, origin, destination string) (RouteResult, bool, error)
	// Return coordinates for a known address.
	GetPlace(ctx context.Context, address string) (domain.Coordinates, bool, error)
}
