package ports

import (
	"context"
	"snailmail-delivery/internal/domain"
)

// Contract for fetching delivery estimates from the estimate service.
type EstimateProvider interface {
	// Return the estimate for a single transport mode.
	CalculateSingle(ctx context.Context, origin, destination domain.LocationInput, mode domain.TransportMode) (domain.DeliveryEstimate, error)
	// Return estimates for every transport mode from one route resolution.
	CalculateAll(ctx context.Context, origin, destination domain.LocationInput) (map[domain.TransportMode]domain.DeliveryEstimate, error)
	// Report whether the service is reachable and healthy.
	HealthCheck(ctx context.Context) bool
}
