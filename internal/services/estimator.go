package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/platform/obs"
	"snailmail-delivery/internal/ports"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

// ErrRouteNotFound means neither a measured route nor coordinates for both
// ends were available.
var ErrRouteNotFound = errors.New("route not found")

const (
	earthRadiusMeters = 6371008.8
	// Real-world travel speed assumed when only a straight-line distance is known.
	fallbackTravelKmH = 50.0
)

// Assumed speed of each mode, in km/h.
var modeSpeedKmH = map[domain.TransportMode]float64{
	domain.Walking:      5,
	domain.Swimming:     2,
	domain.Pigeon:       80,
	domain.RockClimbing: 1,
}

// Estimator computes delivery estimates for the development backend from
// seeded routes, falling back to great-circle distance when no measured
// route exists.
type Estimator struct {
	Store ports.RouteStore
	Log   *zap.Logger
}

func NewEstimator(store ports.RouteStore, log *zap.Logger) *Estimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Estimator{Store: store, Log: log}
}

// leg is the mode-independent part of an estimate.
type leg struct {
	origin          string
	destination     string
	distanceMeters  float64
	durationSeconds float64
	method          domain.Method
}

// Estimate returns the delivery estimate for a single mode.
func (e *Estimator) Estimate(
	ctx context.Context,
	origin domain.LocationInput,
	destination domain.LocationInput,
	mode domain.TransportMode,
) (domain.DeliveryEstimate, error) {
	if !mode.Valid() {
		return domain.DeliveryEstimate{}, fmt.Errorf("estimate: mode %q: %w", mode, domain.ErrUnknownMode)
	}

	l, err := e.resolveLeg(ctx, origin, destination)
	if err != nil {
		return domain.DeliveryEstimate{}, fmt.Errorf("estimate: %w", err)
	}

	return l.estimate(mode), nil
}

// EstimateAll resolves the route once and derives every mode from it, so
// all modes report the same distance.
func (e *Estimator) EstimateAll(
	ctx context.Context,
	origin domain.LocationInput,
	destination domain.LocationInput,
) (map[domain.TransportMode]domain.DeliveryEstimate, error) {
	l, err := e.resolveLeg(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("estimate all: %w", err)
	}

	out := make(map[domain.TransportMode]domain.DeliveryEstimate, len(domain.Modes))
	for _, m := range domain.Modes {
		out[m] = l.estimate(m)
	}
	return out, nil
}

func (e *Estimator) resolveLeg(
	ctx context.Context,
	origin domain.LocationInput,
	destination domain.LocationInput,
) (_ leg, err error) {
	defer obs.Time(ctx, e.Log, "estimator.resolveLeg")(&err)

	if err := origin.Validate(); err != nil {
		return leg{}, fmt.Errorf("origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return leg{}, fmt.Errorf("destination: %w", err)
	}

	l := leg{
		origin:      origin.String(),
		destination: destination.String(),
	}

	if origin.HasAddress() && destination.HasAddress() {
		r, ok, err := e.Store.GetRoute(ctx, l.origin, l.destination)
		if err != nil {
			return leg{}, fmt.Errorf("lookup route: %w", err)
		}
		if ok {
			l.distanceMeters = float64(r.DistanceMeters)
			l.durationSeconds = float64(r.DurationSeconds)
			l.method = domain.MethodGoogleMaps
			return l, nil
		}
	}

	from, err := e.coordinates(ctx, origin)
	if err != nil {
		return leg{}, err
	}
	to, err := e.coordinates(ctx, destination)
	if err != nil {
		return leg{}, err
	}

	e.Log.Debug("no measured route, using great-circle distance",
		zap.String("origin", l.origin),
		zap.String("destination", l.destination),
	)

	l.distanceMeters = math.Round(GreatCircleMeters(from, to))
	l.durationSeconds = math.Round(l.distanceMeters / kmhToMetersPerSecond(fallbackTravelKmH))
	l.method = domain.MethodClaudeEstimate
	return l, nil
}

func (e *Estimator) coordinates(ctx context.Context, loc domain.LocationInput) (domain.Coordinates, error) {
	if c, ok := loc.Coordinates(); ok {
		return c, nil
	}

	c, ok, err := e.Store.GetPlace(ctx, loc.String())
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("lookup place %q: %w", loc.String(), err)
	}
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: unknown place %q", ErrRouteNotFound, loc.String())
	}
	return c, nil
}

func (l leg) estimate(mode domain.TransportMode) domain.DeliveryEstimate {
	speed := modeSpeedKmH[mode]
	deliverySeconds := math.Round(l.distanceMeters / kmhToMetersPerSecond(speed))

	return domain.DeliveryEstimate{
		DistanceMeters:      l.distanceMeters,
		DistanceText:        FormatDistance(l.distanceMeters),
		DurationSeconds:     l.durationSeconds,
		DeliveryTimeSeconds: deliverySeconds,
		DeliveryTimeText:    FormatDuration(deliverySeconds),
		Origin:              l.origin,
		Destination:         l.destination,
		TransportMode:       mode,
		SpeedKmH:            speed,
		IsEstimate:          l.method == domain.MethodClaudeEstimate,
		Method:              l.method,
	}
}

// GreatCircleMeters returns the surface distance between two points.
func GreatCircleMeters(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}

func kmhToMetersPerSecond(kmh float64) float64 { return kmh * 1000 / 3600 }
