package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/platform/obs"
	"snailmail-delivery/internal/ports"
	"strings"

	"go.uber.org/zap"
)

// SQLRouteStore is a Postgres-backed (pgx) RouteStore.
type SQLRouteStore struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewSQLRouteStore(db *sql.DB, log *zap.Logger) *SQLRouteStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLRouteStore{DB: db, Log: log}
}

// Fetch the measured route between origin and destination, in either direction.
func (s *SQLRouteStore) GetRoute(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, s.Log, "routes.GetRoute")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route store: db is nil")
	}

	if origin == "" || destination == "" {
		return ports.RouteResult{}, false, errors.New("get route: origin and destination must not be empty")
	}

	q := `
	SELECT distance_meters, duration_seconds
    FROM routes
    WHERE (origin = $1 AND destination = $2)
        OR (origin = $2 AND destination = $1)
    ORDER BY (origin = $1) DESC
    LIMIT 1;
	`

	var r ports.RouteResult
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&r.DistanceMeters, &r.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route: query routes table: %w", err)
	}

	return r, true, nil
}

// Fetch coordinates for a known address.
func (s *SQLRouteStore) GetPlace(ctx context.Context, address string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, s.Log, "routes.GetPlace")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("route store: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("get place: address must not be empty")
	}

	q := `
	SELECT lon, lat
    FROM places
    WHERE address = $1;
	`

	var c domain.Coordinates
	err = s.DB.QueryRowContext(ctx, q, address).Scan(&c.Lon, &c.Lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get place: query places table: %w", err)
	}

	return c, true, nil
}

// Store measured routes, updating existing rows.
func (s *SQLRouteStore) PutRoutes(ctx context.Context, routes []RouteSeed) error {
	if s.DB == nil {
		return errors.New("route store: db is nil")
	}

	if len(routes) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert routes: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO routes (origin, destination, distance_meters, duration_seconds)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`)
	if err != nil {
		return fmt.Errorf("insert routes: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range routes {
		if _, err := stmt.ExecContext(ctx, r.Origin, r.Destination, r.DistanceMeters, r.DurationSeconds); err != nil {
			return fmt.Errorf("insert route %q -> %q: %w", r.Origin, r.Destination, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert routes commit: %w", err)
	}

	return nil
}

// Store address -> coordinate mappings, updating existing rows.
func (s *SQLRouteStore) PutPlaces(ctx context.Context, places []PlaceSeed) error {
	if s.DB == nil {
		return errors.New("route store: db is nil")
	}

	if len(places) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert places: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO places (address, lon, lat)
    VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`)
	if err != nil {
		return fmt.Errorf("insert places: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		if _, err := stmt.ExecContext(ctx, p.Address, p.Lon, p.Lat); err != nil {
			return fmt.Errorf("insert place %q: %w", p.Address, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert places commit: %w", err)
	}

	return nil
}
