package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/ports"
	"strings"
)

// SQLite-backed RouteStore. Address keys are expected to be normalized
// by the caller.
type SqliteRouteStore struct {
	DB *sql.DB
}

func NewSqliteRouteStore(db *sql.DB) *SqliteRouteStore {
	return &SqliteRouteStore{DB: db}
}

// Fetch the measured route between origin and destination, in either direction.
func (s *SqliteRouteStore) GetRoute(
	ctx context.Context,
	origin string,
	destination string,
) (ports.RouteResult, bool, error) {
	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route store: db is nil")
	}

	if origin == "" || destination == "" {
		return ports.RouteResult{}, false, errors.New("get route: origin and destination must not be empty")
	}

	q := `
	SELECT
        distance_meters,
        duration_seconds
    FROM routes
    WHERE (origin = ? AND destination = ?)
        OR (origin = ? AND destination = ?)
    ORDER BY origin = ? DESC
    LIMIT 1;
	`

	var r ports.RouteResult
	err := s.DB.QueryRowContext(ctx, q, origin, destination, destination, origin, origin).
		Scan(&r.DistanceMeters, &r.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route: query routes table: %w", err)
	}

	return r, true, nil
}

// Fetch coordinates for a known address.
func (s *SqliteRouteStore) GetPlace(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("route store: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("get place: address must not be empty")
	}

	q := `
	SELECT
        lon,
        lat
    FROM places
    WHERE address = ?;
	`

	var c domain.Coordinates
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&c.Lon, &c.Lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get place: query places table: %w", err)
	}

	return c, true, nil
}

// Store measured routes, replacing existing rows.
func (s *SqliteRouteStore) PutRoutes(ctx context.Context, routes []RouteSeed) error {
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
	INSERT OR REPLACE INTO routes (
        origin,
        destination,
        distance_meters,
        duration_seconds
    )
    VALUES (?, ?, ?, ?);
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

// Store address -> coordinate mappings, replacing existing rows.
func (s *SqliteRouteStore) PutPlaces(ctx context.Context, places []PlaceSeed) error {
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
	INSERT OR REPLACE INTO places (
        address,
        lon,
        lat
    )
    VALUES (?, ?, ?);
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
