package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"snailmail-delivery/internal/domain"
	"strings"
)

// Initialize the route schema. driver selects the column types
// ("sqlite" or "pgx").
func InitSchema(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	realType := "REAL"
	if driver == "pgx" {
		realType = "DOUBLE PRECISION"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters INTEGER NOT NULL,
        duration_seconds INTEGER NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createPlacesQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS places (
        address TEXT PRIMARY KEY,
        lon %[1]s NOT NULL,
        lat %[1]s NOT NULL
    );
	`, realType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_routes_destination_origin
    ON routes(destination, origin);
	`

	statements := []string{
		createRoutesQuery,
		createPlacesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RouteSeed struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
}

type PlaceSeed struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type Seed struct {
	Places []PlaceSeed `json:"places"`
	Routes []RouteSeed `json:"routes"`
}

// Writer is implemented by both route stores.
type Writer interface {
	PutRoutes(ctx context.Context, routes []RouteSeed) error
	PutPlaces(ctx context.Context, places []PlaceSeed) error
}

// Populate the store with places and routes from a JSON file.
func SeedFromJSON(ctx context.Context, w Writer, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed routes: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed routes: parse json: %w", err)
	}

	seed, err := data.normalized()
	if err != nil {
		return fmt.Errorf("seed routes: %w", err)
	}

	if err := w.PutPlaces(ctx, seed.Places); err != nil {
		return fmt.Errorf("seed routes: %w", err)
	}
	if err := w.PutRoutes(ctx, seed.Routes); err != nil {
		return fmt.Errorf("seed routes: %w", err)
	}

	return nil
}

// normalized validates the seed and normalizes address keys the same way
// domain.LocationInput does.
func (s Seed) normalized() (Seed, error) {
	out := Seed{
		Places: make([]PlaceSeed, 0, len(s.Places)),
		Routes: make([]RouteSeed, 0, len(s.Routes)),
	}

	for i, p := range s.Places {
		addr := normalize(p.Address)
		if addr == "" {
			return Seed{}, fmt.Errorf("place at index %d: address cannot be empty", i+1)
		}
		if err := domain.PointLocation(p.Lat, p.Lon).Validate(); err != nil {
			return Seed{}, fmt.Errorf("place %q: %w", addr, err)
		}
		out.Places = append(out.Places, PlaceSeed{Address: addr, Lat: p.Lat, Lon: p.Lon})
	}

	for i, r := range s.Routes {
		origin, dest := normalize(r.Origin), normalize(r.Destination)
		if origin == "" || dest == "" {
			return Seed{}, fmt.Errorf("route at index %d: origin and destination cannot be empty", i+1)
		}
		if r.DistanceMeters < 0 || r.DurationSeconds < 0 {
			return Seed{}, fmt.Errorf("route %q -> %q: distance and duration must not be negative", origin, dest)
		}
		out.Routes = append(out.Routes, RouteSeed{
			Origin:          origin,
			Destination:     dest,
			DistanceMeters:  r.DistanceMeters,
			DurationSeconds: r.DurationSeconds,
		})
	}

	return out, nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
