package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"trip-route-service/internal/domain"
)

// Initialize the catalog schema. The statements are valid for both SQLite
// and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		name TEXT PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		is_origin INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL
	);
	`

	createModesQuery := `
	CREATE TABLE IF NOT EXISTS transport_modes (
		mode TEXT PRIMARY KEY,
		speed_kmh DOUBLE PRECISION NOT NULL,
		cost_per_km DOUBLE PRECISION NOT NULL,
		transfer_time_min DOUBLE PRECISION NOT NULL,
		position INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_locations_origin_position
	ON locations(is_origin, position);
	`

	statements := []string{
		createLocationsQuery,
		createModesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromJSON replaces the stored catalog with the contents of
// locationsDir (origin.json, destinations.json) and modesPath. Files are
// fully validated before anything is written.
func SeedFromJSON(db *sql.DB, dialect Dialect, locationsDir, modesPath string) error {
	if db == nil {
		return errors.New("seed catalog: DB is nil")
	}

	originPath, destinationsPath := LocationPaths(locationsDir)
	origin, err := ReadOrigin(originPath)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	destinations, err := ReadDestinations(destinationsPath)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	for _, d := range destinations {
		if d.Name == origin.Name {
			return fmt.Errorf("seed catalog: %w: %q is both origin and destination", domain.ErrDuplicateLocation, d.Name)
		}
	}
	modes, err := ReadModes(modesPath)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"locations", "transport_modes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("seed catalog: clear %s: %w", table, err)
		}
	}

	locStmt, err := tx.Prepare(dialect.Rebind(`
	INSERT INTO locations (
		name,
		latitude,
		longitude,
		is_origin,
		position
	)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare location insert: %w", err)
	}
	defer locStmt.Close()

	if _, err := locStmt.Exec(origin.Name, origin.Latitude, origin.Longitude, 1, 0); err != nil {
		return fmt.Errorf("seed catalog: insert origin %q: %w", origin.Name, err)
	}
	for i, d := range destinations {
		if _, err := locStmt.Exec(d.Name, d.Latitude, d.Longitude, 0, i+1); err != nil {
			return fmt.Errorf("seed catalog: insert destination %q: %w", d.Name, err)
		}
	}

	modeStmt, err := tx.Prepare(dialect.Rebind(`
	INSERT INTO transport_modes (
		mode,
		speed_kmh,
		cost_per_km,
		transfer_time_min,
		position
	)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare mode insert: %w", err)
	}
	defer modeStmt.Close()

	for i, m := range modes {
		if _, err := modeStmt.Exec(m.Name, *m.SpeedKmh, *m.CostPerKm, *m.TransferTimeMin, i); err != nil {
			return fmt.Errorf("seed catalog: insert mode %q: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
