package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"trip-route-service/internal/domain"
)

// SQL-backed implementation of the LocationRepository and ModeRepository
// ports, for SQLite and Postgres.
type SQLCatalogRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLCatalogRepository(db *sql.DB, dialect Dialect) *SQLCatalogRepository {
	return &SQLCatalogRepository{DB: db, Dialect: dialect}
}

// Return the location flagged as origin.
func (s *SQLCatalogRepository) GetOrigin(ctx context.Context) (domain.Location, error) {
	if s.DB == nil {
		return domain.Location{}, errors.New("sql catalog repository: DB is nil")
	}

	query := s.Dialect.Rebind(`
	SELECT
		name,
		latitude,
		longitude
	FROM locations
	WHERE is_origin = ?
	ORDER BY position
	LIMIT 1;
	`)

	var loc domain.Location
	err := s.DB.QueryRowContext(ctx, query, 1).Scan(&loc.Name, &loc.Latitude, &loc.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, fmt.Errorf("get origin: %w: no origin stored", domain.ErrNotFound)
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("get origin: query locations table: %w", err)
	}

	return loc, nil
}

// Return all destinations in seed order.
func (s *SQLCatalogRepository) ListDestinations(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	query := s.Dialect.Rebind(`
	SELECT
		name,
		latitude,
		longitude
	FROM locations
	WHERE is_origin = ?
	ORDER BY position, name;
	`)
	rows, err := s.DB.QueryContext(ctx, query, 0)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query locations table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Location, 0, 16)
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.Name, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("list destinations: scan row: %w", err)
		}
		out = append(out, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return out, nil
}

// Return the transport mode catalog in seed order.
func (s *SQLCatalogRepository) ListModes(ctx context.Context) ([]domain.TransportMode, error) {
	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	query := `
	SELECT
		mode,
		speed_kmh,
		cost_per_km,
		transfer_time_min
	FROM transport_modes
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list modes: query transport_modes table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TransportMode, 0, 8)
	for rows.Next() {
		var name string
		var speed, cost, transfer float64
		if err := rows.Scan(&name, &speed, &cost, &transfer); err != nil {
			return nil, fmt.Errorf("list modes: scan row: %w", err)
		}
		out = append(out, domain.NewTransportMode(name, speed, cost, transfer))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list modes: row iteration: %w", err)
	}

	return out, nil
}
