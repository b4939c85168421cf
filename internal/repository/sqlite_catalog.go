package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

// Environments

func (s *SQLiteDB) SaveEnvironment(ctx context.Context, e *models.Environment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO environments (id, climate, temperature, humidity, location)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET climate=excluded.climate,
			temperature=excluded.temperature, humidity=excluded.humidity,
			location=excluded.location`,
		e.ID, e.Climate, e.Temperature, e.Humidity, e.Location)
	if err != nil {
		return fmt.Errorf("error saving environment: %w", err)
	}
	return nil
}

func (s *SQLiteDB) EnvironmentByID(ctx context.Context, id string) (*models.Environment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, climate, temperature, humidity, location FROM environments WHERE id = ?`, id)

	var e models.Environment
	err := row.Scan(&e.ID, &e.Climate, &e.Temperature, &e.Humidity, &e.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching environment: %w", err)
	}
	return &e, nil
}

func (s *SQLiteDB) ListEnvironments(ctx context.Context) ([]models.Environment, error) {
	return s.queryEnvironments(ctx,
		`SELECT id, climate, temperature, humidity, location FROM environments ORDER BY id`)
}

func (s *SQLiteDB) CriticalEnvironments(ctx context.Context, maxTemp, maxHumidity float64) ([]models.Environment, error) {
	return s.queryEnvironments(ctx, `
		SELECT id, climate, temperature, humidity, location FROM environments
		WHERE temperature < ? AND humidity < ? ORDER BY id`, maxTemp, maxHumidity)
}

func (s *SQLiteDB) queryEnvironments(ctx context.Context, query string, args ...any) ([]models.Environment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing environments: %w", err)
	}
	defer rows.Close()

	var envs []models.Environment
	for rows.Next() {
		var e models.Environment
		if err := rows.Scan(&e.ID, &e.Climate, &e.Temperature, &e.Humidity, &e.Location); err != nil {
			return nil, fmt.Errorf("error scanning environment: %w", err)
		}
		envs = append(envs, e)
	}
	return envs, rows.Err()
}

func (s *SQLiteDB) DeleteEnvironment(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM environments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting environment: %w", err)
	}
	return nil
}

// Regions

func (s *SQLiteDB) SaveRegion(ctx context.Context, r *models.Region) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO regions (id, name, bounds, vegetation, dryness_index)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, bounds=excluded.bounds,
			vegetation=excluded.vegetation, dryness_index=excluded.dryness_index`,
		r.ID, r.Name, r.Bounds, r.Vegetation, r.DrynessIndex)
	if err != nil {
		return fmt.Errorf("error saving region: %w", err)
	}
	return nil
}

func (s *SQLiteDB) RegionByID(ctx context.Context, id string) (*models.Region, error) {
	return s.scanRegion(s.db.QueryRowContext(ctx,
		`SELECT id, name, bounds, vegetation, dryness_index FROM regions WHERE id = ?`, id))
}

func (s *SQLiteDB) RegionByName(ctx context.Context, name string) (*models.Region, error) {
	return s.scanRegion(s.db.QueryRowContext(ctx,
		`SELECT id, name, bounds, vegetation, dryness_index FROM regions WHERE name = ? ORDER BY id LIMIT 1`, name))
}

func (s *SQLiteDB) scanRegion(row *sql.Row) (*models.Region, error) {
	var r models.Region
	err := row.Scan(&r.ID, &r.Name, &r.Bounds, &r.Vegetation, &r.DrynessIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching region: %w", err)
	}
	return &r, nil
}

func (s *SQLiteDB) RegionsByName(ctx context.Context, fragment string) ([]models.Region, error) {
	return s.queryRegions(ctx, `
		SELECT id, name, bounds, vegetation, dryness_index FROM regions
		WHERE name LIKE ? COLLATE NOCASE ORDER BY id`, "%"+fragment+"%")
}

func (s *SQLiteDB) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.queryRegions(ctx,
		`SELECT id, name, bounds, vegetation, dryness_index FROM regions ORDER BY id`)
}

func (s *SQLiteDB) queryRegions(ctx context.Context, query string, args ...any) ([]models.Region, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing regions: %w", err)
	}
	defer rows.Close()

	var regions []models.Region
	for rows.Next() {
		var r models.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.Bounds, &r.Vegetation, &r.DrynessIndex); err != nil {
			return nil, fmt.Errorf("error scanning region: %w", err)
		}
		regions = append(regions, r)
	}
	return regions, rows.Err()
}

func (s *SQLiteDB) DeleteRegion(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM regions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting region: %w", err)
	}
	return nil
}

// Routes

func (s *SQLiteDB) SaveRoute(ctx context.Context, r *models.Route) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routes (id, origin, destination, estimated_time, distance, alternatives)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET origin=excluded.origin,
			destination=excluded.destination, estimated_time=excluded.estimated_time,
			distance=excluded.distance, alternatives=excluded.alternatives`,
		r.ID, r.Origin, r.Destination, r.EstimatedTime, r.Distance, r.Alternatives)
	if err != nil {
		return fmt.Errorf("error saving route: %w", err)
	}
	return nil
}

func (s *SQLiteDB) RouteByID(ctx context.Context, id string) (*models.Route, error) {
	return s.scanRoute(s.db.QueryRowContext(ctx, `
		SELECT id, origin, destination, estimated_time, distance, alternatives
		FROM routes WHERE id = ?`, id))
}

func (s *SQLiteDB) RouteByDestination(ctx context.Context, text string) (*models.Route, error) {
	return s.scanRoute(s.db.QueryRowContext(ctx, `
		SELECT id, origin, destination, estimated_time, distance, alternatives
		FROM routes WHERE destination LIKE ? COLLATE NOCASE ORDER BY id LIMIT 1`,
		"%"+text+"%"))
}

func (s *SQLiteDB) scanRoute(row *sql.Row) (*models.Route, error) {
	var r models.Route
	err := row.Scan(&r.ID, &r.Origin, &r.Destination, &r.EstimatedTime, &r.Distance, &r.Alternatives)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching route: %w", err)
	}
	return &r, nil
}

func (s *SQLiteDB) ListRoutes(ctx context.Context) ([]models.Route, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, origin, destination, estimated_time, distance, alternatives
		FROM routes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing routes: %w", err)
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		var r models.Route
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.EstimatedTime, &r.Distance, &r.Alternatives); err != nil {
			return nil, fmt.Errorf("error scanning route: %w", err)
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (s *SQLiteDB) DeleteRoute(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting route: %w", err)
	}
	return nil
}
