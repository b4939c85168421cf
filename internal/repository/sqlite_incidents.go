package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

func (s *SQLiteDB) SaveIncident(ctx context.Context, i *models.Incident) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO incidents (id, origin, description, region_id, timestamp, priority)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET origin=excluded.origin,
			description=excluded.description, region_id=excluded.region_id,
			timestamp=excluded.timestamp, priority=excluded.priority`,
		i.ID, i.Origin, i.Description, i.RegionID, encodeTime(i.Timestamp), i.Priority)
	if err != nil {
		return fmt.Errorf("error saving incident: %w", err)
	}
	return nil
}

func (s *SQLiteDB) IncidentByID(ctx context.Context, id string) (*models.Incident, error) {
	return s.scanIncident(s.db.QueryRowContext(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents WHERE id = ?`, id))
}

func (s *SQLiteDB) MostRecentIncidentByRegion(ctx context.Context, regionID string) (*models.Incident, error) {
	return s.scanIncident(s.db.QueryRowContext(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents WHERE region_id = ? ORDER BY timestamp DESC LIMIT 1`, regionID))
}

func (s *SQLiteDB) scanIncident(row *sql.Row) (*models.Incident, error) {
	var (
		i  models.Incident
		ts string
	)
	err := row.Scan(&i.ID, &i.Origin, &i.Description, &i.RegionID, &ts, &i.Priority)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching incident: %w", err)
	}
	if i.Timestamp, err = decodeTime(ts); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *SQLiteDB) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	return s.queryIncidents(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents ORDER BY timestamp DESC`)
}

func (s *SQLiteDB) IncidentsByOrigin(ctx context.Context, origin models.Origin) ([]models.Incident, error) {
	return s.queryIncidents(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents WHERE origin = ? ORDER BY timestamp DESC`, origin)
}

func (s *SQLiteDB) IncidentsByPriority(ctx context.Context, priority models.Priority) ([]models.Incident, error) {
	return s.queryIncidents(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents WHERE priority = ? ORDER BY timestamp DESC`, priority)
}

func (s *SQLiteDB) IncidentsByDescription(ctx context.Context, fragment string) ([]models.Incident, error) {
	return s.queryIncidents(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents WHERE description LIKE ? COLLATE NOCASE ORDER BY timestamp DESC`,
		"%"+fragment+"%")
}

func (s *SQLiteDB) IncidentsByRegion(ctx context.Context, regionID string) ([]models.Incident, error) {
	return s.queryIncidents(ctx, `
		SELECT id, origin, description, region_id, timestamp, priority
		FROM incidents WHERE region_id = ? ORDER BY timestamp DESC`, regionID)
}

func (s *SQLiteDB) queryIncidents(ctx context.Context, query string, args ...any) ([]models.Incident, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing incidents: %w", err)
	}
	defer rows.Close()

	var incidents []models.Incident
	for rows.Next() {
		var (
			i  models.Incident
			ts string
		)
		if err := rows.Scan(&i.ID, &i.Origin, &i.Description, &i.RegionID, &ts, &i.Priority); err != nil {
			return nil, fmt.Errorf("error scanning incident: %w", err)
		}
		if i.Timestamp, err = decodeTime(ts); err != nil {
			return nil, err
		}
		incidents = append(incidents, i)
	}
	return incidents, rows.Err()
}

func (s *SQLiteDB) DeleteIncident(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting incident: %w", err)
	}
	return nil
}
