package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

func (s *SQLiteDB) SaveAlert(ctx context.Context, a *models.Alert) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alerts (id, timestamp, risk_level, confirmed, environment_id, assigned_user_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET timestamp=excluded.timestamp,
			risk_level=excluded.risk_level, confirmed=excluded.confirmed,
			environment_id=excluded.environment_id,
			assigned_user_id=excluded.assigned_user_id`,
		a.ID, encodeTime(a.Timestamp), a.RiskLevel, a.Confirmed, a.EnvironmentID, a.AssignedUserID)
	if err != nil {
		return fmt.Errorf("error saving alert: %w", err)
	}
	return nil
}

func (s *SQLiteDB) AlertByID(ctx context.Context, id string) (*models.Alert, error) {
	return s.scanAlert(s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, risk_level, confirmed, environment_id, assigned_user_id
		FROM alerts WHERE id = ?`, id))
}

func (s *SQLiteDB) MostRecentAlertByEnvironment(ctx context.Context, environmentID string) (*models.Alert, error) {
	return s.scanAlert(s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, risk_level, confirmed, environment_id, assigned_user_id
		FROM alerts WHERE environment_id = ? ORDER BY timestamp DESC LIMIT 1`, environmentID))
}

func (s *SQLiteDB) scanAlert(row *sql.Row) (*models.Alert, error) {
	var (
		a  models.Alert
		ts string
	)
	err := row.Scan(&a.ID, &ts, &a.RiskLevel, &a.Confirmed, &a.EnvironmentID, &a.AssignedUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching alert: %w", err)
	}
	if a.Timestamp, err = decodeTime(ts); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SQLiteDB) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return s.queryAlerts(ctx, `
		SELECT id, timestamp, risk_level, confirmed, environment_id, assigned_user_id
		FROM alerts ORDER BY timestamp DESC`)
}

func (s *SQLiteDB) AlertsByEnvironment(ctx context.Context, environmentID string) ([]models.Alert, error) {
	return s.queryAlerts(ctx, `
		SELECT id, timestamp, risk_level, confirmed, environment_id, assigned_user_id
		FROM alerts WHERE environment_id = ? ORDER BY timestamp DESC`, environmentID)
}

func (s *SQLiteDB) queryAlerts(ctx context.Context, query string, args ...any) ([]models.Alert, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var (
			a  models.Alert
			ts string
		)
		if err := rows.Scan(&a.ID, &ts, &a.RiskLevel, &a.Confirmed, &a.EnvironmentID, &a.AssignedUserID); err != nil {
			return nil, fmt.Errorf("error scanning alert: %w", err)
		}
		if a.Timestamp, err = decodeTime(ts); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (s *SQLiteDB) DeleteAlert(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM alerts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting alert: %w", err)
	}
	return nil
}
