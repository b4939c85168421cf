package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

// Firefighters

func (s *SQLiteDB) SaveFirefighter(ctx context.Context, f *models.Firefighter) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO firefighters (id, user_id, name, shift, phone)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id, name=excluded.name,
			shift=excluded.shift, phone=excluded.phone`,
		f.ID, f.UserID, f.Name, f.Shift, f.Phone)
	if err != nil {
		return fmt.Errorf("error saving firefighter: %w", err)
	}
	return nil
}

func (s *SQLiteDB) FirefighterByID(ctx context.Context, id string) (*models.Firefighter, error) {
	return s.scanFirefighter(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, shift, phone FROM firefighters WHERE id = ?`, id))
}

func (s *SQLiteDB) FirefighterByUser(ctx context.Context, userID string) (*models.Firefighter, error) {
	return s.scanFirefighter(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, shift, phone FROM firefighters WHERE user_id = ? LIMIT 1`, userID))
}

// FirstFirefighter implements the selection policy: lowest id wins.
func (s *SQLiteDB) FirstFirefighter(ctx context.Context) (*models.Firefighter, error) {
	return s.scanFirefighter(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, shift, phone FROM firefighters ORDER BY id LIMIT 1`))
}

func (s *SQLiteDB) scanFirefighter(row *sql.Row) (*models.Firefighter, error) {
	var f models.Firefighter
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Shift, &f.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching firefighter: %w", err)
	}
	return &f, nil
}

func (s *SQLiteDB) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	return s.queryFirefighters(ctx,
		`SELECT id, user_id, name, shift, phone FROM firefighters ORDER BY id`)
}

func (s *SQLiteDB) FirefightersByShift(ctx context.Context, shift string) ([]models.Firefighter, error) {
	return s.queryFirefighters(ctx,
		`SELECT id, user_id, name, shift, phone FROM firefighters WHERE shift = ? ORDER BY id`, shift)
}

func (s *SQLiteDB) FirefightersByName(ctx context.Context, fragment string) ([]models.Firefighter, error) {
	return s.queryFirefighters(ctx, `
		SELECT id, user_id, name, shift, phone FROM firefighters
		WHERE name LIKE ? COLLATE NOCASE ORDER BY id`, "%"+fragment+"%")
}

func (s *SQLiteDB) queryFirefighters(ctx context.Context, query string, args ...any) ([]models.Firefighter, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing firefighters: %w", err)
	}
	defer rows.Close()

	var out []models.Firefighter
	for rows.Next() {
		var f models.Firefighter
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Shift, &f.Phone); err != nil {
			return nil, fmt.Errorf("error scanning firefighter: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *SQLiteDB) DeleteFirefighter(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM firefighters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting firefighter: %w", err)
	}
	return nil
}

// Officers

func (s *SQLiteDB) SaveOfficer(ctx context.Context, o *models.Officer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO officers (id, user_id, name, badge_number, phone)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id, name=excluded.name,
			badge_number=excluded.badge_number, phone=excluded.phone`,
		o.ID, o.UserID, o.Name, o.BadgeNumber, o.Phone)
	if err != nil {
		return fmt.Errorf("error saving officer: %w", err)
	}
	return nil
}

func (s *SQLiteDB) OfficerByID(ctx context.Context, id string) (*models.Officer, error) {
	return s.scanOfficer(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, badge_number, phone FROM officers WHERE id = ?`, id))
}

func (s *SQLiteDB) OfficerByBadge(ctx context.Context, badge string) (*models.Officer, error) {
	return s.scanOfficer(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, badge_number, phone FROM officers WHERE badge_number = ?`, badge))
}

func (s *SQLiteDB) OfficerByUser(ctx context.Context, userID string) (*models.Officer, error) {
	return s.scanOfficer(s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, badge_number, phone FROM officers WHERE user_id = ? LIMIT 1`, userID))
}

func (s *SQLiteDB) scanOfficer(row *sql.Row) (*models.Officer, error) {
	var o models.Officer
	err := row.Scan(&o.ID, &o.UserID, &o.Name, &o.BadgeNumber, &o.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching officer: %w", err)
	}
	return &o, nil
}

func (s *SQLiteDB) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	return s.queryOfficers(ctx,
		`SELECT id, user_id, name, badge_number, phone FROM officers ORDER BY id`)
}

func (s *SQLiteDB) OfficersByName(ctx context.Context, fragment string) ([]models.Officer, error) {
	return s.queryOfficers(ctx, `
		SELECT id, user_id, name, badge_number, phone FROM officers
		WHERE name LIKE ? COLLATE NOCASE ORDER BY id`, "%"+fragment+"%")
}

func (s *SQLiteDB) queryOfficers(ctx context.Context, query string, args ...any) ([]models.Officer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing officers: %w", err)
	}
	defer rows.Close()

	var out []models.Officer
	for rows.Next() {
		var o models.Officer
		if err := rows.Scan(&o.ID, &o.UserID, &o.Name, &o.BadgeNumber, &o.Phone); err != nil {
			return nil, fmt.Errorf("error scanning officer: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLiteDB) ExistsByBadgeNumber(ctx context.Context, badge, excludeID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM officers WHERE badge_number = ? AND id != ?`, badge, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking badge number: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteDB) DeleteOfficer(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM officers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting officer: %w", err)
	}
	return nil
}
