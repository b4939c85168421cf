package repository

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	db *sql.DB
}

var _ Directory = (*SQLiteDB)(nil)

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			secret TEXT NOT NULL,
			role TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS environments (
			id TEXT PRIMARY KEY,
			climate TEXT NOT NULL,
			temperature REAL NOT NULL,
			humidity REAL NOT NULL,
			location TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS regions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			bounds TEXT,
			vegetation TEXT NOT NULL,
			dryness_index REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS incidents (
			id TEXT PRIMARY KEY,
			origin TEXT NOT NULL,
			description TEXT NOT NULL,
			region_id TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			priority TEXT NOT NULL,
			FOREIGN KEY (region_id) REFERENCES regions(id)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			id TEXT PRIMARY KEY,
			timestamp TEXT NOT NULL,
			risk_level TEXT NOT NULL,
			confirmed INTEGER NOT NULL,
			environment_id TEXT NOT NULL,
			assigned_user_id TEXT,
			FOREIGN KEY (environment_id) REFERENCES environments(id)
		);

		CREATE TABLE IF NOT EXISTS firefighters (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			name TEXT NOT NULL,
			shift TEXT NOT NULL,
			phone TEXT
		);

		CREATE TABLE IF NOT EXISTS officers (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			name TEXT NOT NULL,
			badge_number TEXT NOT NULL UNIQUE,
			phone TEXT
		);

		CREATE TABLE IF NOT EXISTS routes (
			id TEXT PRIMARY KEY,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			estimated_time REAL NOT NULL,
			distance REAL NOT NULL,
			alternatives TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_incidents_region ON incidents(region_id, timestamp);
		CREATE INDEX IF NOT EXISTS idx_alerts_environment ON alerts(environment_id, timestamp);
		CREATE INDEX IF NOT EXISTS idx_regions_name ON regions(name);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Timestamps are stored as fixed-width UTC text so ORDER BY comparisons stay
// lexicographic. RFC3339Nano is unsuitable here: it trims trailing zeros.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing stored timestamp %q: %w", s, err)
	}
	return t, nil
}
