package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // required for file: URLs
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var ErrNoDatabase = errors.New("no database configured, set connection_string or TURSO_DATABASE_URL")

type Storage struct {
	DB *sql.DB
}

// Open connects to the history database and makes sure the schema exists.
func Open(connStr string) (*Storage, error) {
	if connStr == "" {
		return nil, ErrNoDatabase
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	st := &Storage{DB: db}
	if err := st.InitializeDB(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return st, nil
}

func (s *Storage) InitializeDB() error {
	_, err := s.DB.Exec(`
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            workout_type TEXT NOT NULL,
            duration REAL NOT NULL,
            distance REAL NOT NULL,
            speed REAL NOT NULL,
            calories REAL NOT NULL,
            created_at TEXT NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_workouts_created_at ON workouts(created_at);
    `)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
