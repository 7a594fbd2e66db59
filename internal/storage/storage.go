package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/misterclayt0n/fitcalc/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// ErrNotConfigured is returned when neither the environment nor the config
// names a database.
var ErrNotConfigured = errors.New("no database configured (set FITCALC_DATABASE_URL or database.connection_string)")

const urlEnv = "FITCALC_DATABASE_URL"

type Storage struct {
	DB *sql.DB
}

// ConnectionString picks the database URL: environment (after loading a
// .env file when present) first, then the config file.
func ConnectionString(cfg *config.Config) string {
	// A missing .env is fine; the variable may come from the real environment.
	_ = godotenv.Load()

	if url := os.Getenv(urlEnv); url != "" {
		return url
	}
	if cfg != nil {
		return cfg.DB.ConnectionString
	}
	return ""
}

func NewStorage(cfg *config.Config) (*Storage, error) {
	url := ConnectionString(cfg)
	if url == "" {
		return nil, ErrNotConfigured
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS calculations (
            id TEXT PRIMARY KEY,
            kind TEXT NOT NULL,
            input TEXT NOT NULL,
            result TEXT NOT NULL,
            created_at TEXT NOT NULL
        );

        CREATE INDEX IF NOT EXISTS calculations_kind_created
            ON calculations (kind, created_at);

        CREATE TABLE IF NOT EXISTS lms_reference (
            sex TEXT NOT NULL,
            month INTEGER NOT NULL,
            l REAL NOT NULL,
            m REAL NOT NULL,
            s REAL NOT NULL,
            PRIMARY KEY (sex, month)
        );
    `)
	return err
}
