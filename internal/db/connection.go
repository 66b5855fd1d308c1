package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/parcel-comps/internal/config"
)

// Connection holds the appraisal database connection.
type Connection struct {
	DB *sql.DB
}

// NewConnection opens a connection using PG* environment variables.
func NewConnection() (*Connection, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.GetEnv("PGHOST", "localhost"),
		config.GetEnv("PGPORT", "5432"),
		config.GetEnv("PGUSER", "parcels"),
		config.GetEnv("PGPASSWORD", "parcels"),
		config.GetEnv("PGDATABASE", "parcels"),
		config.GetEnv("PGSSLMODE", "disable"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.GetEnvInt("PGMAXCONNS", 20))
	db.SetMaxIdleConns(config.GetEnvInt("PGMAXCONNS", 20) / 2)
	db.SetConnMaxLifetime(time.Hour)

	return &Connection{DB: db}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	return c.DB.Close()
}
