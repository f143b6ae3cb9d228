package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/noah-isme/pack-scheduler-api/pkg/config"
)

const pingTimeout = 5 * time.Second

// auditSchema creates the enrollment trail table when it is missing.
const auditSchema = `
CREATE TABLE IF NOT EXISTS enrollment_events (
	id          UUID PRIMARY KEY,
	student_id  TEXT NOT NULL,
	course_name TEXT NOT NULL,
	section     TEXT NOT NULL,
	status      TEXT NOT NULL,
	open_seats  INTEGER NOT NULL,
	waitlisted  INTEGER NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_enrollment_events_student ON enrollment_events (student_id, occurred_at DESC);
CREATE INDEX IF NOT EXISTS idx_enrollment_events_course ON enrollment_events (course_name, section, occurred_at DESC);
`

// DSN renders the lib/pq connection string for cfg.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
}

// NewPostgres opens and pings the audit database.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema applies the audit table definition.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, auditSchema); err != nil {
		return fmt.Errorf("apply audit schema: %w", err)
	}
	return nil
}
