package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// AuditLog records one row per /generate call (cmd/server records no other
// route), for operators diagnosing why a particular request came back
// unsolvable or low-scoring.
type AuditLog struct {
	db *sql.DB
}

// OpenAuditLog opens a Postgres connection for audit logging using dsn
// (a standard libpq connection string).
func OpenAuditLog(dsn string) (*AuditLog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	return &AuditLog{db: db}, nil
}

// Close releases the underlying connection pool.
func (a *AuditLog) Close() error {
	return a.db.Close()
}

// Record inserts one audit row describing a completed request.
func (a *AuditLog) Record(ctx context.Context, requestID, strategy string, solvable bool, coverage int, score int) error {
	const stmt = `
		INSERT INTO generation_audit (request_id, strategy, solvable, coverage, score)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := a.db.ExecContext(ctx, stmt, requestID, strategy, solvable, coverage, score)
	if err != nil {
		return fmt.Errorf("insert audit row: %w", err)
	}
	return nil
}
