package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the repositories depend on.
// It is also satisfied by circuitbreaker.DBCircuitBreaker, so repositories
// can run either against a raw connection pool or behind a breaker.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
