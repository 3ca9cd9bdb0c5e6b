package repository

import (
	"context"
	"database/sql"

	"vocab-builder/internal/config"

	"github.com/jmoiron/sqlx"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
// Queries are written with '?' placeholders and passed through Rebind.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
	DriverName() string
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

// paginate appends the driver's row-limiting clause and its arguments.
func paginate(exec DBTX, query string, args []interface{}, limit, offset int) (string, []interface{}) {
	if exec.DriverName() == config.DriverOracle {
		return query + " OFFSET ? ROWS FETCH NEXT ? ROWS ONLY", append(args, offset, limit)
	}
	return query + " LIMIT ? OFFSET ?", append(args, limit, offset)
}
