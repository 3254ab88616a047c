package storage

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// Execer runs statements that return no rows.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ExecQuerier is what writers that also read back need, such as CreateMessage
// which reads the assigned seq. Both *sql.DB and *sql.Tx satisfy it.
type ExecQuerier interface {
	Execer
	sqlscan.Querier
}

var (
	_ ExecQuerier = (*sql.DB)(nil)
	_ ExecQuerier = (*sql.Tx)(nil)
)
