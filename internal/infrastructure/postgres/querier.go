// Package postgres implementa los puertos de persistencia sobre PostgreSQL
// con pgx. Cada adaptador acepta un Querier: el pool para operaciones sueltas
// o una tx para las que deben confirmarse juntas.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx que usan los adaptadores.
// Begin permite a un adaptador agrupar sus propias escrituras; sobre una tx
// abre un savepoint anidado.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}
