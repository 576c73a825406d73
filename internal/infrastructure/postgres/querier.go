package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrai o executor de SQL: tanto *pgxpool.Pool quanto pgx.Tx o
// satisfazem. Os repositórios recebem um Querier para funcionar fora ou
// dentro de uma transação sem mudança de código.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
