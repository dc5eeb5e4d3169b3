package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const txKey contextKey = "db_tx"

// Querier is the subset of pgx shared by pools, connections and
// transactions. Repositories run against whichever one the context
// carries.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// WithTx runs fn inside a transaction carried by the context. Every
// repository call made with that context joins the transaction, so a
// failure anywhere in fn rolls back all of its statements.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// QuerierFromContext returns the transaction carried by ctx, or nil
// when the caller is not inside WithTx.
func QuerierFromContext(ctx context.Context) Querier {
	q, _ := ctx.Value(txKey).(pgx.Tx)
	if q == nil {
		return nil
	}
	return q
}
