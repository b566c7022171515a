package querier

import (
	"context"
	"strconv"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier runs statements on the transaction stored in ctx, or on the pool
// when there is none.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	defer q.observe(ctx, "exec", time.Now())
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	defer q.observe(ctx, "query", time.Now())
	return q.get(ctx).Query(ctx, sql, args...)
}

// QueryRow is timed up to the point the row is returned; the scan itself
// happens in the caller.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	defer q.observe(ctx, "query_row", time.Now())
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

// InTx reports whether ctx carries a transaction opened by the tx manager.
func (q *Querier) InTx(ctx context.Context) bool {
	return q.getter.DefaultTrOrDB(ctx, nil) != nil
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) observe(ctx context.Context, kind string, start time.Time) {
	StatementDuration.
		WithLabelValues(kind, strconv.FormatBool(q.InTx(ctx))).
		Observe(time.Since(start).Seconds())
}
