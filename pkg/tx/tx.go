package tx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"ojitos/pkg/retrier"
	"ojitos/pkg/retrier/backoff_adapter"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// ErrConflict is returned when a serializable transaction kept colliding
// with concurrent writers after every retry.
var ErrConflict = errors.New("transaction conflicts with a concurrent update")

var Transactions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "db_transactions_total",
		Help: "Transactions run through the manager by isolation level and outcome",
	},
	[]string{"isolation", "outcome"},
)

type nestedKey struct{}

// Manager wraps the avito transaction manager. Nested calls join the outer
// transaction; only the outermost call is retried.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier:  backoff_adapter.New(ConflictRetryConfig()),
	}
}

// ConflictRetryConfig keeps retries short: callers are HTTP requests.
func ConflictRetryConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      4,
		ShouldRetry:     IsSerializationFailure,
	}
}

// IsSerializationFailure reports the SQLSTATEs after which the whole
// transaction can be replayed.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// Do runs fn in a serializable transaction. fn may run more than once and
// must not keep state from a rolled back attempt.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(nestedKey{}) != nil {
		return m.run(ctx, pgx.Serializable, fn)
	}

	ctx = context.WithValue(ctx, nestedKey{}, struct{}{})
	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.run(ctx, pgx.Serializable, fn)
	})
	if IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}

// DoReadOnly runs fn in a repeatable-read, read-only transaction so a report
// sees one snapshot across several queries.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.RepeatableRead, fn, pgxv5.WithTxOptions(pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}))
}

func (m *Manager) run(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
	opts ...pgxv5.Opt,
) error {
	if len(opts) == 0 {
		opts = []pgxv5.Opt{pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level})}
	}
	txSettings := pgxv5.MustSettings(settings.Must(), opts...)

	err := m.internal.DoWithSettings(ctx, txSettings, fn)

	outcome := "commit"
	switch {
	case IsSerializationFailure(err):
		outcome = "conflict"
	case err != nil:
		outcome = "rollback"
	}
	Transactions.WithLabelValues(string(level), outcome).Inc()

	return err
}
